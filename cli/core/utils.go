package core

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// All diagnostics go to stderr: stdout is reserved for the rendered
// document so the output can be piped straight into the pipeline.

// PrintError prints a formatted error message with colors
func PrintError(operation string, err error) {
	Print(fmt.Sprintf("%s %s",
		color.New(color.FgRed, color.Bold).Sprint("✗"),
		color.New(color.FgRed, color.Bold).Sprintf("%s failed", operation)))
	Print(fmt.Sprintf("%s %s",
		color.New(color.FgRed).Sprint("Reason:"),
		color.New(color.FgWhite).Sprint(err.Error())))
}

// PrintWarning prints a formatted warning message with colors
func PrintWarning(message string) {
	Print(fmt.Sprintf("%s %s",
		color.New(color.FgYellow, color.Bold).Sprint("⚠"),
		color.New(color.FgYellow).Sprint(message)))
}

// PrintSuccess prints a formatted success message with colors
func PrintSuccess(message string) {
	Print(fmt.Sprintf("%s %s",
		color.New(color.FgGreen, color.Bold).Sprint("✓"),
		color.New(color.FgGreen).Sprint(message)))
}

func PrintInfo(message string) {
	Print(fmt.Sprintf("%s %s",
		color.New(color.FgBlue, color.Bold).Sprint("ℹ"),
		color.New(color.FgBlue).Sprint(message)))
}

func Print(message string) {
	fmt.Fprintln(os.Stderr, message)
}
