package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dukaflow/envsync/cli/core"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"
)

func output(envs []core.Env, outputFormat string) error {
	switch outputFormat {
	case "", "json":
		return printJson(envs)
	case "yaml":
		return printYaml(envs, false)
	case "pretty":
		return printYaml(envs, true)
	case "table":
		return printTable(envs)
	default:
		return fmt.Errorf("unknown output format %q, expected one of: json,yaml,table,pretty", outputFormat)
	}
}

// printJson emits the document the pipeline consumes: a compact JSON
// array, byte-stable for a given environment snapshot.
func printJson(envs []core.Env) error {
	jsonData, err := json.Marshal(envs)
	if err != nil {
		return err
	}
	fmt.Println(string(jsonData))
	return nil
}

func printYaml(envs []core.Env, pretty bool) error {
	yamlData, err := yaml.Marshal(envs)
	if err != nil {
		return err
	}
	if pretty {
		printColoredYAML(yamlData)
		return nil
	}
	fmt.Print(string(yamlData))
	return nil
}

func printColoredYAML(yamlData []byte) {
	lines := bytes.Split(yamlData, []byte("\n"))
	keyColor := color.New(color.FgBlue).SprintFunc()
	valueColor := color.New(color.FgGreen).SprintFunc()

	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		// Split the line into key and value
		parts := bytes.SplitN(line, []byte(":"), 2)
		if len(parts) < 2 {
			fmt.Println(string(line))
			continue
		}
		key := parts[0]
		value := bytes.TrimSpace(parts[1])
		fmt.Printf("%s: %s\n", keyColor(string(key)), valueColor(string(value)))
	}
}

func printTable(envs []core.Env) error {
	maxValueWidth := getValueColumnWidth()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"KEY", "VALUE"})
	for _, env := range envs {
		t.AppendRow(table.Row{env.Key, truncateString(env.Value, maxValueWidth)})
	}
	t.Render()
	return nil
}

// getValueColumnWidth calculates the optimal width for the value column
// based on terminal size
func getValueColumnWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		// Fallback to default if we can't get terminal size
		return 80
	}

	// Space used by the key column plus separators and padding.
	// The longest builtin key is 23 chars.
	usedSpace := 23 + 10

	availableSpace := width - usedSpace

	minWidth := 15
	maxWidth := 120

	if availableSpace < minWidth {
		return minWidth
	}
	if availableSpace > maxWidth {
		return maxWidth
	}

	return availableSpace
}

// truncateString truncates a string to the specified max length with ellipsis
func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return s[:maxLength]
	}
	return s[:maxLength-3] + "..."
}
