package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the optional envsync.toml at the root of the project. It
// extends the builtin key list with project-specific variables and can
// name env files to read by default.
type Config struct {
	Sync SyncConfig `toml:"sync"`
}

type SyncConfig struct {
	ExtraKeys []string `toml:"extra_keys"`
	EnvFiles  []string `toml:"env_files"`
}

var config Config

// ReadConfigToml reads envsync.toml from folder and replaces the current
// config. A missing file leaves the builtin defaults untouched.
func ReadConfigToml(folder string) {
	config = Config{}

	cwd, err := os.Getwd()
	if err != nil {
		PrintWarning(fmt.Sprintf("Could not determine working directory: %s", err))
		return
	}

	content, err := os.ReadFile(filepath.Join(cwd, folder, "envsync.toml"))
	if err != nil {
		return
	}

	if err := toml.Unmarshal(content, &config); err != nil {
		PrintWarning(fmt.Sprintf("Could not parse envsync.toml: %s", err))
		config = Config{}
	}
}

// GetConfig returns the current config
func GetConfig() Config {
	return config
}
