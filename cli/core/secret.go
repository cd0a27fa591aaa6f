package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Secrets read from .env files, used as a fallback when a variable is not
// present in the process environment.
type Secrets []Env

var secrets Secrets

// ReadSecrets loads every file in files, resolved relative to folder,
// into the secret store. Unreadable files are reported and skipped; a
// variable may legitimately live only in the real environment.
func ReadSecrets(folder string, files []string) {
	secrets = nil

	cwd, err := os.Getwd()
	if err != nil {
		PrintWarning(fmt.Sprintf("Could not determine working directory: %s", err))
		return
	}

	for _, file := range files {
		path := filepath.Join(cwd, folder, file)
		envMap, err := godotenv.Read(path)
		if err != nil {
			PrintWarning(fmt.Sprintf("Could not read env file %s: %s", path, err))
			continue
		}
		for key, value := range envMap {
			secrets = append(secrets, Env{
				Key:   key,
				Value: value,
			})
		}
	}
}

// GetSecrets returns the current secrets
func GetSecrets() []Env {
	return secrets
}

// LookupSecret finds a secret by name in the loaded env files.
func LookupSecret(key string) (string, bool) {
	for _, secret := range secrets {
		if secret.Key == key {
			return secret.Value, true
		}
	}
	return "", false
}
