package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var envFiles = []string{".env", ".env.local"}

// ErrNoEnvFile is returned by LoadEnvFile when neither file exists.
var ErrNoEnvFile = errors.New("no .env file found")

// LoadEnvFile loads the first of .env/.env.local that exists. Variables
// already present in the process environment are not overwritten. It runs
// once per process, before flags and the config file are read.
func LoadEnvFile() error {
	for _, envPath := range envFiles {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			return fmt.Errorf("load %s: %w", envPath, err)
		}
		return nil
	}
	return ErrNoEnvFile
}
