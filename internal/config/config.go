// Package config resolves run defaults from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// EnvOutput names the environment variable that selects the CSV destination
// when no -output flag is given.
const EnvOutput = "GRADEGEN_OUTPUT"

// Config carries the resolved run defaults.
type Config struct {
	// OutputPath is the CSV destination from the environment. Empty means
	// "use the built-in default".
	OutputPath string
}

// Load reads a .env file from the working directory when one exists, then
// resolves defaults from the process environment. A missing .env is not an
// error. Explicit flags take precedence over anything loaded here.
func Load() Config {
	// Absent .env files are expected outside development checkouts.
	_ = godotenv.Load()

	return Config{OutputPath: os.Getenv(EnvOutput)}
}
