package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config reads a key from .env, falling back to the process environment.
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		return os.Getenv(key)
	}
	return os.Getenv(key)
}
