package main

import (
	"deesha/statetheme/cmd"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; it only supplies STATETHEME_* defaults.
	_ = godotenv.Load()
	cmd.Execute()
}
