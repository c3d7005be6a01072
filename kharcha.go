package main

import (
	"log"

	"github.com/joho/godotenv"

	"paisa.dev/kharcha/pkg/commands"
)

func main() {
	// Load .env for local development (missing file is fine)
	_ = godotenv.Load()

	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
