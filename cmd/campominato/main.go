// Package main is the entry point for Campo Minato.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_CAMPOMINATO_API_KEY and CAMPOMINATO_* defaults available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
