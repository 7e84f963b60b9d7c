// Package main provides the entry point for the placement backend.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "placement",
	Short: "Placement marketplace HTTP API server",
	Long:  "Placement backend matches applicants to German job postings: eligibility gating, five-factor match scoring, and application review via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
