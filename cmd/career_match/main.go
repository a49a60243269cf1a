// Package main provides the entry point for the career match CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_match",
	Short: "Career match engine CLI",
	Long:  "Scores a candidate's skills against a career catalog, deduplicates near-identical career titles, ranks the results, and derives summary statistics.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
