// Package main provides the entry point for the Resume Insight CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "insight_agent",
	Short: "Resume Insight analysis engine",
	Long:  "Resume Insight extracts structured profiles from resume text, scores them, scrapes job boards for matching listings, and generates interview questions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
