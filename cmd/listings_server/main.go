// Package main provides the entry point for the job listings HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "listings_server",
	Short: "Job Listings HTTP API Server",
	Long:  "Job Listings searches job-board sites through the Google Custom Search API and exports the results to Google Sheets documents or downloadable XLSX workbooks via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
