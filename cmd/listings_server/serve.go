package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/job-listings/internal/config"
	"github.com/jonathan/job-listings/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the search and export endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Load()
	if servePort > 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:              cfg.Port,
		GoogleAPIKey:      cfg.GoogleAPIKey,
		GoogleCX:          cfg.GoogleCX,
		SheetsCredentials: cfg.SheetsCredentials,
	})

	return srv.Start()
}
