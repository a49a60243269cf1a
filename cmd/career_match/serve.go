package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-match/internal/config"
	"github.com/jonathan/career-match/internal/ranking"
	"github.com/jonathan/career-match/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for scoring skills against the career catalog.`,
	RunE:  runServe,
}

var (
	servePort       int
	serveCatalog    string
	serveConfigPath string
	serveMinScore   int
	serveThreshold  int
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveCatalog, "catalog", "c", "", "Path to career catalog JSON file (used when no database URL is configured)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().IntVar(&serveMinScore, "min-score", 0, "Default min-score applied to match requests")
	serveCmd.Flags().IntVar(&serveThreshold, "threshold", ranking.DefaultThreshold, "Default summary cutoff percentage")

	rootCmd.AddCommand(serveCmd)
}

// mergeServeConfig applies config-file values for flags the user did not
// set and resolves the database URL: the DATABASE_URL environment variable
// wins over the config file.
func mergeServeConfig(cmd *cobra.Command) (string, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if serveConfigPath == "" {
		return databaseURL, nil
	}

	cfg, err := config.LoadConfig(serveConfigPath)
	if err != nil {
		return "", err
	}
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	if !cmd.Flags().Changed("port") && cfg.Port != 0 {
		servePort = cfg.Port
	}
	if !cmd.Flags().Changed("catalog") && cfg.Catalog != "" {
		serveCatalog = cfg.Catalog
	}
	if !cmd.Flags().Changed("min-score") && cfg.MinScore != 0 {
		serveMinScore = cfg.MinScore
	}
	if !cmd.Flags().Changed("threshold") && cfg.Threshold != 0 {
		serveThreshold = cfg.Threshold
	}
	if databaseURL == "" {
		databaseURL = cfg.DatabaseURL
	}
	return databaseURL, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Catalog comes from the database when configured, otherwise from file
	databaseURL, err := mergeServeConfig(cmd)
	if err != nil {
		return err
	}
	if databaseURL == "" && serveCatalog == "" {
		return fmt.Errorf("either DATABASE_URL or --catalog is required")
	}

	cfg := server.Config{
		Port:        servePort,
		CatalogPath: serveCatalog,
		DatabaseURL: databaseURL,
		MinScore:    serveMinScore,
		Threshold:   serveThreshold,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
