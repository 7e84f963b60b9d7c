package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/talentbruecke/placement-backend/internal/config"
	"github.com/talentbruecke/placement-backend/internal/logger"
	"github.com/talentbruecke/placement-backend/internal/server"
)

var (
	servePort    int
	serveConfig  string
	serveCatalog string
	serveLogJSON bool
	serveDebug   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the placement REST endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to a JSON config file")
	serveCmd.Flags().StringVar(&serveCatalog, "catalog", "", "Path to a document requirements override file")
	serveCmd.Flags().BoolVar(&serveLogJSON, "log-json", false, "Emit JSON logs")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Port:        servePort,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		CatalogPath: serveCatalog,
		LogJSON:     serveLogJSON,
		Debug:       serveDebug,
	}

	if serveConfig != "" {
		fileCfg, err := config.LoadConfig(serveConfig)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		CatalogPath: cfg.CatalogPath,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
