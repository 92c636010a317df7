package main

import (
	"log"

	"recruitos/internal/config"
	"recruitos/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const app = "recruitos"

var (
	// Used for flags.
	debug   bool
	jsonLog bool

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "recruitos extracts applicant fields from resume documents and screens them for duplicates",
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&jsonLog, "json", "j", false, "json format for logging")
}

// setup loads the configuration and builds the logger shared by all commands.
// Command line flags win over the config file for logging settings.
func setup() (*config.Config, *zap.Logger) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading configuration: %v", err)
	}

	if debug {
		cfg.Log.Debug = true
	}
	if jsonLog {
		cfg.Log.JSON = true
	}

	lg, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("creating a logger: %v", err)
	}

	return cfg, lg
}
