// Package main is the entry point for the ems CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/ems/internal/cli"
	"github.com/jacksmith/ems/internal/logging"
	"github.com/jacksmith/ems/internal/ops"
	"github.com/jacksmith/ems/internal/storage"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ems",
	Short: "ems - an employee records manager",
	Long: `ems keeps a small roster of employees in a local file and computes
their pay. Each employee is salaried (fixed salary), hourly (hours x rate)
or a manager (base + bonus).

The roster is stored in employees.yaml in the current directory unless
.emsconfig.yaml, EMS_DATA_FILE or --file say otherwise. Files ending in
.db, .sqlite or .sqlite3 are stored as SQLite databases.`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var (
	rootFile     string
	rootBackend  string
	rootLogLevel string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFile, "file", "f", "", "data file (default employees.yaml)")
	rootCmd.PersistentFlags().StringVar(&rootBackend, "backend", "", "storage backend: yaml or sqlite (default from file extension)")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "log level: debug, info, warn, error (default warn)")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("ems version {{.Version}}\n")
}

// loadConfig reads configuration from the working directory and applies
// command-line overrides.
func loadConfig() (*storage.Config, error) {
	cfg, err := storage.LoadConfig(".")
	if err != nil {
		return nil, err
	}
	if rootFile != "" {
		cfg.DataFile = rootFile
	}
	if rootBackend != "" {
		cfg.Backend = rootBackend
	}
	if rootLogLevel != "" {
		cfg.LogLevel = rootLogLevel
	}
	return cfg, nil
}

// openRoster loads configuration and the roster it points at.
func openRoster() (*ops.Roster, *storage.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	log, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	backend, err := storage.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	log = log.With().Str("file", backend.Path()).Logger()

	r, err := ops.Open(backend, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to load roster")
		return nil, nil, err
	}
	return r, cfg, nil
}
