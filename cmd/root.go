package cmd

import (
	"fmt"
	"os"

	"github.com/killallgit/secondlife-api/pkg/config"
	"github.com/killallgit/secondlife-api/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "secondlife-api",
	Short: "Second Life thrift store search API",
	Long: `Second Life API - find second-hand clothing near any location

The server geocodes a free-text location, searches for thrift stores,
donation centers and clothing swaps around it, and can ask a generative
model for a short summary of a chosen store.

Features:
  • Concurrent category search via Google Places
  • De-duplicated, labelled results with optional rating sort
  • Store summaries via Gemini or Claude
  • Optional in-memory or Redis response cache`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Add persistent flags for logging configuration
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error); defaults to logging.level")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// loadConfig initializes configuration for commands that need it
func loadConfig() (*config.Config, error) {
	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("initializing config: %w", err)
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger builds the process logger; flags win over config
func newLogger(cmd *cobra.Command, cfg *config.Config) zerolog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	jsonLogs, _ := cmd.Flags().GetBool("json-logs")

	if cfg != nil {
		if level == "" {
			level = cfg.Logging.Level
		}
		if !cmd.Flags().Changed("json-logs") {
			jsonLogs = cfg.Logging.JSON
		}
	}

	return logger.NewWithWriter(cmd.ErrOrStderr(), level, jsonLogs)
}
