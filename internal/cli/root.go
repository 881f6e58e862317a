package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/config"
)

var (
	opts   *Options
	appCfg config.Config
	logger zerolog.Logger
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts = DefaultOptions()

	rootCmd := &cobra.Command{
		Use:   "wheel",
		Short: "Wheel of Fortune with computer opponents and hints",
		Long: `wheel plays Wheel of Fortune rounds in the terminal against computer
strategies, runs batch simulations between strategies, serves the JSON API
and talks to a running server.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			appCfg, err = loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger = newLogger(appCfg.LogLevel)
			client = NewClient(opts.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String(config.KeyLogLevel, "info", "Log level (env: WHEEL_LOG_LEVEL)")
	rootCmd.PersistentFlags().Uint64(config.KeySeed, 0, "Random seed, 0 for unseeded (env: WHEEL_SEED)")
	rootCmd.PersistentFlags().String(config.KeyPuzzlesPath, "", "Puzzle CSV or HTML file (env: WHEEL_PUZZLES_PATH)")
	rootCmd.PersistentFlags().String(config.KeyWheelPath, "", "Wheel YAML file (env: WHEEL_WHEEL_PATH)")
	rootCmd.PersistentFlags().StringVar(&opts.ServerURL, "server", opts.ServerURL, "Server URL for remote commands (env: WHEEL_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", opts.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", opts.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newRemoteCmd())

	return rootCmd
}

// Execute runs the root command, cancelling its context on SIGINT or SIGTERM
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
