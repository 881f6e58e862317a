package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/config"
)

// Options holds the global CLI flags
type Options struct {
	ConfigFile string
	ServerURL  string
	Output     string
	Verbose    bool
}

// DefaultOptions returns Options with default values
func DefaultOptions() *Options {
	return &Options{
		ServerURL: getEnvOrDefault("WHEEL_SERVER", "http://localhost:8080"),
		Output:    "text",
	}
}

// loadConfig resolves application settings, letting command line flags
// override the config file and environment
func loadConfig(cmd *cobra.Command, opts *Options) (config.Config, error) {
	v := config.New()
	for _, key := range []string{config.KeyLogLevel, config.KeySeed, config.KeyStorageType, config.KeyPuzzlesPath, config.KeyWheelPath, config.KeyPort} {
		if f := cmd.Flags().Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return config.Config{}, err
			}
		}
	}
	cfg, err := config.Load(v, opts.ConfigFile)
	if err != nil {
		return config.Config{}, err
	}
	if opts.Verbose && cfg.LogLevel > zerolog.DebugLevel {
		cfg.LogLevel = zerolog.DebugLevel
	}
	return cfg, nil
}

// newLogger writes human readable logs to stderr
func newLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
