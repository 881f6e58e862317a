// Package config loads application settings from defaults, an optional
// config file, a .env file and WHEEL_ prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
)

// EnvPrefix is prepended to every environment variable
const EnvPrefix = "WHEEL"

// Keys
const (
	KeyLogLevel       = "log-level"
	KeyStorageType    = "storage-type"
	KeyRedisURL       = "redis-url"
	KeySeed           = "seed"
	KeyWheelPath      = "wheel-path"
	KeyPuzzlesPath    = "puzzles-path"
	KeyDictionaryPath = "dictionary-path"
	KeyVowelCost      = "vowel-cost"
	KeyMaxHints       = "max-hints"
	KeyMaxTurns       = "max-turns"
	KeyVowelsOnSpin   = "vowels-on-spin"
	KeyGeminiAPIKey   = "gemini-api-key"
	KeyGeminiModel    = "gemini-model"
	KeyHintTimeout    = "hint-timeout"
	KeyPort           = "port"
)

// Config is the resolved application configuration
type Config struct {
	LogLevel       zerolog.Level
	StorageType    string
	RedisURL       string
	Seed           uint64
	WheelPath      string
	PuzzlesPath    string
	DictionaryPath string
	Round          model.RoundConfig
	GeminiAPIKey   string
	GeminiModel    string
	HintTimeout    time.Duration
	Port           int
}

// Seeded reports whether a fixed random seed was configured
func (c Config) Seeded() bool {
	return c.Seed != 0
}

// New returns a viper instance with defaults and environment binding set up
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	round := model.DefaultRoundConfig()
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyStorageType, "memory")
	v.SetDefault(KeyRedisURL, "redis://localhost:6379/0")
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyWheelPath, "")
	v.SetDefault(KeyPuzzlesPath, "")
	v.SetDefault(KeyDictionaryPath, "")
	v.SetDefault(KeyVowelCost, round.VowelCost)
	v.SetDefault(KeyMaxHints, round.MaxHints)
	v.SetDefault(KeyMaxTurns, round.MaxTurns)
	v.SetDefault(KeyVowelsOnSpin, round.VowelsOnSpin)
	v.SetDefault(KeyGeminiAPIKey, "")
	v.SetDefault(KeyGeminiModel, "gemini-1.5-flash")
	v.SetDefault(KeyHintTimeout, 30*time.Second)
	v.SetDefault(KeyPort, 8080)
	return v
}

// Load reads a .env file if present and then the config file at path, if
// one is given, into v
func Load(v *viper.Viper, path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: .env: %w", model.ErrConfiguration, err)
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: reading %s: %w", model.ErrConfiguration, path, err)
		}
	}
	return FromViper(v)
}

// FromViper resolves and validates the settings held by v
func FromViper(v *viper.Viper) (Config, error) {
	level, err := zerolog.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", model.ErrConfiguration, KeyLogLevel, err)
	}

	cfg := Config{
		LogLevel:       level,
		StorageType:    strings.ToLower(v.GetString(KeyStorageType)),
		RedisURL:       v.GetString(KeyRedisURL),
		Seed:           v.GetUint64(KeySeed),
		WheelPath:      v.GetString(KeyWheelPath),
		PuzzlesPath:    v.GetString(KeyPuzzlesPath),
		DictionaryPath: v.GetString(KeyDictionaryPath),
		Round: model.RoundConfig{
			VowelCost:    v.GetInt(KeyVowelCost),
			MaxHints:     v.GetInt(KeyMaxHints),
			MaxTurns:     v.GetInt(KeyMaxTurns),
			VowelsOnSpin: v.GetBool(KeyVowelsOnSpin),
		},
		GeminiAPIKey: v.GetString(KeyGeminiAPIKey),
		GeminiModel:  v.GetString(KeyGeminiModel),
		HintTimeout:  v.GetDuration(KeyHintTimeout),
		Port:         v.GetInt(KeyPort),
	}
	if cfg.GeminiAPIKey == "" {
		cfg.GeminiAPIKey = firstEnv("GEMINI_API_KEY", "GOOGLE_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings for values the application cannot run with
func (c Config) Validate() error {
	switch c.StorageType {
	case "memory", "redis":
	default:
		return fmt.Errorf("%w: %s must be memory or redis, got %q", model.ErrConfiguration, KeyStorageType, c.StorageType)
	}
	if c.Round.VowelCost < 0 {
		return fmt.Errorf("%w: %s must not be negative", model.ErrConfiguration, KeyVowelCost)
	}
	if c.Round.MaxHints < 0 {
		return fmt.Errorf("%w: %s must not be negative", model.ErrConfiguration, KeyMaxHints)
	}
	if c.Round.MaxTurns <= 0 {
		return fmt.Errorf("%w: %s must be positive", model.ErrConfiguration, KeyMaxTurns)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: %s out of range", model.ErrConfiguration, KeyPort)
	}
	return nil
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
