package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
)

type ConfigSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) TestDefaults() {
	cfg, err := FromViper(New())
	s.Require().NoError(err)

	s.Equal(zerolog.InfoLevel, cfg.LogLevel)
	s.Equal("memory", cfg.StorageType)
	s.Equal(model.DefaultRoundConfig(), cfg.Round)
	s.Equal(30*time.Second, cfg.HintTimeout)
	s.Equal(8080, cfg.Port)
	s.False(cfg.Seeded())
}

func (s *ConfigSuite) TestEnvironmentOverrides() {
	s.T().Setenv("WHEEL_VOWEL_COST", "300")
	s.T().Setenv("WHEEL_VOWELS_ON_SPIN", "true")
	s.T().Setenv("WHEEL_SEED", "42")
	s.T().Setenv("WHEEL_LOG_LEVEL", "debug")

	cfg, err := FromViper(New())
	s.Require().NoError(err)
	s.Equal(300, cfg.Round.VowelCost)
	s.True(cfg.Round.VowelsOnSpin)
	s.Equal(uint64(42), cfg.Seed)
	s.Equal(zerolog.DebugLevel, cfg.LogLevel)
}

func (s *ConfigSuite) TestGeminiKeyFallback() {
	s.T().Setenv("WHEEL_GEMINI_API_KEY", "")
	s.T().Setenv("GEMINI_API_KEY", "")
	s.T().Setenv("GOOGLE_API_KEY", "google-key")

	cfg, err := FromViper(New())
	s.Require().NoError(err)
	s.Equal("google-key", cfg.GeminiAPIKey)
}

func (s *ConfigSuite) TestConfigFile() {
	path := filepath.Join(s.T().TempDir(), "wheel.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("max-hints: 5\nstorage-type: redis\n"), 0o600))

	cfg, err := Load(New(), path)
	s.Require().NoError(err)
	s.Equal(5, cfg.Round.MaxHints)
	s.Equal("redis", cfg.StorageType)
}

func (s *ConfigSuite) TestMissingConfigFile() {
	_, err := Load(New(), filepath.Join(s.T().TempDir(), "missing.yaml"))
	s.ErrorIs(err, model.ErrConfiguration)
}

func (s *ConfigSuite) TestInvalidValues() {
	v := New()
	v.Set(KeyStorageType, "postgres")
	_, err := FromViper(v)
	s.ErrorIs(err, model.ErrConfiguration)

	v = New()
	v.Set(KeyMaxTurns, 0)
	_, err = FromViper(v)
	s.ErrorIs(err, model.ErrConfiguration)

	v = New()
	v.Set(KeyLogLevel, "loud")
	_, err = FromViper(v)
	s.ErrorIs(err, model.ErrConfiguration)
}
