package factory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/config"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/dependencies/clock"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/dependencies/random"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/bot"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/dictionary"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/game"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/hint"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/puzzles"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/wheel"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/storage"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/storage/memory"
	redisstorage "github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Wheel             *wheel.Wheel
	DictionaryService *dictionary.Service
	PuzzleService     *puzzles.Service
	Hints             hint.Provider
	GameController    *game.Controller
	BotService        *bot.Service

	Logger zerolog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config

	// Seed fixes the random source when non-zero
	Seed uint64

	// WheelPath is a YAML wheel file; empty uses the default wheel
	WheelPath string
	// PuzzlesPath is a CSV or HTML puzzle file (optional)
	PuzzlesPath string
	// DictionaryPath is a word list; empty uses stored or built-in words
	DictionaryPath string

	Round model.RoundConfig
	Hint  hint.Config

	// Logger is the application logger
	Logger zerolog.Logger
}

// FromConfig converts loaded settings into a factory Config
func FromConfig(cfg config.Config, logger zerolog.Logger) Config {
	fc := Config{
		StorageType:    cfg.StorageType,
		Seed:           cfg.Seed,
		WheelPath:      cfg.WheelPath,
		PuzzlesPath:    cfg.PuzzlesPath,
		DictionaryPath: cfg.DictionaryPath,
		Round:          cfg.Round,
		Hint: hint.Config{
			APIKey:   cfg.GeminiAPIKey,
			Model:    cfg.GeminiModel,
			Timeout:  cfg.HintTimeout,
			Attempts: hint.DefaultConfig().Attempts,
		},
		Logger: logger,
	}
	if cfg.StorageType == StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("%w: RedisConfig required when StorageType is redis", model.ErrConfiguration)
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, fmt.Errorf("%w: invalid StorageType: must be 'memory' or 'redis'", model.ErrConfiguration)
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random = random.New()
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	}

	segments := wheel.DefaultSegments()
	if cfg.WheelPath != "" {
		var err error
		if segments, err = wheel.LoadFile(cfg.WheelPath); err != nil {
			return nil, err
		}
	}

	hintCfg := cfg.Hint
	if hintCfg.Model == "" {
		hintCfg.Model = hint.DefaultModel
	}
	if hintCfg.Timeout == 0 {
		hintCfg.Timeout = hint.DefaultConfig().Timeout
	}
	hints, err := hint.New(ctx, hintCfg, logger)
	if err != nil {
		return nil, err
	}

	app, err := newWithDependencies(store, clk, rnd, segments, hints, roundConfig(cfg.Round), logger)
	if err != nil {
		return nil, err
	}
	if err := app.load(ctx, cfg); err != nil {
		return nil, err
	}
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	segments []model.Segment,
	hints hint.Provider,
	round model.RoundConfig,
	logger zerolog.Logger,
) (*App, error) {
	w, err := wheel.New(segments, rnd)
	if err != nil {
		return nil, err
	}

	dictService := dictionary.New(store, logger)
	puzzleService := puzzles.New(store, rnd, logger)
	gameController := game.NewController(store, w, puzzleService, hints, round, clk, rnd, logger)
	strategies := bot.NewStrategies(bot.Params{
		VowelCost: round.VowelCost,
		Wheel:     w.Stats(),
		Lexicon:   dictService,
	})
	botService := bot.NewService(gameController, strategies, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		Wheel:             w,
		DictionaryService: dictService,
		PuzzleService:     puzzleService,
		Hints:             hints,
		GameController:    gameController,
		BotService:        botService,
		Logger:            logger,
	}, nil
}

// load fills the dictionary and puzzle set from files, falling back to
// storage and then to the built-in words
func (a *App) load(ctx context.Context, cfg Config) error {
	start := time.Now()

	switch {
	case cfg.DictionaryPath != "":
		if err := a.DictionaryService.LoadFromFile(ctx, cfg.DictionaryPath); err != nil {
			return err
		}
	default:
		err := a.DictionaryService.LoadFromStorage(ctx)
		if errors.Is(err, model.ErrDictionaryNotLoaded) {
			err = a.DictionaryService.LoadDefault()
		}
		if err != nil {
			return err
		}
	}

	if cfg.PuzzlesPath != "" {
		if _, err := a.PuzzleService.LoadFromFile(ctx, cfg.PuzzlesPath); err != nil {
			return err
		}
	} else if _, err := a.PuzzleService.LoadFromStorage(ctx); err != nil {
		return err
	}

	a.Logger.Info().
		Int("words", a.DictionaryService.WordCount()).
		Int("puzzles", a.PuzzleService.Count()).
		Dur("duration", time.Since(start)).
		Msg("application data loaded")
	return nil
}

// Close releases storage connections
func (a *App) Close() error {
	if c, ok := a.Storage.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

func roundConfig(cfg model.RoundConfig) model.RoundConfig {
	if cfg == (model.RoundConfig{}) {
		return model.DefaultRoundConfig()
	}
	return cfg
}
