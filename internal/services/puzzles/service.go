package puzzles

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/dependencies/random"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/storage"
)

// Fallback is served when no puzzle set has been loaded
func Fallback() model.Puzzle {
	p, _ := model.NewPuzzle("WHEEL OF FORTUNE", "TV Show")
	return p
}

// Service holds the puzzle set rounds are drawn from
type Service struct {
	storage storage.Storage
	random  random.Random
	logger  zerolog.Logger

	mu      sync.RWMutex
	puzzles []model.Puzzle
	index   map[model.PuzzleID]int
}

// New creates a new puzzle service
func New(storage storage.Storage, rnd random.Random, logger zerolog.Logger) *Service {
	return &Service{
		storage: storage,
		random:  rnd,
		logger:  logger.With().Str("component", "puzzles").Logger(),
		index:   make(map[model.PuzzleID]int),
	}
}

// LoadFromFile imports a CSV or HTML puzzle file, chosen by extension,
// and saves the puzzles to storage
func (s *Service) LoadFromFile(ctx context.Context, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening puzzle file: %w", err)
	}
	defer file.Close()

	var puzzles []model.Puzzle
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		puzzles, err = ParseHTML(file)
	default:
		puzzles, err = ParseCSV(file)
	}
	if err != nil {
		return 0, err
	}

	if err := s.storage.SavePuzzles(ctx, puzzles); err != nil {
		return 0, err
	}
	added := s.add(puzzles)

	s.logger.Info().
		Str("path", path).
		Int("parsed", len(puzzles)).
		Int("added", added).
		Msg("puzzle file loaded")
	return added, nil
}

// LoadFromStorage loads previously imported puzzles
func (s *Service) LoadFromStorage(ctx context.Context) (int, error) {
	puzzles, err := s.storage.GetPuzzles(ctx)
	if err != nil {
		return 0, err
	}
	return s.add(puzzles), nil
}

// Add registers puzzles directly (useful for testing)
func (s *Service) Add(puzzles ...model.Puzzle) int {
	return s.add(puzzles)
}

func (s *Service) add(puzzles []model.Puzzle) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, p := range puzzles {
		if _, dup := s.index[p.ID]; dup {
			continue
		}
		s.index[p.ID] = len(s.puzzles)
		s.puzzles = append(s.puzzles, p)
		added++
	}
	return added
}

// Count returns the number of loaded puzzles
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.puzzles)
}

// Random picks a loaded puzzle uniformly, or the fallback when none are loaded
func (s *Service) Random() model.Puzzle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.puzzles) == 0 {
		return Fallback()
	}
	return s.puzzles[s.random.Intn(len(s.puzzles))]
}

// Get finds a puzzle by ID, checking storage when it is not loaded locally
func (s *Service) Get(ctx context.Context, id model.PuzzleID) (model.Puzzle, error) {
	s.mu.RLock()
	idx, ok := s.index[id]
	if ok {
		p := s.puzzles[idx]
		s.mu.RUnlock()
		return p, nil
	}
	s.mu.RUnlock()

	p, err := s.storage.GetPuzzle(ctx, id)
	if err != nil {
		return model.Puzzle{}, err
	}
	return *p, nil
}
