package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Rounds are copied on the way in and out so callers never share state.
type Storage struct {
	mu sync.RWMutex

	rounds          map[model.RoundID]*model.Round
	puzzles         map[model.PuzzleID]model.Puzzle
	dictionaryWords []string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		rounds:  make(map[model.RoundID]*model.Round),
		puzzles: make(map[model.PuzzleID]model.Puzzle),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Round operations

func (s *Storage) SaveRound(ctx context.Context, round *model.Round) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rounds[round.ID] = round.Clone()
	return nil
}

func (s *Storage) GetRound(ctx context.Context, id model.RoundID) (*model.Round, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	round, ok := s.rounds[id]
	if !ok {
		return nil, model.ErrRoundNotFound
	}
	return round.Clone(), nil
}

func (s *Storage) DeleteRound(ctx context.Context, id model.RoundID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rounds, id)
	return nil
}

func (s *Storage) RoundExists(ctx context.Context, id model.RoundID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rounds[id]
	return ok, nil
}

// Puzzle operations

func (s *Storage) SavePuzzles(ctx context.Context, puzzles []model.Puzzle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range puzzles {
		s.puzzles[p.ID] = p
	}
	return nil
}

func (s *Storage) GetPuzzles(ctx context.Context) ([]model.Puzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	puzzles := make([]model.Puzzle, 0, len(s.puzzles))
	for _, p := range s.puzzles {
		puzzles = append(puzzles, p)
	}
	sort.Slice(puzzles, func(i, j int) bool {
		return puzzles[i].ID < puzzles[j].ID
	})
	return puzzles, nil
}

func (s *Storage) GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.puzzles[id]
	if !ok {
		return nil, model.ErrPuzzleNotFound
	}
	return &p, nil
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dictionaryWords == nil {
		return nil, model.ErrDictionaryNotLoaded
	}
	return slices.Clone(s.dictionaryWords), nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dictionaryWords = slices.Clone(words)
	if s.dictionaryWords == nil {
		s.dictionaryWords = []string{}
	}
	return nil
}
