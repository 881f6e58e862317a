package storage

import (
	"context"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Round operations
	SaveRound(ctx context.Context, round *model.Round) error
	GetRound(ctx context.Context, id model.RoundID) (*model.Round, error)
	DeleteRound(ctx context.Context, id model.RoundID) error
	RoundExists(ctx context.Context, id model.RoundID) (bool, error)

	// Puzzle operations
	SavePuzzles(ctx context.Context, puzzles []model.Puzzle) error
	GetPuzzles(ctx context.Context) ([]model.Puzzle, error)
	GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error)

	// Dictionary operations
	GetDictionaryWords(ctx context.Context) ([]string, error)
	SaveDictionaryWords(ctx context.Context, words []string) error
}
