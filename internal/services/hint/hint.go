package hint

import (
	"context"
	"fmt"
	"strings"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
)

// Difficulty controls how direct a hint is
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty resolves a difficulty name. An empty name means medium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return DifficultyMedium, nil
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	default:
		return "", fmt.Errorf("%w: unknown hint difficulty %q", model.ErrIllegalAction, s)
	}
}

// Request describes the puzzle a hint is wanted for
type Request struct {
	Puzzle     model.Puzzle
	Display    string // Current render, underscores for hidden letters
	Difficulty Difficulty
	HintsUsed  int
}

// Provider produces hint text. It never fails: providers that call out to
// a service fall back to a rule-based hint.
type Provider interface {
	RequestHint(ctx context.Context, req Request) string
}

// RuleBased builds hints from the puzzle's shape and category
type RuleBased struct{}

// Ensure RuleBased implements Provider
var _ Provider = RuleBased{}

// RequestHint returns a hint derived from word and letter counts
func (RuleBased) RequestHint(_ context.Context, req Request) string {
	words := len(req.Puzzle.Words())
	letters := req.Puzzle.LetterCount()
	category := req.Puzzle.Category
	if category == "" {
		category = "puzzle"
	}

	switch req.Difficulty {
	case DifficultyEasy:
		switch strings.ToLower(category) {
		case "phrase":
			return fmt.Sprintf("This common saying has %d words and %d letters total.", words, letters)
		case "thing":
			return fmt.Sprintf("This object or item has %d letters in its name.", letters)
		case "title":
			return fmt.Sprintf("This title or name consists of %d words.", words)
		default:
			return fmt.Sprintf("This %s has %d words and %d letters.", strings.ToLower(category), words, letters)
		}
	case DifficultyHard:
		return fmt.Sprintf("Think about what belongs in the '%s' category...", category)
	default:
		switch {
		case containsWord(req.Puzzle.Solution, "AND"):
			return "This answer connects two related concepts."
		case words == 1:
			return fmt.Sprintf("A single word in the %s category.", category)
		default:
			return fmt.Sprintf("Multiple words that fit the %s theme.", category)
		}
	}
}

func containsWord(solution, word string) bool {
	for _, w := range strings.Fields(solution) {
		if w == word {
			return true
		}
	}
	return false
}
