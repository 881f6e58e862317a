package frequency

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
)

// Ranker scores the letters that could still be called against a puzzle
type Ranker interface {
	// Name identifies the frequency source
	Name() string

	// Scores returns a score per unguessed letter. Higher is better.
	Scores(state *model.PuzzleState) map[rune]float64
}

// Scored pairs a letter with its score
type Scored struct {
	Letter rune
	Score  float64
}

// TableRanker ranks letters by a fixed frequency table
type TableRanker struct {
	name  string
	table Table
}

// Ensure TableRanker implements Ranker
var _ Ranker = (*TableRanker)(nil)

// NewTableRanker creates a ranker backed by a frequency table
func NewTableRanker(name string, table Table) *TableRanker {
	return &TableRanker{name: name, table: table}
}

func (r *TableRanker) Name() string {
	return r.name
}

// Scores returns the table weight of every unguessed letter
func (r *TableRanker) Scores(state *model.PuzzleState) map[rune]float64 {
	scores := make(map[rune]float64, 26)
	for _, l := range model.AllLetters() {
		if !state.IsGuessed(l) {
			scores[l] = r.table[l]
		}
	}
	return scores
}

// Rank returns the unguessed letters of one class, best first. Equal
// scores are ordered alphabetically.
func Rank(r Ranker, state *model.PuzzleState, vowels bool) []Scored {
	scores := r.Scores(state)
	candidates := lo.FilterMap(state.Unguessed(vowels), func(l rune, _ int) (Scored, bool) {
		score, ok := scores[l]
		return Scored{Letter: l, Score: score}, ok
	})
	slices.SortFunc(candidates, func(a, b Scored) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Letter, b.Letter)
	})
	return candidates
}

// Best returns the highest ranked unguessed letter of one class
func Best(r Ranker, state *model.PuzzleState, vowels bool) (rune, error) {
	ranked := Rank(r, state, vowels)
	if len(ranked) == 0 {
		class := "consonant"
		if vowels {
			class = "vowel"
		}
		return 0, fmt.Errorf("%w: no %s left to call", model.ErrNoCandidate, class)
	}
	return ranked[0].Letter, nil
}

// Share returns the weight of letter as a fraction of all unguessed letters
func Share(table Table, state *model.PuzzleState, letter rune) float64 {
	if state.IsGuessed(letter) {
		return 0
	}
	total := lo.SumBy(model.AllLetters(), func(l rune) float64 {
		if state.IsGuessed(l) {
			return 0
		}
		return table[l]
	})
	if total == 0 {
		return 0
	}
	return table[letter] / total
}

// ClassShare returns the combined share of the unguessed letters of one class
func ClassShare(table Table, state *model.PuzzleState, vowels bool) float64 {
	return lo.SumBy(state.Unguessed(vowels), func(l rune) float64 {
		return Share(table, state, l)
	})
}

// PresenceProbability estimates the chance that letter appears at least
// once among the hidden positions of the puzzle
func PresenceProbability(table Table, state *model.PuzzleState, letter rune) float64 {
	share := Share(table, state, letter)
	hidden := state.HiddenCount()
	if share <= 0 || hidden == 0 {
		return 0
	}
	return 1 - math.Pow(1-share, float64(hidden))
}
