package frequency

import (
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
)

// baseWeight scales the unigram prior added to contextual scores so that
// letters with no neighbouring evidence are still ordered sensibly
const baseWeight = 0.1

// ContextRanker scores letters by the bigrams and trigrams they would form
// with the revealed letters around each hidden position
type ContextRanker struct {
	bigrams  map[string]float64
	trigrams map[string]float64
	base     Table
}

// Ensure ContextRanker implements Ranker
var _ Ranker = (*ContextRanker)(nil)

// NewContextRanker creates a ranker over the standard English n-gram tables
func NewContextRanker() *ContextRanker {
	return &ContextRanker{
		bigrams:  Bigrams,
		trigrams: Trigrams,
		base:     English,
	}
}

func (r *ContextRanker) Name() string {
	return "trigram"
}

// Scores sums, over every hidden position, the n-gram weight each
// unguessed letter would form with its revealed neighbours
func (r *ContextRanker) Scores(state *model.PuzzleState) map[rune]float64 {
	scores := make(map[rune]float64, 26)
	for _, l := range model.AllLetters() {
		if !state.IsGuessed(l) {
			scores[l] = r.base[l] * baseWeight
		}
	}

	pattern := state.Pattern()
	for i, c := range pattern {
		if c != model.Placeholder {
			continue
		}
		left := neighbour(pattern, i-1)
		right := neighbour(pattern, i+1)
		if left == 0 && right == 0 {
			continue
		}
		for l := range scores {
			scores[l] += r.contextScore(left, l, right)
		}
	}
	return scores
}

// contextScore returns the n-gram weight of letter between left and right.
// A zero neighbour means unknown or a word boundary.
func (r *ContextRanker) contextScore(left, letter, right rune) float64 {
	score := 0.0
	if left != 0 {
		score += r.bigrams[string([]rune{left, letter})]
	}
	if right != 0 {
		score += r.bigrams[string([]rune{letter, right})]
	}
	if left != 0 && right != 0 {
		score += r.trigrams[string([]rune{left, letter, right})]
	}
	return score
}

func neighbour(pattern []rune, i int) rune {
	if i < 0 || i >= len(pattern) {
		return 0
	}
	if !model.IsLetter(pattern[i]) {
		return 0
	}
	return pattern[i]
}

// Slot scores letter for the hidden position i of pattern from its
// immediate neighbours plus the unigram prior
func (r *ContextRanker) Slot(pattern []rune, i int, letter rune) float64 {
	return r.contextScore(neighbour(pattern, i-1), letter, neighbour(pattern, i+1)) + r.base[letter]*baseWeight
}
