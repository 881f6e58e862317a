package bot

import (
	"strings"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/frequency"
)

// Reconstruction is a best guess at the full solution
type Reconstruction struct {
	Guess string

	// Complete is true when every partially revealed word was resolved from
	// the dictionary rather than filled letter by letter
	Complete bool

	// Consistent is false when a blank could not be filled or a word was
	// filled letter by letter without a single revealed letter to anchor it
	Consistent bool
}

// Reconstruct fills the blanks of a puzzle. Each word with blanks is
// resolved to the dictionary word whose blank letters score highest under
// ranker; words with no dictionary match are filled blank by blank with the
// letter that best fits its neighbours.
func Reconstruct(state *model.PuzzleState, ranker frequency.Ranker, lexicon Lexicon) Reconstruction {
	scores := ranker.Scores(state)
	ctx := frequency.NewContextRanker()

	rec := Reconstruction{Complete: true, Consistent: true}
	words := strings.Split(state.Render(), " ")
	for i, pattern := range words {
		if !strings.ContainsRune(pattern, model.Placeholder) {
			continue
		}

		if word, ok := bestMatch(pattern, state.Guessed, scores, lexicon); ok {
			words[i] = word
			continue
		}

		rec.Complete = false
		filled, ok := fillBlanks([]rune(pattern), state, ctx)
		if !ok || !anchored(pattern) {
			rec.Consistent = false
		}
		words[i] = string(filled)
	}
	rec.Guess = strings.Join(words, " ")
	return rec
}

func bestMatch(pattern string, guessed model.LetterSet, scores map[rune]float64, lexicon Lexicon) (string, bool) {
	if lexicon == nil {
		return "", false
	}
	candidates := lexicon.Match(pattern, guessed)
	if len(candidates) == 0 {
		return "", false
	}

	p := []rune(pattern)
	best, bestScore := "", -1.0
	for _, c := range candidates {
		score := 0.0
		for i, r := range []rune(c) {
			if p[i] == model.Placeholder {
				score += scores[r]
			}
		}
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	return best, true
}

// fillBlanks replaces each placeholder with the best fitting unguessed
// letter. ok is false if no letter is left for some blank.
func fillBlanks(pattern []rune, state *model.PuzzleState, ctx *frequency.ContextRanker) ([]rune, bool) {
	ok := true
	for i, c := range pattern {
		if c != model.Placeholder {
			continue
		}
		best, bestScore := rune(0), -1.0
		for _, l := range model.AllLetters() {
			if state.IsGuessed(l) {
				continue
			}
			if score := ctx.Slot(pattern, i, l); score > bestScore {
				best, bestScore = l, score
			}
		}
		if best == 0 {
			ok = false
			continue
		}
		pattern[i] = best
	}
	return pattern, ok
}

// anchored reports whether a word pattern shows at least one letter
func anchored(pattern string) bool {
	for _, r := range pattern {
		if r != model.Placeholder && model.IsLetter(r) {
			return true
		}
	}
	return false
}
