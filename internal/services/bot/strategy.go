package bot

import (
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
)

// Strategy decides every move a player makes. Actions may leave the letter
// or guess empty; the driver then asks ChooseLetter or ChooseSolveGuess.
type Strategy interface {
	// Kind identifies the strategy
	Kind() model.StrategyKind

	// ChooseAction picks the next move for a player with the given score
	ChooseAction(state *model.PuzzleState, score, hintsRemaining int) (model.Action, error)

	// ChooseLetter picks an unguessed vowel or consonant
	ChooseLetter(state *model.PuzzleState, vowel bool) (rune, error)

	// ChooseSolveGuess proposes a full solution. ok is false when the
	// strategy is not confident enough to solve.
	ChooseSolveGuess(state *model.PuzzleState) (guess string, ok bool)
}

// Lexicon supplies dictionary words matching a partially revealed word
type Lexicon interface {
	Match(pattern string, excluded model.LetterSet) []string
}

// VowelShareThreshold is the share of remaining letter frequency held by
// vowels at which frequency strategies buy a vowel instead of spinning
const VowelShareThreshold = 0.40

// canSpin reports whether a consonant is left to call
func canSpin(state *model.PuzzleState) bool {
	return state.HasUnguessed(false)
}

// canBuy reports whether a vowel is left and affordable
func canBuy(state *model.PuzzleState, score, vowelCost int) bool {
	return score >= vowelCost && state.HasUnguessed(true)
}
