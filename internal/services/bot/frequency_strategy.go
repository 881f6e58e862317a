package bot

import (
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/frequency"
)

// FrequencySolveThreshold is the revealed fraction above which frequency
// strategies solve once the dictionary resolves every word
const FrequencySolveThreshold = 0.8

// FrequencyStrategy calls letters in the order of a frequency model. It
// spins while consonants remain, buys a vowel when vowels dominate what is
// left and solves when the puzzle is nearly resolved or nothing else is legal.
type FrequencyStrategy struct {
	kind      model.StrategyKind
	ranker    frequency.Ranker
	table     frequency.Table
	vowelCost int
	lexicon   Lexicon
}

// Ensure FrequencyStrategy implements Strategy
var _ Strategy = (*FrequencyStrategy)(nil)

// NewMorseStrategy ranks letters by the brevity of their Morse code
func NewMorseStrategy(vowelCost int, lexicon Lexicon) *FrequencyStrategy {
	return &FrequencyStrategy{
		kind:      model.StrategyMorse,
		ranker:    frequency.NewTableRanker("morse", frequency.Morse),
		table:     frequency.Morse,
		vowelCost: vowelCost,
		lexicon:   lexicon,
	}
}

// NewOxfordStrategy ranks letters by Concise Oxford Dictionary frequency
func NewOxfordStrategy(vowelCost int, lexicon Lexicon) *FrequencyStrategy {
	return &FrequencyStrategy{
		kind:      model.StrategyOxford,
		ranker:    frequency.NewTableRanker("oxford", frequency.Oxford),
		table:     frequency.Oxford,
		vowelCost: vowelCost,
		lexicon:   lexicon,
	}
}

// NewTrigramStrategy ranks letters by the n-grams they form with revealed
// neighbours
func NewTrigramStrategy(vowelCost int, lexicon Lexicon) *FrequencyStrategy {
	return &FrequencyStrategy{
		kind:      model.StrategyTrigram,
		ranker:    frequency.NewContextRanker(),
		table:     frequency.English,
		vowelCost: vowelCost,
		lexicon:   lexicon,
	}
}

func (s *FrequencyStrategy) Kind() model.StrategyKind {
	return s.kind
}

func (s *FrequencyStrategy) ChooseAction(state *model.PuzzleState, score, _ int) (model.Action, error) {
	if state.RevealedFraction() >= FrequencySolveThreshold {
		if guess, ok := s.ChooseSolveGuess(state); ok {
			return model.Solve(guess), nil
		}
	}

	spin := canSpin(state)
	buy := canBuy(state, score, s.vowelCost)
	if buy && (!spin || frequency.ClassShare(s.table, state, true) >= VowelShareThreshold) {
		return model.Action{Kind: model.ActionBuyVowel}, nil
	}
	if spin {
		return model.Action{Kind: model.ActionSpin}, nil
	}

	// Nothing left to call: take the best available guess
	if rec := Reconstruct(state, s.ranker, s.lexicon); rec.Consistent {
		return model.Solve(rec.Guess), nil
	}
	return model.Pass(), nil
}

func (s *FrequencyStrategy) ChooseLetter(state *model.PuzzleState, vowel bool) (rune, error) {
	return frequency.Best(s.ranker, state, vowel)
}

func (s *FrequencyStrategy) ChooseSolveGuess(state *model.PuzzleState) (string, bool) {
	rec := Reconstruct(state, s.ranker, s.lexicon)
	return rec.Guess, rec.Complete && rec.Consistent
}
