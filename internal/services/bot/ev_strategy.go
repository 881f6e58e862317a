package bot

import (
	"math"
	"strings"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/frequency"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/wheel"
)

// Profile tunes how an expected-value strategy weighs risk
type Profile struct {
	// SpinMultiplier scales the expected value of a spin
	SpinMultiplier float64

	// PenaltyAversion discounts a spin by this multiple of the chance of
	// landing on BANKRUPT or LOSE A TURN
	PenaltyAversion float64

	// BankrollAtRisk subtracts the expected loss of the current score to
	// BANKRUPT from the value of a spin
	BankrollAtRisk bool

	// SolveThreshold is the revealed fraction at which solving is considered
	SolveThreshold float64

	// RequireComplete only solves when every word resolved from the dictionary
	RequireComplete bool
}

// Standard profiles
var (
	SmartProfile = Profile{
		SpinMultiplier:  1,
		SolveThreshold:  0.75,
		RequireComplete: true,
	}
	ConservativeProfile = Profile{
		SpinMultiplier:  1,
		PenaltyAversion: 1.5,
		BankrollAtRisk:  true,
		SolveThreshold:  0.90,
		RequireComplete: true,
	}
	AggressiveProfile = Profile{
		SpinMultiplier: 1.25,
		SolveThreshold: 0.50,
	}
)

// EVStrategy compares the expected value of spinning, buying a vowel and
// solving. Letters are chosen by context so the spin and buy estimates are
// made for the letter that would actually be called.
type EVStrategy struct {
	kind      model.StrategyKind
	profile   Profile
	ranker    frequency.Ranker
	table     frequency.Table
	stats     wheel.Stats
	vowelCost int
	lexicon   Lexicon
}

// Ensure EVStrategy implements Strategy
var _ Strategy = (*EVStrategy)(nil)

// NewEVStrategy creates an expected-value strategy
func NewEVStrategy(kind model.StrategyKind, profile Profile, stats wheel.Stats, vowelCost int, lexicon Lexicon) *EVStrategy {
	return &EVStrategy{
		kind:      kind,
		profile:   profile,
		ranker:    frequency.NewContextRanker(),
		table:     frequency.English,
		stats:     stats,
		vowelCost: vowelCost,
		lexicon:   lexicon,
	}
}

// NewSmartStrategy weighs spins and vowels by expected value and solves
// once most of the puzzle is showing
func NewSmartStrategy(stats wheel.Stats, vowelCost int, lexicon Lexicon) *EVStrategy {
	return NewEVStrategy(model.StrategySmart, SmartProfile, stats, vowelCost, lexicon)
}

// NewConservativeStrategy discounts spins for the risk of losing its bank
func NewConservativeStrategy(stats wheel.Stats, vowelCost int, lexicon Lexicon) *EVStrategy {
	return NewEVStrategy(model.StrategyConservative, ConservativeProfile, stats, vowelCost, lexicon)
}

// NewAggressiveStrategy favours spinning and solves early on a best guess
func NewAggressiveStrategy(stats wheel.Stats, vowelCost int, lexicon Lexicon) *EVStrategy {
	return NewEVStrategy(model.StrategyAggressive, AggressiveProfile, stats, vowelCost, lexicon)
}

func (s *EVStrategy) Kind() model.StrategyKind {
	return s.kind
}

func (s *EVStrategy) ChooseAction(state *model.PuzzleState, score, _ int) (model.Action, error) {
	if state.RevealedFraction() >= s.profile.SolveThreshold {
		if guess, ok := s.ChooseSolveGuess(state); ok {
			return model.Solve(guess), nil
		}
	}

	spin := canSpin(state)
	buy := canBuy(state, score, s.vowelCost)
	switch {
	case spin && buy:
		if s.SpinValue(state, score) >= s.BuyValue(state) {
			return model.Action{Kind: model.ActionSpin}, nil
		}
		return model.Action{Kind: model.ActionBuyVowel}, nil
	case spin:
		return model.Action{Kind: model.ActionSpin}, nil
	case buy:
		return model.Action{Kind: model.ActionBuyVowel}, nil
	}

	// Nothing left to call: take the best available guess
	if rec := Reconstruct(state, s.ranker, s.lexicon); rec.Consistent {
		return model.Solve(rec.Guess), nil
	}
	return model.Pass(), nil
}

func (s *EVStrategy) ChooseLetter(state *model.PuzzleState, vowel bool) (rune, error) {
	return frequency.Best(s.ranker, state, vowel)
}

func (s *EVStrategy) ChooseSolveGuess(state *model.PuzzleState) (string, bool) {
	rec := Reconstruct(state, s.ranker, s.lexicon)
	if !rec.Consistent {
		return rec.Guess, false
	}
	if s.profile.RequireComplete && !rec.Complete {
		return rec.Guess, false
	}
	return rec.Guess, true
}

// SpinValue estimates the cash a spin earns: the mean wheel payout times
// the chance the best consonant is present, adjusted for the profile's risk
func (s *EVStrategy) SpinValue(state *model.PuzzleState, score int) float64 {
	letter, err := frequency.Best(s.ranker, state, false)
	if err != nil {
		return math.Inf(-1)
	}
	ev := s.stats.MeanPayout * frequency.PresenceProbability(s.table, state, letter)
	ev *= s.profile.SpinMultiplier
	ev *= math.Max(0, 1-s.profile.PenaltyAversion*s.stats.PenaltyDensity())
	if s.profile.BankrollAtRisk {
		ev -= s.stats.BankruptDensity * float64(score)
	}
	return ev
}

// BuyValue estimates what a vowel purchase is worth: the chance the best
// vowel is present times the mean payout, boosted by the share of
// unresolved words that show no vowel yet, less the cost
func (s *EVStrategy) BuyValue(state *model.PuzzleState) float64 {
	letter, err := frequency.Best(s.ranker, state, true)
	if err != nil {
		return math.Inf(-1)
	}
	p := frequency.PresenceProbability(s.table, state, letter)
	return p*s.stats.MeanPayout*(1+vowellessShare(state)) - float64(s.vowelCost)
}

// vowellessShare returns the fraction of words with hidden letters that
// have no revealed vowel
func vowellessShare(state *model.PuzzleState) float64 {
	open, vowelless := 0, 0
	for _, w := range strings.Fields(state.Render()) {
		if !strings.ContainsRune(w, model.Placeholder) {
			continue
		}
		open++
		if !strings.ContainsAny(w, model.Vowels) {
			vowelless++
		}
	}
	if open == 0 {
		return 0
	}
	return float64(vowelless) / float64(open)
}
