package bot

import (
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
)

// Input is the source of a human player's decisions, such as a terminal
type Input interface {
	ChooseAction(state *model.PuzzleState, score, hintsRemaining int) (model.Action, error)
	ChooseLetter(state *model.PuzzleState, vowel bool) (rune, error)
	ChooseSolveGuess(state *model.PuzzleState) (string, bool)
}

// HumanStrategy defers every decision to an Input
type HumanStrategy struct {
	input Input
}

// Ensure HumanStrategy implements Strategy
var _ Strategy = (*HumanStrategy)(nil)

// NewHumanStrategy creates a strategy backed by input
func NewHumanStrategy(input Input) *HumanStrategy {
	return &HumanStrategy{input: input}
}

func (h *HumanStrategy) Kind() model.StrategyKind {
	return model.StrategyHuman
}

func (h *HumanStrategy) ChooseAction(state *model.PuzzleState, score, hintsRemaining int) (model.Action, error) {
	return h.input.ChooseAction(state, score, hintsRemaining)
}

func (h *HumanStrategy) ChooseLetter(state *model.PuzzleState, vowel bool) (rune, error) {
	return h.input.ChooseLetter(state, vowel)
}

func (h *HumanStrategy) ChooseSolveGuess(state *model.PuzzleState) (string, bool) {
	return h.input.ChooseSolveGuess(state)
}
