package request

import (
	"strings"
	"unicode/utf8"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
)

// PlayerSpec describes a seat in a new round
type PlayerSpec struct {
	Name     string `json:"name,omitempty"`
	Strategy string `json:"strategy"`
}

// PuzzleSpec supplies a custom puzzle instead of drawing one
type PuzzleSpec struct {
	Solution string `json:"solution"`
	Category string `json:"category"`
}

// RoundConfigSpec overrides the server's round rules. Omitted fields keep
// the server defaults.
type RoundConfigSpec struct {
	VowelCost    *int  `json:"vowel_cost,omitempty"`
	MaxHints     *int  `json:"max_hints,omitempty"`
	MaxTurns     *int  `json:"max_turns,omitempty"`
	VowelsOnSpin *bool `json:"vowels_on_spin,omitempty"`
}

// Apply overlays the set fields onto base
func (c *RoundConfigSpec) Apply(base model.RoundConfig) model.RoundConfig {
	if c == nil {
		return base
	}
	if c.VowelCost != nil {
		base.VowelCost = *c.VowelCost
	}
	if c.MaxHints != nil {
		base.MaxHints = *c.MaxHints
	}
	if c.MaxTurns != nil {
		base.MaxTurns = *c.MaxTurns
	}
	if c.VowelsOnSpin != nil {
		base.VowelsOnSpin = *c.VowelsOnSpin
	}
	return base
}

// CreateRoundRequest is the request body for creating a round
type CreateRoundRequest struct {
	Players []PlayerSpec     `json:"players"`
	Puzzle  *PuzzleSpec      `json:"puzzle,omitempty"`
	Config  *RoundConfigSpec `json:"config,omitempty"`
}

// ActionRequest is the request body for applying an action
type ActionRequest struct {
	Kind       string `json:"kind"`
	Letter     string `json:"letter,omitempty"`
	Guess      string `json:"guess,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

// LetterRune returns the single letter carried by the request, or 0 if none.
// ok is false when more than one character was sent.
func (a ActionRequest) LetterRune() (letter rune, ok bool) {
	s := strings.TrimSpace(a.Letter)
	switch utf8.RuneCountInString(s) {
	case 0:
		return 0, true
	case 1:
		r, _ := utf8.DecodeRuneInString(s)
		return r, true
	default:
		return 0, false
	}
}

// HintRequest is the request body for requesting a hint
type HintRequest struct {
	Difficulty string `json:"difficulty,omitempty"`
}
