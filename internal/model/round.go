package model

import (
	"slices"
	"time"
)

// RoundID uniquely identifies a round
type RoundID string

// RoundPhase represents what the round is waiting for
type RoundPhase string

const (
	PhaseAwaitingAction    RoundPhase = "awaiting_action"    // Current player picks spin, buy, solve, hint or pass
	PhaseAwaitingConsonant RoundPhase = "awaiting_consonant" // Current player spun cash and must call a consonant
	PhaseRoundOver         RoundPhase = "round_over"         // Solved, exhausted or turn cap reached
)

// RoundConfig holds the rule parameters of a round
type RoundConfig struct {
	VowelCost int `json:"vowel_cost"`
	MaxHints  int `json:"max_hints"`

	// MaxTurns ends the round with no winner after this many turn changes
	MaxTurns int `json:"max_turns"`

	// VowelsOnSpin lets a vowel be called after a cash spin instead of bought
	VowelsOnSpin bool `json:"vowels_on_spin"`
}

// DefaultRoundConfig returns the standard rules
func DefaultRoundConfig() RoundConfig {
	return RoundConfig{
		VowelCost:    250,
		MaxHints:     3,
		MaxTurns:     500,
		VowelsOnSpin: false,
	}
}

// Round is a single puzzle played to completion by a fixed set of players
type Round struct {
	ID     RoundID      `json:"id"`
	State  *PuzzleState `json:"state"`
	Config RoundConfig  `json:"config"`
	Phase  RoundPhase   `json:"phase"`

	// Players in turn order
	Players    []Player `json:"players"`
	CurrentIdx int      `json:"current_idx"`

	// PendingValue is the cash wedge awaiting a consonant call
	PendingValue int `json:"pending_value,omitempty"`

	Turn      int      `json:"turn"` // Number of turn changes so far
	HintsUsed int      `json:"hints_used"`
	Winner    PlayerID `json:"winner,omitempty"`

	History []RoundEvent `json:"history,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CurrentPlayer returns the player whose turn it is
func (r *Round) CurrentPlayer() *Player {
	if len(r.Players) == 0 {
		return nil
	}
	return &r.Players[r.CurrentIdx]
}

// Player finds a player by ID
func (r *Round) Player(id PlayerID) (*Player, bool) {
	for i := range r.Players {
		if r.Players[i].ID == id {
			return &r.Players[i], true
		}
	}
	return nil, false
}

// IsOver returns true once the round has ended
func (r *Round) IsOver() bool {
	return r.Phase == PhaseRoundOver
}

// HintsRemaining returns the number of hints still available
func (r *Round) HintsRemaining() int {
	return max(r.Config.MaxHints-r.HintsUsed, 0)
}

// Standings returns the players ordered by score, highest first.
// Equal scores keep turn order.
func (r *Round) Standings() []Player {
	standings := slices.Clone(r.Players)
	slices.SortStableFunc(standings, func(a, b Player) int {
		return b.Score - a.Score
	})
	return standings
}

// Clone returns a deep copy of the round
func (r *Round) Clone() *Round {
	if r == nil {
		return nil
	}
	c := *r
	c.State = r.State.Clone()
	c.Players = slices.Clone(r.Players)
	c.History = slices.Clone(r.History)
	return &c
}
