package model

import (
	"fmt"
	"strings"
)

// PlayerID identifies a player within a round
type PlayerID string

// StrategyKind names the decision procedure controlling a player
type StrategyKind string

const (
	StrategyHuman        StrategyKind = "human"
	StrategyMorse        StrategyKind = "morse"
	StrategyOxford       StrategyKind = "oxford"
	StrategyTrigram      StrategyKind = "trigram"
	StrategySmart        StrategyKind = "smart"
	StrategyConservative StrategyKind = "conservative"
	StrategyAggressive   StrategyKind = "aggressive"
)

var strategyNames = map[StrategyKind]string{
	StrategyHuman:        "Human",
	StrategyMorse:        "Morse Code",
	StrategyOxford:       "Oxford Dictionary",
	StrategyTrigram:      "Trigram",
	StrategySmart:        "Smart AI",
	StrategyConservative: "Conservative AI",
	StrategyAggressive:   "Aggressive AI",
}

// Strategies returns every strategy kind, human first
func Strategies() []StrategyKind {
	return []StrategyKind{
		StrategyHuman,
		StrategyMorse,
		StrategyOxford,
		StrategyTrigram,
		StrategySmart,
		StrategyConservative,
		StrategyAggressive,
	}
}

// ParseStrategy resolves a strategy name case-insensitively
func ParseStrategy(s string) (StrategyKind, error) {
	kind := StrategyKind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := strategyNames[kind]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
	return kind, nil
}

// DisplayName returns a human readable name for the strategy
func (k StrategyKind) DisplayName() string {
	if name, ok := strategyNames[k]; ok {
		return name
	}
	return string(k)
}

// IsAI reports whether the strategy is computer controlled
func (k StrategyKind) IsAI() bool {
	return k != StrategyHuman
}

// Player is a participant in a round
type Player struct {
	ID       PlayerID     `json:"id"`
	Name     string       `json:"name"`
	Strategy StrategyKind `json:"strategy"`

	// Round winnings, never negative
	Score int `json:"score"`

	ActiveInRound bool `json:"active_in_round"`
}
