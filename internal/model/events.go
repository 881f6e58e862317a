package model

import "time"

// EventType identifies an entry in a round's history
type EventType string

const (
	EventSpin           EventType = "spin"
	EventLetterRevealed EventType = "letter_revealed"
	EventLetterMissed   EventType = "letter_missed"
	EventVowelBought    EventType = "vowel_bought"
	EventBankrupt       EventType = "bankrupt"
	EventLoseTurn       EventType = "lose_turn"
	EventSolveCorrect   EventType = "solve_correct"
	EventSolveIncorrect EventType = "solve_incorrect"
	EventHintUsed       EventType = "hint_used"
	EventPassed         EventType = "passed"
	EventRoundOver      EventType = "round_over"
)

// RoundEvent records something that happened during a round
type RoundEvent struct {
	Type      EventType `json:"type"`
	PlayerID  PlayerID  `json:"player_id,omitempty"`
	Turn      int       `json:"turn"`
	Letter    string    `json:"letter,omitempty"`
	Count     int       `json:"count,omitempty"`
	Amount    int       `json:"amount,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
