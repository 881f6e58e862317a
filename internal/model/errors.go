package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Configuration errors
	ErrConfiguration = errors.New("invalid configuration")

	// Letter and action errors
	ErrInvalidLetter      = errors.New("invalid letter")
	ErrAlreadyGuessed     = errors.New("letter already guessed")
	ErrInsufficientFunds  = errors.New("insufficient funds to buy a vowel")
	ErrIllegalAction      = errors.New("action not legal in current phase")
	ErrEmptyGuess         = errors.New("solve attempt is empty")
	ErrRoundOver          = errors.New("round is over")
	ErrHintQuotaExhausted = errors.New("no hints remaining")

	// Strategy errors
	ErrNoCandidate     = errors.New("no candidate letter remaining")
	ErrStrategy        = errors.New("strategy failure")
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrNotAITurn       = errors.New("current player is not computer controlled")

	// Round errors
	ErrRoundNotFound     = errors.New("round not found")
	ErrNotEnoughPlayers  = errors.New("at least one player is required")
	ErrTooManyPlayers    = errors.New("too many players")
	ErrDuplicatePlayerID = errors.New("duplicate player id")

	// Puzzle errors
	ErrPuzzleNotFound = errors.New("puzzle not found")
	ErrInvalidPuzzle  = errors.New("puzzle has no letters")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)

// StrategyError reports that a computer strategy proposed an action the
// engine could not accept in its current phase.
func StrategyError(kind StrategyKind, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStrategy, kind, err)
}

// IsRecoverable reports whether err is a rejection the acting player can
// recover from by choosing a different action.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrAlreadyGuessed) ||
		errors.Is(err, ErrInvalidLetter) ||
		errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrNoCandidate) ||
		errors.Is(err, ErrEmptyGuess) ||
		errors.Is(err, ErrHintQuotaExhausted)
}
