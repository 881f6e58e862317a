package redis

import (
	"fmt"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "wheel"

// roundKey returns the Redis key for a Round
func roundKey(id model.RoundID) string {
	return fmt.Sprintf("%s:round:%s", keyPrefix, id)
}

// puzzlesKey returns the Redis key for the HASH of puzzles by ID
func puzzlesKey() string {
	return fmt.Sprintf("%s:puzzles", keyPrefix)
}

// dictionaryKey returns the Redis key for the dictionary word set
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}
