package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash"
)

// PuzzleID identifies a puzzle within a puzzle set
type PuzzleID string

// Puzzle is a phrase to be revealed and the category shown alongside it
type Puzzle struct {
	ID       PuzzleID `json:"id"`
	Solution string   `json:"solution"`
	Category string   `json:"category"`

	// Optional provenance from imported puzzle sets
	Date      string `json:"date,omitempty"`
	RoundType string `json:"round_type,omitempty"`
}

// NewPuzzle normalizes the solution to upper case, collapses runs of
// whitespace and derives a stable ID from the solution and category.
func NewPuzzle(solution, category string) (Puzzle, error) {
	solution = strings.Join(strings.Fields(strings.ToUpper(solution)), " ")
	category = strings.TrimSpace(category)

	p := Puzzle{
		ID:       PuzzleIDFor(solution, category),
		Solution: solution,
		Category: category,
	}
	if err := p.Validate(); err != nil {
		return Puzzle{}, err
	}
	return p, nil
}

// PuzzleIDFor hashes a solution and category into a short hex ID
func PuzzleIDFor(solution, category string) PuzzleID {
	sum := xxhash.Sum64String(solution + "\x00" + strings.ToUpper(category))
	return PuzzleID(strconv.FormatUint(sum, 16))
}

// Validate checks that the solution holds at least one playable letter
func (p Puzzle) Validate() error {
	for _, r := range p.Solution {
		if IsLetter(r) {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidPuzzle, p.Solution)
}

// Words returns the space-separated words of the solution
func (p Puzzle) Words() []string {
	return strings.Fields(p.Solution)
}

// LetterCount returns the number of playable letter positions
func (p Puzzle) LetterCount() int {
	n := 0
	for _, r := range p.Solution {
		if IsLetter(r) {
			n++
		}
	}
	return n
}
