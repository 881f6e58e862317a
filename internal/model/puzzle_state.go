package model

import (
	"fmt"
	"strings"
)

// Placeholder marks an unrevealed letter in a rendered puzzle
const Placeholder = '_'

// PuzzleState tracks the letters called against a single puzzle
type PuzzleState struct {
	Puzzle Puzzle `json:"puzzle"`

	// Guessed holds every letter called so far, present or not
	Guessed LetterSet `json:"guessed"`

	// Revealed holds the guessed letters that appear in the solution
	Revealed LetterSet `json:"revealed"`

	// SolvedByGuess is set when a solve attempt matched, revealing everything
	SolvedByGuess bool `json:"solved_by_guess"`
}

// NewPuzzleState creates a state with nothing guessed
func NewPuzzleState(p Puzzle) *PuzzleState {
	return &PuzzleState{Puzzle: p}
}

// Count returns how many times letter appears in the solution
func (s *PuzzleState) Count(letter rune) int {
	letter = NormalizeLetter(letter)
	return strings.Count(s.Puzzle.Solution, string(letter))
}

// IsGuessed reports whether letter has already been called
func (s *PuzzleState) IsGuessed(letter rune) bool {
	return s.Guessed.Has(NormalizeLetter(letter))
}

// Reveal records a guess of letter and returns the number of occurrences
// revealed. The state is unchanged when an error is returned.
func (s *PuzzleState) Reveal(letter rune) (int, error) {
	letter = NormalizeLetter(letter)
	if !IsLetter(letter) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, letter)
	}
	if s.Guessed.Has(letter) {
		return 0, fmt.Errorf("%w: %c", ErrAlreadyGuessed, letter)
	}

	s.Guessed = s.Guessed.Add(letter)
	count := s.Count(letter)
	if count > 0 {
		s.Revealed = s.Revealed.Add(letter)
	}
	return count, nil
}

// MarkSolved records a correct solve attempt
func (s *PuzzleState) MarkSolved() {
	s.SolvedByGuess = true
}

// IsSolved reports whether every letter position is revealed or the
// solution was guessed outright
func (s *PuzzleState) IsSolved() bool {
	return s.SolvedByGuess || s.HiddenCount() == 0
}

// IsVisible reports whether the solution character r is shown
func (s *PuzzleState) IsVisible(r rune) bool {
	return !IsLetter(r) || s.SolvedByGuess || s.Revealed.Has(r)
}

// Render shows revealed letters, Placeholder for hidden letters and
// punctuation and spaces verbatim
func (s *PuzzleState) Render() string {
	var b strings.Builder
	for _, r := range s.Puzzle.Solution {
		if s.IsVisible(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(Placeholder)
		}
	}
	return b.String()
}

// Pattern returns the render as a rune slice for positional inspection
func (s *PuzzleState) Pattern() []rune {
	return []rune(s.Render())
}

// HiddenCount returns the number of letter positions not yet revealed
func (s *PuzzleState) HiddenCount() int {
	n := 0
	for _, r := range s.Puzzle.Solution {
		if !s.IsVisible(r) {
			n++
		}
	}
	return n
}

// RevealedFraction returns the share of letter positions revealed
func (s *PuzzleState) RevealedFraction() float64 {
	total := s.Puzzle.LetterCount()
	if total == 0 {
		return 1
	}
	return float64(total-s.HiddenCount()) / float64(total)
}

// Unguessed returns the letters of one class not yet called, alphabetically
func (s *PuzzleState) Unguessed(vowels bool) []rune {
	var letters []rune
	for _, r := range AllLetters() {
		if IsVowel(r) == vowels && !s.Guessed.Has(r) {
			letters = append(letters, r)
		}
	}
	return letters
}

// HasUnguessed reports whether any letter of the class remains uncalled
func (s *PuzzleState) HasUnguessed(vowels bool) bool {
	return len(s.Unguessed(vowels)) > 0
}

// Clone returns an independent copy of the state
func (s *PuzzleState) Clone() *PuzzleState {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
