package model

import (
	"encoding/json"
	"strings"
)

// Vowels are the letters that must be bought rather than spun for
const Vowels = "AEIOU"

// IsLetter reports whether r is one of the 26 playable letters (A-Z)
func IsLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// IsVowel reports whether r is a playable vowel. Y is a consonant.
func IsVowel(r rune) bool {
	return strings.ContainsRune(Vowels, r)
}

// IsConsonant reports whether r is a playable consonant
func IsConsonant(r rune) bool {
	return IsLetter(r) && !IsVowel(r)
}

// NormalizeLetter upper-cases ASCII lower-case letters and leaves anything else unchanged
func NormalizeLetter(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

// AllLetters returns A-Z in order
func AllLetters() []rune {
	letters := make([]rune, 0, 26)
	for r := 'A'; r <= 'Z'; r++ {
		letters = append(letters, r)
	}
	return letters
}

// LetterSet is a set of playable letters stored as a bitmask
type LetterSet uint32

func letterBit(r rune) LetterSet {
	if !IsLetter(r) {
		return 0
	}
	return 1 << uint(r-'A')
}

// NewLetterSet builds a set from the playable letters in s
func NewLetterSet(s string) LetterSet {
	var set LetterSet
	for _, r := range s {
		set = set.Add(NormalizeLetter(r))
	}
	return set
}

// Has reports whether r is in the set
func (s LetterSet) Has(r rune) bool {
	bit := letterBit(r)
	return bit != 0 && s&bit != 0
}

// Add returns the set with r included. Non-letters are ignored.
func (s LetterSet) Add(r rune) LetterSet {
	return s | letterBit(r)
}

// Union returns the letters in either set
func (s LetterSet) Union(other LetterSet) LetterSet {
	return s | other
}

// Len returns the number of letters in the set
func (s LetterSet) Len() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Letters returns the members in alphabetical order
func (s LetterSet) Letters() []rune {
	var letters []rune
	for r := 'A'; r <= 'Z'; r++ {
		if s.Has(r) {
			letters = append(letters, r)
		}
	}
	return letters
}

func (s LetterSet) String() string {
	return string(s.Letters())
}

// MarshalJSON encodes the set as a string of letters, e.g. "AERST"
func (s LetterSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a string of letters
func (s *LetterSet) UnmarshalJSON(data []byte) error {
	var letters string
	if err := json.Unmarshal(data, &letters); err != nil {
		return err
	}
	*s = NewLetterSet(letters)
	return nil
}
