package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

type PuzzleStateSuite struct {
	suite.Suite
	state *PuzzleState
}

func TestPuzzleStateSuite(t *testing.T) {
	suite.Run(t, new(PuzzleStateSuite))
}

func (s *PuzzleStateSuite) SetupTest() {
	p, err := NewPuzzle("Hello  world", "Phrase")
	s.Require().NoError(err)
	s.state = NewPuzzleState(p)
}

func (s *PuzzleStateSuite) TestNewPuzzleNormalizes() {
	s.Equal("HELLO WORLD", s.state.Puzzle.Solution)
	s.Equal("Phrase", s.state.Puzzle.Category)
	s.NotEmpty(s.state.Puzzle.ID)
}

func (s *PuzzleStateSuite) TestNewPuzzleRejectsNoLetters() {
	_, err := NewPuzzle("123 !", "Numbers")
	s.ErrorIs(err, ErrInvalidPuzzle)
}

func (s *PuzzleStateSuite) TestPuzzleIDStable() {
	a, err := NewPuzzle("HELLO WORLD", "PHRASE")
	s.Require().NoError(err)
	s.Equal(s.state.Puzzle.ID, a.ID)
}

func (s *PuzzleStateSuite) TestRenderHidesLetters() {
	s.Equal("_____ _____", s.state.Render())
}

func (s *PuzzleStateSuite) TestRenderKeepsPunctuation() {
	p, err := NewPuzzle("DON'T STOP!", "Phrase")
	s.Require().NoError(err)
	state := NewPuzzleState(p)
	s.Equal("___'_ ____!", state.Render())
}

func (s *PuzzleStateSuite) TestRevealPresentLetter() {
	count, err := s.state.Reveal('l')
	s.Require().NoError(err)
	s.Equal(3, count)
	s.Equal("__LL_ ___L_", s.state.Render())
	s.True(s.state.Revealed.Has('L'))
	s.True(s.state.Guessed.Has('L'))
}

func (s *PuzzleStateSuite) TestRevealAbsentLetter() {
	count, err := s.state.Reveal('Z')
	s.Require().NoError(err)
	s.Equal(0, count)
	s.True(s.state.Guessed.Has('Z'))
	s.False(s.state.Revealed.Has('Z'))
}

func (s *PuzzleStateSuite) TestRevealTwiceRejected() {
	for _, c := range AllLetters() {
		first, err := s.state.Reveal(c)
		s.Require().NoError(err)
		guessed, revealed, display := s.state.Guessed, s.state.Revealed, s.state.Render()

		count, err := s.state.Reveal(c)
		s.ErrorIs(err, ErrAlreadyGuessed, "letter %c", c)
		s.Zero(count)
		s.Equal(guessed, s.state.Guessed, "letter %c", c)
		s.Equal(revealed, s.state.Revealed, "letter %c", c)
		s.Equal(display, s.state.Render(), "letter %c", c)
		s.Equal(first > 0, s.state.Revealed.Has(c))
	}
	s.Equal(26, s.state.Guessed.Len())
}

func (s *PuzzleStateSuite) TestRenderIdempotent() {
	s.Equal(s.state.Render(), s.state.Render())

	_, err := s.state.Reveal('L')
	s.Require().NoError(err)
	first := s.state.Render()
	s.Equal(first, s.state.Render())
	s.Equal("__LL_ ___L_", first)
	s.Equal(1, s.state.Guessed.Len())
}

func (s *PuzzleStateSuite) TestRevealNonLetterRejected() {
	_, err := s.state.Reveal('3')
	s.ErrorIs(err, ErrInvalidLetter)
	s.Equal(0, s.state.Guessed.Len())
}

func (s *PuzzleStateSuite) TestSolvedWhenAllRevealed() {
	for _, r := range "HELOWRD" {
		s.False(s.state.IsSolved())
		_, err := s.state.Reveal(r)
		s.Require().NoError(err)
	}
	s.True(s.state.IsSolved())
	s.Equal("HELLO WORLD", s.state.Render())
}

func (s *PuzzleStateSuite) TestMarkSolvedRevealsRender() {
	s.state.MarkSolved()
	s.True(s.state.IsSolved())
	s.Equal("HELLO WORLD", s.state.Render())
	s.Equal(0, s.state.Guessed.Len())
}

func (s *PuzzleStateSuite) TestRevealedFraction() {
	_, err := s.state.Reveal('L')
	s.Require().NoError(err)
	s.InDelta(0.3, s.state.RevealedFraction(), 1e-9)
}

func (s *PuzzleStateSuite) TestUnguessedByClass() {
	_, err := s.state.Reveal('E')
	s.Require().NoError(err)
	s.Equal([]rune("AIOU"), s.state.Unguessed(true))
	s.Len(s.state.Unguessed(false), 21)
}

func (s *PuzzleStateSuite) TestLetterSetJSON() {
	set := NewLetterSet("tsera")
	data, err := json.Marshal(set)
	s.Require().NoError(err)
	s.JSONEq(`"AERST"`, string(data))

	var decoded LetterSet
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal(set, decoded)
	s.Equal(5, decoded.Len())
}

func (s *PuzzleStateSuite) TestParseStrategy() {
	kind, err := ParseStrategy(" Smart ")
	s.Require().NoError(err)
	s.Equal(StrategySmart, kind)
	s.True(kind.IsAI())
	s.False(StrategyHuman.IsAI())

	_, err = ParseStrategy("psychic")
	s.ErrorIs(err, ErrUnknownStrategy)
}
