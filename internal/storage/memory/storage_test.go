package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) newRound(id model.RoundID) *model.Round {
	puzzle, err := model.NewPuzzle("WHEEL OF FORTUNE", "TV Show")
	s.Require().NoError(err)
	return &model.Round{
		ID:        id,
		State:     model.NewPuzzleState(puzzle),
		Config:    model.DefaultRoundConfig(),
		Phase:     model.PhaseAwaitingAction,
		Players:   []model.Player{{ID: "p1", Name: "Alice", Strategy: model.StrategyHuman}},
		CreatedAt: time.Now(),
	}
}

// Round tests

func (s *StorageSuite) TestSaveAndGetRound() {
	round := s.newRound("round-1")
	s.Require().NoError(s.storage.SaveRound(s.ctx, round))

	retrieved, err := s.storage.GetRound(s.ctx, "round-1")
	s.Require().NoError(err)
	s.Equal(round.ID, retrieved.ID)
	s.Equal(round.State.Puzzle, retrieved.State.Puzzle)
	s.Equal("Alice", retrieved.Players[0].Name)
}

func (s *StorageSuite) TestRoundsAreCopied() {
	round := s.newRound("round-1")
	s.Require().NoError(s.storage.SaveRound(s.ctx, round))

	round.Players[0].Score = 5000
	_, err := round.State.Reveal('W')
	s.Require().NoError(err)

	retrieved, err := s.storage.GetRound(s.ctx, "round-1")
	s.Require().NoError(err)
	s.Equal(0, retrieved.Players[0].Score)
	s.False(retrieved.State.IsGuessed('W'))
}

func (s *StorageSuite) TestGetRoundNotFound() {
	_, err := s.storage.GetRound(s.ctx, "missing")
	s.ErrorIs(err, model.ErrRoundNotFound)
}

func (s *StorageSuite) TestDeleteRound() {
	s.Require().NoError(s.storage.SaveRound(s.ctx, s.newRound("round-1")))

	exists, err := s.storage.RoundExists(s.ctx, "round-1")
	s.Require().NoError(err)
	s.True(exists)

	s.Require().NoError(s.storage.DeleteRound(s.ctx, "round-1"))

	exists, err = s.storage.RoundExists(s.ctx, "round-1")
	s.Require().NoError(err)
	s.False(exists)
}

// Puzzle tests

func (s *StorageSuite) TestSaveAndGetPuzzles() {
	a, _ := model.NewPuzzle("WHEEL OF FORTUNE", "TV Show")
	b, _ := model.NewPuzzle("BREAK A LEG", "Phrase")
	s.Require().NoError(s.storage.SavePuzzles(s.ctx, []model.Puzzle{a, b}))

	puzzles, err := s.storage.GetPuzzles(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]model.Puzzle{a, b}, puzzles)

	got, err := s.storage.GetPuzzle(s.ctx, b.ID)
	s.Require().NoError(err)
	s.Equal(b, *got)

	_, err = s.storage.GetPuzzle(s.ctx, "nope")
	s.ErrorIs(err, model.ErrPuzzleNotFound)
}

// Dictionary tests

func (s *StorageSuite) TestDictionaryNotLoaded() {
	_, err := s.storage.GetDictionaryWords(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *StorageSuite) TestSaveAndGetDictionary() {
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, []string{"wheel", "fortune"}))

	words, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"wheel", "fortune"}, words)
}
