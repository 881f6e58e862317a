package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/factory"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/testutil"
)

type SimulateSuite struct {
	suite.Suite
	ctx context.Context
}

func TestSimulateSuite(t *testing.T) {
	suite.Run(t, new(SimulateSuite))
}

func (s *SimulateSuite) SetupTest() {
	s.ctx = context.Background()
}

func seededApps(ctx context.Context, seed uint64) (*factory.App, error) {
	return factory.New(ctx, factory.Config{
		Seed:   seed,
		Logger: testutil.NopLogger(),
	})
}

func (s *SimulateSuite) TestRunTalliesEveryRound() {
	sim := &Simulator{
		Rounds:  6,
		Workers: 3,
		Players: []model.StrategyKind{model.StrategySmart, model.StrategyAggressive},
		Seed:    42,
		NewApp:  seededApps,
	}

	summary, err := sim.Run(s.ctx)
	s.Require().NoError(err)
	s.Equal(6, summary.Rounds)
	s.Require().Len(summary.Seats, 2)
	s.Equal("smart", summary.Seats[0].Strategy)
	s.Equal(2, summary.Seats[1].Seat)

	wins := summary.Seats[0].Wins + summary.Seats[1].Wins
	s.Equal(6, wins+summary.NoWinner)
	s.Len(summary.WinningScores, wins)
	s.Positive(summary.MeanTurns)
	for _, seat := range summary.Seats {
		s.GreaterOrEqual(seat.MeanScore, 0.0)
		s.InDelta(float64(seat.Wins)/6, seat.WinRate, 1e-9)
	}
}

func (s *SimulateSuite) TestRunSeedsEachRound() {
	var seeds []uint64
	sim := &Simulator{
		Rounds:  3,
		Workers: 1,
		Players: []model.StrategyKind{model.StrategyMorse},
		Seed:    100,
		NewApp: func(ctx context.Context, seed uint64) (*factory.App, error) {
			seeds = append(seeds, seed)
			return seededApps(ctx, seed)
		},
	}

	_, err := sim.Run(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]uint64{100, 101, 102}, seeds)
}

func (s *SimulateSuite) TestRunRejectsHumans() {
	sim := &Simulator{
		Rounds:  1,
		Players: []model.StrategyKind{model.StrategyHuman, model.StrategySmart},
		NewApp:  seededApps,
	}
	_, err := sim.Run(s.ctx)
	s.ErrorIs(err, model.ErrUnknownStrategy)
}

func (s *SimulateSuite) TestRunRejectsEmptyBatch() {
	_, err := (&Simulator{Players: []model.StrategyKind{model.StrategySmart}, NewApp: seededApps}).Run(s.ctx)
	s.ErrorIs(err, model.ErrConfiguration)

	_, err = (&Simulator{Rounds: 1, NewApp: seededApps}).Run(s.ctx)
	s.ErrorIs(err, model.ErrNotEnoughPlayers)
}

func (s *SimulateSuite) TestRunReportsFactoryErrors() {
	boom := errors.New("boom")
	sim := &Simulator{
		Rounds:  2,
		Players: []model.StrategyKind{model.StrategySmart},
		NewApp: func(context.Context, uint64) (*factory.App, error) {
			return nil, boom
		},
	}
	_, err := sim.Run(s.ctx)
	s.ErrorIs(err, boom)
}

func (s *SimulateSuite) TestPrintSummary() {
	var out bytes.Buffer
	o := newOutputTo(&out, &out, "text")
	o.Print(SimulationSummary{
		Rounds:        2,
		Seed:          7,
		Seats:         []SeatSummary{{Seat: 1, Strategy: "smart", Wins: 2, WinRate: 1, MeanScore: 1500, MaxScore: 2000}},
		MeanTurns:     12,
		WinningScores: []float64{1000, 2000},
	})

	text := out.String()
	s.Contains(text, "Rounds: 2 (seed 7)")
	s.Contains(text, "smart")
	s.Contains(text, "100.0%")
	s.Contains(text, "Winning scores:")
	s.True(strings.Count(text, "\n") > 8)
}
