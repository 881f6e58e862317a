package bot_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/dependencies/mocks"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/dependencies/random"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/bot"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/dictionary"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/game"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/hint"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/puzzles"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/wheel"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/storage/memory"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/testutil"
)

// scripted is a strategy that plays a fixed action
type scripted struct {
	kind   model.StrategyKind
	action model.Action
	err    error
}

func (s *scripted) Kind() model.StrategyKind { return s.kind }

func (s *scripted) ChooseAction(*model.PuzzleState, int, int) (model.Action, error) {
	return s.action, s.err
}

func (s *scripted) ChooseLetter(*model.PuzzleState, bool) (rune, error) {
	return 'T', nil
}

func (s *scripted) ChooseSolveGuess(*model.PuzzleState) (string, bool) {
	return "", false
}

type ServiceSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *game.Controller
	dictionary *dictionary.Service
	service    *bot.Service
	ctx        context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.ctx = context.Background()
	s.service = s.newService(s.random)
}

func (s *ServiceSuite) newService(rnd random.Random) *bot.Service {
	logger := testutil.NopLogger()
	w := wheel.NewDefault(rnd)
	s.controller = game.NewController(
		s.storage,
		w,
		puzzles.New(s.storage, rnd, logger),
		hint.RuleBased{},
		model.DefaultRoundConfig(),
		s.clock,
		rnd,
		logger,
	)
	s.dictionary = dictionary.New(s.storage, logger)
	s.Require().NoError(s.dictionary.LoadDefault())

	strategies := bot.NewStrategies(bot.Params{
		VowelCost: model.DefaultRoundConfig().VowelCost,
		Wheel:     w.Stats(),
		Lexicon:   s.dictionary,
	})
	return bot.NewService(s.controller, strategies, logger)
}

func (s *ServiceSuite) newRound(kinds ...model.StrategyKind) model.RoundID {
	s.random.QueueString("ROUND001")
	players := make([]game.NewPlayer, len(kinds))
	for i, k := range kinds {
		players[i] = game.NewPlayer{Strategy: k}
	}
	r, err := s.controller.NewRound(s.ctx, game.NewRoundRequest{Players: players})
	s.Require().NoError(err)
	return r.ID
}

func (s *ServiceSuite) TestStrategiesListed() {
	s.Equal([]model.StrategyKind{
		model.StrategyMorse,
		model.StrategyOxford,
		model.StrategyTrigram,
		model.StrategySmart,
		model.StrategyConservative,
		model.StrategyAggressive,
	}, s.service.Strategies())
}

func (s *ServiceSuite) TestProcessAITurnsRejectsHumanTurn() {
	id := s.newRound(model.StrategyHuman, model.StrategySmart)

	_, err := s.service.ProcessAITurns(s.ctx, id)
	s.ErrorIs(err, model.ErrNotAITurn)
}

func (s *ServiceSuite) TestProcessAITurnsStopsAtHuman() {
	id := s.newRound(model.StrategySmart, model.StrategyHuman)
	s.random.QueueIntn(1) // BANKRUPT

	moves, err := s.service.ProcessAITurns(s.ctx, id)
	s.Require().NoError(err)
	s.Require().Len(moves, 1)
	s.Equal(model.ActionSpin, moves[0].Action.Kind)
	s.Equal(model.SegmentBankrupt, moves[0].Result.Outcome.Kind)
	s.True(moves[0].Result.TurnPassed)

	r, err := s.controller.GetRound(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(model.PlayerID("p2"), r.CurrentPlayer().ID)
}

func (s *ServiceSuite) TestStepCompletesTwoPhaseSpin() {
	id := s.newRound(model.StrategyOxford, model.StrategyHuman)
	s.random.QueueIntn(2) // $500

	move, err := s.service.Step(s.ctx, id)
	s.Require().NoError(err)
	s.True(move.Result.AwaitingConsonant)

	move, err = s.service.Step(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(model.ActionGuessConsonant, move.Action.Kind)
	s.Equal('R', move.Action.Letter)
	s.Equal(1, move.Result.Occurrences)
	s.Equal(500, move.Result.ScoreDelta)
}

func (s *ServiceSuite) TestStepRequiresHumanStrategy() {
	id := s.newRound(model.StrategyHuman, model.StrategySmart)

	_, err := s.service.Step(s.ctx, id)
	s.ErrorIs(err, model.ErrNotAITurn)
}

func (s *ServiceSuite) TestHumanStrategySolves() {
	id := s.newRound(model.StrategyHuman, model.StrategySmart)
	human := &scripted{kind: model.StrategyHuman, action: model.Solve("wheel of fortune")}

	move, err := s.service.WithStrategy(human).Step(s.ctx, id)
	s.Require().NoError(err)
	s.True(move.Result.Correct)
	s.True(move.Result.RoundOver)
	s.Equal(model.PlayerID("p1"), move.Result.Winner)
}

func (s *ServiceSuite) TestHumanErrorsReturned() {
	id := s.newRound(model.StrategyHuman, model.StrategySmart)
	human := &scripted{kind: model.StrategyHuman, action: model.BuyVowel('E')}

	_, err := s.service.WithStrategy(human).Step(s.ctx, id)
	s.ErrorIs(err, model.ErrInsufficientFunds)
}

func (s *ServiceSuite) TestRecoverableAIErrorPasses() {
	id := s.newRound(model.StrategySmart, model.StrategyHuman)
	svc := s.service.WithStrategy(&scripted{kind: model.StrategySmart, action: model.BuyVowel('E')})

	move, err := svc.Step(s.ctx, id)
	s.Require().NoError(err)
	s.True(move.Fallback)
	s.Equal(model.ActionPass, move.Action.Kind)
	s.True(move.Result.TurnPassed)
}

func (s *ServiceSuite) TestNoCandidatePasses() {
	id := s.newRound(model.StrategySmart, model.StrategyHuman)
	svc := s.service.WithStrategy(&scripted{kind: model.StrategySmart, err: model.ErrNoCandidate})

	move, err := svc.Step(s.ctx, id)
	s.Require().NoError(err)
	s.True(move.Fallback)
	s.Equal(model.ActionPass, move.Action.Kind)
}

func (s *ServiceSuite) TestStrategyFailureWrapped() {
	id := s.newRound(model.StrategySmart, model.StrategyHuman)
	svc := s.service.WithStrategy(&scripted{kind: model.StrategySmart, err: errors.New("boom")})

	_, err := svc.Step(s.ctx, id)
	s.ErrorIs(err, model.ErrStrategy)
}

func (s *ServiceSuite) TestHintMoveCarriesText() {
	id := s.newRound(model.StrategySmart, model.StrategyHuman)
	svc := s.service.WithStrategy(&scripted{kind: model.StrategySmart, action: model.Hint("easy")})

	move, err := svc.Step(s.ctx, id)
	s.Require().NoError(err)
	s.NotEmpty(move.Hint)
	s.Equal(2, move.Result.HintsRemaining)
	s.False(move.Result.TurnPassed)
}

func (s *ServiceSuite) TestStepOnFinishedRound() {
	id := s.newRound(model.StrategyHuman, model.StrategySmart)
	_, err := s.controller.ApplyAction(s.ctx, id, model.Solve("WHEEL OF FORTUNE"))
	s.Require().NoError(err)

	_, err = s.service.Step(s.ctx, id)
	s.ErrorIs(err, model.ErrRoundOver)
}

func (s *ServiceSuite) TestPlayRoundAIOnly() {
	s.service = s.newService(random.NewSeeded(42))
	r, err := s.controller.NewRound(s.ctx, game.NewRoundRequest{
		Players: []game.NewPlayer{
			{Strategy: model.StrategySmart},
			{Strategy: model.StrategyConservative},
			{Strategy: model.StrategyMorse},
		},
	})
	s.Require().NoError(err)

	final, moves, err := s.service.PlayRound(s.ctx, r.ID)
	s.Require().NoError(err)
	s.True(final.IsOver())
	s.NotEmpty(moves)
	s.True(moves[len(moves)-1].Result.RoundOver)
	if final.Winner != "" {
		_, ok := final.Player(final.Winner)
		s.True(ok)
	}
	for _, p := range final.Players {
		s.GreaterOrEqual(p.Score, 0)
	}
}
