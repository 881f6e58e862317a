package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/game"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/hint"
)

const (
	// MaxBotIterations is a safety limit for the ProcessAITurns loop
	MaxBotIterations = 1000
	// MaxRoundSteps is a safety limit for the PlayRound loop
	MaxRoundSteps = 10000
)

// Move is a single action taken by a player through the Service
type Move struct {
	PlayerID model.PlayerID     `json:"player_id"`
	Strategy model.StrategyKind `json:"strategy"`
	Action   model.Action       `json:"action"`
	Result   model.ActionResult `json:"result"`

	// Hint is the text returned for a hint action
	Hint string `json:"hint,omitempty"`

	// Fallback is set when the chosen action was rejected and a pass was
	// played in its place
	Fallback bool `json:"fallback,omitempty"`
}

// Service drives players through a round by asking their strategies for
// moves and applying them through the game controller
type Service struct {
	controller game.ControllerInterface
	strategies map[model.StrategyKind]Strategy
	logger     zerolog.Logger
}

// NewService creates a new bot Service
func NewService(controller game.ControllerInterface, strategies map[model.StrategyKind]Strategy, logger zerolog.Logger) *Service {
	return &Service{
		controller: controller,
		strategies: strategies,
		logger:     logger.With().Str("component", "bot-service").Logger(),
	}
}

// WithStrategy returns a copy of the service that uses st for players of
// st's kind, such as a human strategy reading from a terminal
func (s *Service) WithStrategy(st Strategy) *Service {
	strategies := make(map[model.StrategyKind]Strategy, len(s.strategies)+1)
	for k, v := range s.strategies {
		strategies[k] = v
	}
	strategies[st.Kind()] = st
	return &Service{
		controller: s.controller,
		strategies: strategies,
		logger:     s.logger,
	}
}

// Strategies returns the registered strategy kinds in display order
func (s *Service) Strategies() []model.StrategyKind {
	var kinds []model.StrategyKind
	for _, k := range model.Strategies() {
		if _, ok := s.strategies[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Step plays a single action for the current player of a round
func (s *Service) Step(ctx context.Context, id model.RoundID) (Move, error) {
	r, err := s.controller.GetRound(ctx, id)
	if err != nil {
		return Move{}, err
	}
	if r.IsOver() {
		return Move{}, model.ErrRoundOver
	}

	player := r.CurrentPlayer()
	st, ok := s.strategies[player.Strategy]
	if !ok {
		if !player.Strategy.IsAI() {
			return Move{}, model.ErrNotAITurn
		}
		return Move{}, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, player.Strategy)
	}
	ai := player.Strategy.IsAI()

	move := Move{PlayerID: player.ID, Strategy: player.Strategy}
	move.Action, err = s.decide(st, r, player)
	if err != nil {
		if !ai {
			return Move{}, err
		}
		if !errors.Is(err, model.ErrNoCandidate) {
			return Move{}, model.StrategyError(player.Strategy, err)
		}
		move.Action = model.Pass()
		move.Fallback = true
	}

	move.Result, move.Hint, err = s.apply(ctx, id, move.Action)
	if err == nil {
		s.logMove(id, move)
		return move, nil
	}
	if !ai {
		return Move{}, err
	}
	if !model.IsRecoverable(err) {
		if errors.Is(err, model.ErrIllegalAction) {
			return Move{}, model.StrategyError(player.Strategy, err)
		}
		return Move{}, err
	}

	s.logger.Warn().
		Err(err).
		Str("round_id", string(id)).
		Str("player_id", string(player.ID)).
		Str("strategy", string(player.Strategy)).
		Str("action", string(move.Action.Kind)).
		Msg("action rejected, passing")

	move.Action = model.Pass()
	move.Fallback = true
	move.Hint = ""
	move.Result, _, err = s.apply(ctx, id, move.Action)
	if err != nil {
		return Move{}, err
	}
	s.logMove(id, move)
	return move, nil
}

// decide asks the strategy for a complete action, filling in a letter or
// guess the strategy left open
func (s *Service) decide(st Strategy, r *model.Round, player *model.Player) (model.Action, error) {
	state := r.State
	if r.Phase == model.PhaseAwaitingConsonant {
		letter, err := st.ChooseLetter(state, false)
		if err != nil {
			return model.Action{}, err
		}
		return model.GuessConsonant(letter), nil
	}

	action, err := st.ChooseAction(state, player.Score, r.HintsRemaining())
	if err != nil {
		return model.Action{}, err
	}
	switch action.Kind {
	case model.ActionBuyVowel:
		if action.Letter == 0 {
			action.Letter, err = st.ChooseLetter(state, true)
		}
	case model.ActionSolve:
		if action.Guess == "" {
			action.Guess, _ = st.ChooseSolveGuess(state)
		}
	}
	return action, err
}

func (s *Service) apply(ctx context.Context, id model.RoundID, action model.Action) (model.ActionResult, string, error) {
	if action.Kind == model.ActionHint && action.Hint == "" {
		d, err := hint.ParseDifficulty(action.Difficulty)
		if err != nil {
			return model.ActionResult{}, "", err
		}
		text, result, err := s.controller.RequestHint(ctx, id, d)
		return result, text, err
	}
	result, err := s.controller.ApplyAction(ctx, id, action)
	return result, "", err
}

func (s *Service) logMove(id model.RoundID, move Move) {
	s.logger.Debug().
		Str("round_id", string(id)).
		Str("player_id", string(move.PlayerID)).
		Str("strategy", string(move.Strategy)).
		Str("action", string(move.Action.Kind)).
		Int("score_delta", move.Result.ScoreDelta).
		Bool("round_over", move.Result.RoundOver).
		Msg("move played")
}

// ProcessAITurns plays computer players until a human is to act or the
// round ends. It fails with ErrNotAITurn if a human is already to act.
func (s *Service) ProcessAITurns(ctx context.Context, id model.RoundID) ([]Move, error) {
	r, err := s.controller.GetRound(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.IsOver() {
		return nil, model.ErrRoundOver
	}
	if !r.CurrentPlayer().Strategy.IsAI() {
		return nil, model.ErrNotAITurn
	}

	var moves []Move
	for range MaxBotIterations {
		move, err := s.Step(ctx, id)
		if err != nil {
			return moves, err
		}
		moves = append(moves, move)
		if move.Result.RoundOver {
			break
		}

		r, err = s.controller.GetRound(ctx, id)
		if err != nil {
			return moves, err
		}
		if !r.CurrentPlayer().Strategy.IsAI() {
			break // Human's turn
		}
	}
	return moves, nil
}

// PlayRound plays a round to completion. Human players need a strategy
// registered with WithStrategy.
func (s *Service) PlayRound(ctx context.Context, id model.RoundID) (*model.Round, []Move, error) {
	var moves []Move
	for range MaxRoundSteps {
		if err := ctx.Err(); err != nil {
			return nil, moves, err
		}
		move, err := s.Step(ctx, id)
		if err != nil {
			return nil, moves, err
		}
		moves = append(moves, move)
		if move.Result.RoundOver {
			break
		}
	}

	r, err := s.controller.GetRound(ctx, id)
	if err != nil {
		return nil, moves, err
	}
	if !r.IsOver() {
		return r, moves, fmt.Errorf("round %s still running after %d steps", id, MaxRoundSteps)
	}
	s.logger.Info().
		Str("round_id", string(id)).
		Str("winner", string(r.Winner)).
		Int("moves", len(moves)).
		Msg("round played")
	return r, moves, nil
}
