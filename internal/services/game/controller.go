package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/dependencies/clock"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/dependencies/random"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/hint"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/round"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/wheel"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/storage"
)

const (
	// RoundIDAlphabet is the character set for generated round IDs
	RoundIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	// RoundIDLength is the length of generated round IDs
	RoundIDLength = 8
	// MaxPlayers caps the number of players in a round
	MaxPlayers = 6

	maxIDAttempts = 10
)

// PuzzleSource supplies puzzles for new rounds
type PuzzleSource interface {
	Random() model.Puzzle
}

// NewPlayer describes a seat in a new round
type NewPlayer struct {
	Name     string
	Strategy model.StrategyKind
}

// NewRoundRequest configures a new round. A nil Puzzle draws one from the
// puzzle source and a nil Config uses the controller's defaults.
type NewRoundRequest struct {
	Players []NewPlayer
	Puzzle  *model.Puzzle
	Config  *model.RoundConfig
}

// Controller manages the round lifecycle: it loads a round, hands it to the
// engine and saves the result
type Controller struct {
	storage storage.Storage
	wheel   *wheel.Wheel
	puzzles PuzzleSource
	hints   hint.Provider
	config  model.RoundConfig
	clock   clock.Clock
	random  random.Random
	logger  zerolog.Logger

	locks sync.Map // model.RoundID -> *sync.Mutex
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	w *wheel.Wheel,
	puzzles PuzzleSource,
	hints hint.Provider,
	config model.RoundConfig,
	clock clock.Clock,
	random random.Random,
	logger zerolog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		wheel:   w,
		puzzles: puzzles,
		hints:   hints,
		config:  config,
		clock:   clock,
		random:  random,
		logger:  logger.With().Str("component", "game-controller").Logger(),
	}
}

// NewRound creates and saves a round. Players are seated in the order given
// with IDs p1, p2, ...
func (c *Controller) NewRound(ctx context.Context, req NewRoundRequest) (*model.Round, error) {
	if len(req.Players) == 0 {
		return nil, model.ErrNotEnoughPlayers
	}
	if len(req.Players) > MaxPlayers {
		return nil, fmt.Errorf("%w: %d > %d", model.ErrTooManyPlayers, len(req.Players), MaxPlayers)
	}

	players := make([]model.Player, len(req.Players))
	for i, np := range req.Players {
		kind, err := model.ParseStrategy(string(np.Strategy))
		if err != nil {
			return nil, err
		}
		name := np.Name
		if name == "" {
			name = kind.DisplayName()
		}
		players[i] = model.Player{
			ID:       model.PlayerID(fmt.Sprintf("p%d", i+1)),
			Name:     name,
			Strategy: kind,
		}
	}

	puzzle := c.puzzles.Random()
	if req.Puzzle != nil {
		puzzle = *req.Puzzle
	}
	cfg := c.config
	if req.Config != nil {
		cfg = *req.Config
	}

	id, err := c.newRoundID(ctx)
	if err != nil {
		return nil, err
	}

	engine, err := round.New(id, puzzle, players, c.wheel, cfg, c.clock, c.logger)
	if err != nil {
		return nil, err
	}
	r := engine.Round()

	if err := c.storage.SaveRound(ctx, r); err != nil {
		c.logger.Error().Err(err).Str("round_id", string(id)).Msg("failed to save round")
		return nil, err
	}

	c.logger.Info().
		Str("round_id", string(id)).
		Str("puzzle_id", string(puzzle.ID)).
		Str("category", puzzle.Category).
		Int("player_count", len(players)).
		Msg("round created")

	return r, nil
}

func (c *Controller) newRoundID(ctx context.Context) (model.RoundID, error) {
	for range maxIDAttempts {
		id := model.RoundID(c.random.String(RoundIDLength, RoundIDAlphabet))
		if id == "" {
			continue
		}
		exists, err := c.storage.RoundExists(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: could not allocate a round id", model.ErrConfiguration)
}

// GetRound retrieves a round by ID
func (c *Controller) GetRound(ctx context.Context, id model.RoundID) (*model.Round, error) {
	return c.storage.GetRound(ctx, id)
}

// Render returns the puzzle display for a round
func (c *Controller) Render(ctx context.Context, id model.RoundID) (string, error) {
	r, err := c.storage.GetRound(ctx, id)
	if err != nil {
		return "", err
	}
	return r.State.Render(), nil
}

// ApplyAction performs an action for the current player of a round. A hint
// action without text is routed through RequestHint.
func (c *Controller) ApplyAction(ctx context.Context, id model.RoundID, action model.Action) (model.ActionResult, error) {
	if action.Kind == model.ActionHint && action.Hint == "" {
		d, err := hint.ParseDifficulty(action.Difficulty)
		if err != nil {
			return model.ActionResult{}, err
		}
		_, result, err := c.RequestHint(ctx, id, d)
		return result, err
	}

	unlock := c.lock(id)
	defer unlock()

	r, err := c.storage.GetRound(ctx, id)
	if err != nil {
		return model.ActionResult{}, err
	}
	return c.apply(ctx, r, action)
}

// RequestHint asks the hint provider for a hint and charges it to the
// round's quota. The turn does not pass.
func (c *Controller) RequestHint(ctx context.Context, id model.RoundID, difficulty hint.Difficulty) (string, model.ActionResult, error) {
	unlock := c.lock(id)
	defer unlock()

	r, err := c.storage.GetRound(ctx, id)
	if err != nil {
		return "", model.ActionResult{}, err
	}
	if r.IsOver() {
		return "", model.ActionResult{}, model.ErrRoundOver
	}
	if r.HintsRemaining() == 0 {
		return "", model.ActionResult{}, model.ErrHintQuotaExhausted
	}
	if r.Phase != model.PhaseAwaitingAction {
		return "", model.ActionResult{}, fmt.Errorf("%w: hint while %s", model.ErrIllegalAction, r.Phase)
	}

	text := c.hints.RequestHint(ctx, hint.Request{
		Puzzle:     r.State.Puzzle,
		Display:    r.State.Render(),
		Difficulty: difficulty,
		HintsUsed:  r.HintsUsed,
	})

	result, err := c.apply(ctx, r, model.Action{
		Kind:       model.ActionHint,
		Hint:       text,
		Difficulty: string(difficulty),
	})
	if err != nil {
		return "", model.ActionResult{}, err
	}
	return text, result, nil
}

func (c *Controller) apply(ctx context.Context, r *model.Round, action model.Action) (model.ActionResult, error) {
	engine := round.Resume(r, c.wheel, c.clock, c.logger)
	result, err := engine.Apply(action)
	if err != nil {
		c.logger.Debug().
			Err(err).
			Str("round_id", string(r.ID)).
			Str("action", string(action.Kind)).
			Msg("action rejected")
		return model.ActionResult{}, err
	}

	if err := c.storage.SaveRound(ctx, r); err != nil {
		c.logger.Error().Err(err).Str("round_id", string(r.ID)).Msg("failed to save round")
		return model.ActionResult{}, err
	}
	return result, nil
}

// DeleteRound removes a round
func (c *Controller) DeleteRound(ctx context.Context, id model.RoundID) error {
	if _, err := c.storage.GetRound(ctx, id); err != nil {
		return err
	}
	if err := c.storage.DeleteRound(ctx, id); err != nil {
		return err
	}
	c.locks.Delete(id)
	c.logger.Info().Str("round_id", string(id)).Msg("round deleted")
	return nil
}

// WheelStats returns the payout profile of the wheel in use
func (c *Controller) WheelStats() wheel.Stats {
	return c.wheel.Stats()
}

// Wheel returns the wheel in use
func (c *Controller) Wheel() *wheel.Wheel {
	return c.wheel
}

// lock serializes actions on a single round
func (c *Controller) lock(id model.RoundID) func() {
	m, _ := c.locks.LoadOrStore(id, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// ControllerInterface describes the round operations used by front ends
type ControllerInterface interface {
	NewRound(ctx context.Context, req NewRoundRequest) (*model.Round, error)
	GetRound(ctx context.Context, id model.RoundID) (*model.Round, error)
	Render(ctx context.Context, id model.RoundID) (string, error)
	ApplyAction(ctx context.Context, id model.RoundID, action model.Action) (model.ActionResult, error)
	RequestHint(ctx context.Context, id model.RoundID, difficulty hint.Difficulty) (string, model.ActionResult, error)
	DeleteRound(ctx context.Context, id model.RoundID) error
	WheelStats() wheel.Stats
}

var _ ControllerInterface = (*Controller)(nil)
