package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/api/request"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/api/response"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/bot"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/game"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/hint"
)

// RoundHandler handles round endpoints
type RoundHandler struct {
	controller game.ControllerInterface
	bots       *bot.Service
	defaults   model.RoundConfig
	logger     zerolog.Logger
}

// NewRoundHandler creates a new round handler
func NewRoundHandler(controller game.ControllerInterface, bots *bot.Service, defaults model.RoundConfig, logger zerolog.Logger) *RoundHandler {
	return &RoundHandler{
		controller: controller,
		bots:       bots,
		defaults:   defaults,
		logger:     logger.With().Str("component", "round-handler").Logger(),
	}
}

func roundID(r *http.Request) model.RoundID {
	return model.RoundID(mux.Vars(r)["id"])
}

// Create handles POST /api/v1/rounds
func (h *RoundHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoundRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if len(req.Players) == 0 {
		WriteError(w, NewInvalidRequestError("At least one player is required"))
		return
	}

	newRound := game.NewRoundRequest{
		Players: make([]game.NewPlayer, len(req.Players)),
	}
	for i, p := range req.Players {
		kind, err := model.ParseStrategy(p.Strategy)
		if err != nil {
			WriteError(w, err)
			return
		}
		newRound.Players[i] = game.NewPlayer{Name: p.Name, Strategy: kind}
	}
	if req.Puzzle != nil {
		puzzle, err := model.NewPuzzle(req.Puzzle.Solution, req.Puzzle.Category)
		if err != nil {
			WriteError(w, err)
			return
		}
		newRound.Puzzle = &puzzle
	}
	if req.Config != nil {
		cfg := req.Config.Apply(h.defaults)
		newRound.Config = &cfg
	}

	round, err := h.controller.NewRound(r.Context(), newRound)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RoundFromModel(round, false))
}

// Get handles GET /api/v1/rounds/{id}. Pass ?history=true for the event log.
func (h *RoundHandler) Get(w http.ResponseWriter, r *http.Request) {
	round, err := h.controller.GetRound(r.Context(), roundID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	withHistory, _ := strconv.ParseBool(r.URL.Query().Get("history"))
	response.JSON(w, http.StatusOK, response.RoundFromModel(round, withHistory))
}

// Delete handles DELETE /api/v1/rounds/{id}
func (h *RoundHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.DeleteRound(r.Context(), roundID(r)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Act handles POST /api/v1/rounds/{id}/actions
func (h *RoundHandler) Act(w http.ResponseWriter, r *http.Request) {
	var req request.ActionRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	action, err := toAction(req)
	if err != nil {
		WriteError(w, err)
		return
	}

	id := roundID(r)
	var (
		result model.ActionResult
		text   string
	)
	if action.Kind == model.ActionHint {
		difficulty, err := hint.ParseDifficulty(action.Difficulty)
		if err != nil {
			WriteError(w, NewInvalidRequestError(err.Error()))
			return
		}
		text, result, err = h.controller.RequestHint(r.Context(), id, difficulty)
		if err != nil {
			WriteError(w, err)
			return
		}
	} else {
		result, err = h.controller.ApplyAction(r.Context(), id, action)
		if err != nil {
			WriteError(w, err)
			return
		}
	}

	round, err := h.controller.GetRound(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.ActionResponse{
		Result: response.ResultFromModel(result),
		Hint:   text,
		Round:  response.RoundFromModel(round, false),
	})
}

func toAction(req request.ActionRequest) (model.Action, error) {
	letter, ok := req.LetterRune()
	if !ok {
		return model.Action{}, NewInvalidRequestError("letter must be a single character")
	}

	switch model.ActionKind(req.Kind) {
	case model.ActionSpin:
		return model.Spin(letter), nil
	case model.ActionGuessConsonant:
		return model.GuessConsonant(letter), nil
	case model.ActionBuyVowel:
		return model.BuyVowel(letter), nil
	case model.ActionSolve:
		return model.Solve(req.Guess), nil
	case model.ActionHint:
		return model.Hint(req.Difficulty), nil
	case model.ActionPass:
		return model.Pass(), nil
	default:
		return model.Action{}, NewInvalidRequestError("unknown action kind: " + req.Kind)
	}
}

// AITurn handles POST /api/v1/rounds/{id}/ai-turn
func (h *RoundHandler) AITurn(w http.ResponseWriter, r *http.Request) {
	id := roundID(r)
	moves, err := h.bots.ProcessAITurns(r.Context(), id)
	if err != nil {
		h.logger.Warn().Err(err).Str("round_id", string(id)).Int("moves", len(moves)).Msg("ai turn stopped")
		WriteError(w, err)
		return
	}

	round, err := h.controller.GetRound(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.AITurnResponse{
		Moves: make([]response.Move, len(moves)),
		Round: response.RoundFromModel(round, false),
	}
	for i, m := range moves {
		resp.Moves[i] = response.MoveFromBot(m)
	}
	response.JSON(w, http.StatusOK, resp)
}

// Hint handles POST /api/v1/rounds/{id}/hint
func (h *RoundHandler) Hint(w http.ResponseWriter, r *http.Request) {
	var req request.HintRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	difficulty, err := hint.ParseDifficulty(req.Difficulty)
	if err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	id := roundID(r)
	text, result, err := h.controller.RequestHint(r.Context(), id, difficulty)
	if err != nil {
		WriteError(w, err)
		return
	}

	round, err := h.controller.GetRound(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.HintResponse{
		Hint:           text,
		HintsRemaining: result.HintsRemaining,
		Round:          response.RoundFromModel(round, false),
	})
}
