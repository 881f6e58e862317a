package handler

import (
	"net/http"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/api/response"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/bot"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/wheel"
)

// InfoHandler serves read-only game information
type InfoHandler struct {
	bots  *bot.Service
	wheel *wheel.Wheel
}

// NewInfoHandler creates a new info handler
func NewInfoHandler(bots *bot.Service, w *wheel.Wheel) *InfoHandler {
	return &InfoHandler{bots: bots, wheel: w}
}

// Strategies handles GET /api/v1/strategies
func (h *InfoHandler) Strategies(w http.ResponseWriter, _ *http.Request) {
	resp := response.StrategiesResponse{
		Strategies: []response.Strategy{{
			Kind: string(model.StrategyHuman),
			Name: model.StrategyHuman.DisplayName(),
		}},
	}
	for _, k := range h.bots.Strategies() {
		if !k.IsAI() {
			continue
		}
		resp.Strategies = append(resp.Strategies, response.Strategy{
			Kind: string(k),
			Name: k.DisplayName(),
			IsAI: true,
		})
	}
	response.JSON(w, http.StatusOK, resp)
}

// Wheel handles GET /api/v1/wheel
func (h *InfoHandler) Wheel(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.WheelFromModel(h.wheel.Segments(), h.wheel.Stats()))
}

// Health handles GET /api/v1/health
func (h *InfoHandler) Health(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}
