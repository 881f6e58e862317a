package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/api/handler"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/api/middleware"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/bot"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/game"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/wheel"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         zerolog.Logger
	GameController game.ControllerInterface
	BotService     *bot.Service
	Wheel          *wheel.Wheel
	RoundDefaults  model.RoundConfig
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	roundHandler := handler.NewRoundHandler(cfg.GameController, cfg.BotService, cfg.RoundDefaults, cfg.Logger)
	infoHandler := handler.NewInfoHandler(cfg.BotService, cfg.Wheel)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Round routes
	rounds := api.PathPrefix("/rounds").Subrouter()
	rounds.HandleFunc("", roundHandler.Create).Methods(http.MethodPost)
	rounds.HandleFunc("/{id}", roundHandler.Get).Methods(http.MethodGet)
	rounds.HandleFunc("/{id}", roundHandler.Delete).Methods(http.MethodDelete)
	rounds.HandleFunc("/{id}/actions", roundHandler.Act).Methods(http.MethodPost)
	rounds.HandleFunc("/{id}/ai-turn", roundHandler.AITurn).Methods(http.MethodPost)
	rounds.HandleFunc("/{id}/hint", roundHandler.Hint).Methods(http.MethodPost)

	// Game information
	api.HandleFunc("/strategies", infoHandler.Strategies).Methods(http.MethodGet)
	api.HandleFunc("/wheel", infoHandler.Wheel).Methods(http.MethodGet)
	api.HandleFunc("/health", infoHandler.Health).Methods(http.MethodGet)

	return r
}
