package middleware

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/api/apierr"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/middleware"
)

// Recovery creates panic recovery middleware for the API
// Returns JSON error responses on panic
func Recovery(logger zerolog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, apiPanicHandler)
}

// Logging creates request logging middleware for the API
func Logging(logger zerolog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
