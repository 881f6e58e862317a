package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidLetter      = "INVALID_LETTER"
	CodeAlreadyGuessed     = "ALREADY_GUESSED"
	CodeInsufficientFunds  = "INSUFFICIENT_FUNDS"
	CodeIllegalAction      = "ILLEGAL_ACTION"
	CodeEmptyGuess         = "EMPTY_GUESS"
	CodeRoundOver          = "ROUND_OVER"
	CodeHintQuotaExhausted = "HINT_QUOTA_EXHAUSTED"
	CodeNoCandidate        = "NO_CANDIDATE"
	CodeStrategyError      = "STRATEGY_ERROR"
	CodeUnknownStrategy    = "UNKNOWN_STRATEGY"
	CodeNotAITurn          = "NOT_AI_TURN"
	CodeRoundNotFound      = "ROUND_NOT_FOUND"
	CodeNotEnoughPlayers   = "NOT_ENOUGH_PLAYERS"
	CodeTooManyPlayers     = "TOO_MANY_PLAYERS"
	CodeDuplicatePlayer    = "DUPLICATE_PLAYER"
	CodePuzzleNotFound     = "PUZZLE_NOT_FOUND"
	CodeInvalidPuzzle      = "INVALID_PUZZLE"
	CodeConfiguration      = "CONFIGURATION_ERROR"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError. Rule violations carry the
// error text so clients can show why a move was refused.
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Strategy failures wrap the engine error, so they are checked first
	switch {
	case errors.Is(err, model.ErrStrategy):
		return &httpError{http.StatusInternalServerError, APIError{CodeStrategyError, err.Error()}}
	case errors.Is(err, model.ErrRoundNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRoundNotFound, "Round not found"}}
	case errors.Is(err, model.ErrPuzzleNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePuzzleNotFound, "Puzzle not found"}}
	case errors.Is(err, model.ErrInvalidLetter):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidLetter, err.Error()}}
	case errors.Is(err, model.ErrEmptyGuess):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyGuess, "Solve guess must contain letters"}}
	case errors.Is(err, model.ErrInvalidPuzzle):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPuzzle, err.Error()}}
	case errors.Is(err, model.ErrUnknownStrategy):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownStrategy, err.Error()}}
	case errors.Is(err, model.ErrNotEnoughPlayers):
		return &httpError{http.StatusBadRequest, APIError{CodeNotEnoughPlayers, "A round needs at least one player"}}
	case errors.Is(err, model.ErrTooManyPlayers):
		return &httpError{http.StatusBadRequest, APIError{CodeTooManyPlayers, err.Error()}}
	case errors.Is(err, model.ErrDuplicatePlayerID):
		return &httpError{http.StatusBadRequest, APIError{CodeDuplicatePlayer, err.Error()}}
	case errors.Is(err, model.ErrConfiguration):
		return &httpError{http.StatusBadRequest, APIError{CodeConfiguration, err.Error()}}
	case errors.Is(err, model.ErrAlreadyGuessed):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyGuessed, err.Error()}}
	case errors.Is(err, model.ErrInsufficientFunds):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientFunds, err.Error()}}
	case errors.Is(err, model.ErrIllegalAction):
		return &httpError{http.StatusConflict, APIError{CodeIllegalAction, err.Error()}}
	case errors.Is(err, model.ErrRoundOver):
		return &httpError{http.StatusConflict, APIError{CodeRoundOver, "Round is over"}}
	case errors.Is(err, model.ErrHintQuotaExhausted):
		return &httpError{http.StatusConflict, APIError{CodeHintQuotaExhausted, "No hints remaining"}}
	case errors.Is(err, model.ErrNoCandidate):
		return &httpError{http.StatusConflict, APIError{CodeNoCandidate, err.Error()}}
	case errors.Is(err, model.ErrNotAITurn):
		return &httpError{http.StatusConflict, APIError{CodeNotAITurn, "A human player is to act"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
