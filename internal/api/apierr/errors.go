package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Cireo/sixen/internal/model"
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
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeGameNotFound      = "GAME_NOT_FOUND"
	CodeGameOver          = "GAME_OVER"
	CodeNoPlayers         = "NO_PLAYERS"
	CodeTooManyPlayers    = "TOO_MANY_PLAYERS"
	CodeNoCardDrawn       = "NO_CARD_DRAWN"
	CodeIllegalPlacement  = "ILLEGAL_PLACEMENT"
	CodeInvalidStackIndex = "INVALID_STACK_INDEX"
	CodeInvalidCondition  = "INVALID_CONDITION"
	CodeInternalError     = "INTERNAL_ERROR"
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

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrGameOver):
		return &httpError{http.StatusConflict, APIError{CodeGameOver, "Game is over"}}
	case errors.Is(err, model.ErrNoPlayers):
		return &httpError{http.StatusBadRequest, APIError{CodeNoPlayers, "At least one player is required"}}
	case errors.Is(err, model.ErrTooManyPlayers):
		return &httpError{http.StatusBadRequest, APIError{CodeTooManyPlayers, "Too many players"}}
	case errors.Is(err, model.ErrNoCardDrawn):
		return &httpError{http.StatusConflict, APIError{CodeNoCardDrawn, "No card drawn"}}
	case errors.Is(err, model.ErrIllegalPlacement):
		return &httpError{http.StatusConflict, APIError{CodeIllegalPlacement, "Illegal placement"}}
	case errors.Is(err, model.ErrInvalidStackIndex):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidStackIndex, "Invalid stack index"}}
	case errors.Is(err, model.ErrInvalidCondition):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidCondition, "Invalid collection condition"}}
	case errors.Is(err, model.ErrInvalidSide):
		return &httpError{http.StatusBadRequest, APIError{CodeIllegalPlacement, "Invalid placement side"}}
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
