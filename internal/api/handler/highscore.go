package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Cireo/sixen/internal/api/apierr"
	"github.com/Cireo/sixen/internal/api/request"
	"github.com/Cireo/sixen/internal/api/response"
	"github.com/Cireo/sixen/internal/model"
	"github.com/Cireo/sixen/internal/services/highscore"
)

// HighScoreHandler handles the high score table endpoints
type HighScoreHandler struct {
	service *highscore.Service
}

// NewHighScoreHandler creates a new HighScoreHandler
func NewHighScoreHandler(service *highscore.Service) *HighScoreHandler {
	return &HighScoreHandler{service: service}
}

// List handles GET /highscores
func (h *HighScoreHandler) List(w http.ResponseWriter, r *http.Request) {
	entries := h.service.Top(r.Context())

	resp := response.HighScoresResponse{Entries: make([]response.HighScoreEntry, len(entries))}
	for i, e := range entries {
		resp.Entries[i] = response.HighScoreEntryFromModel(e)
	}

	response.JSON(w, http.StatusOK, resp)
}

// Submit handles POST /highscores
func (h *HighScoreHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitScore
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	name := strings.TrimSpace(req.PlayerName)
	if name == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Player name is required"))
		return
	}

	result := h.service.Submit(r.Context(), name, model.PlayerScore{
		FaceCards:     req.FaceCards,
		TotalCards:    req.TotalCards,
		SixSevenCount: req.SixSevenCount,
	})

	response.JSON(w, http.StatusCreated, response.SubmitScoreResponseFromResult(result))
}
