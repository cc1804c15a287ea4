package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Cireo/sixen/internal/api/apierr"
	"github.com/Cireo/sixen/internal/api/request"
	"github.com/Cireo/sixen/internal/api/response"
	"github.com/Cireo/sixen/internal/model"
	"github.com/Cireo/sixen/internal/services/game"
	"github.com/Cireo/sixen/internal/services/scoring"
)

// GameHandler handles game lifecycle and play endpoints
type GameHandler struct {
	controller *game.Controller
	scoring    *scoring.Service
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(controller *game.Controller, scoring *scoring.Service) *GameHandler {
	return &GameHandler{
		controller: controller,
		scoring:    scoring,
	}
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}

// Create handles POST /games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGame
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	g, err := h.controller.CreateGame(r.Context(), req.PlayerNames)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameStateFromModel(g))
}

// Get handles GET /games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.controller.GetGame(r.Context(), gameID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromModel(g))
}

// Draw handles POST /games/{id}/draw
func (h *GameHandler) Draw(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)

	card, err := h.controller.Draw(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	resp := response.DrawResponse{LegalPlays: []response.Placement{}}
	if card == nil {
		resp.DeckEmpty = true
		response.JSON(w, http.StatusOK, resp)
		return
	}

	c := response.CardFromModel(*card)
	resp.Card = &c

	plays, err := h.controller.LegalPlays(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	resp.LegalPlays = response.PlacementsFromModel(plays)

	response.JSON(w, http.StatusOK, resp)
}

// LegalPlays handles GET /games/{id}/legal-plays
func (h *GameHandler) LegalPlays(w http.ResponseWriter, r *http.Request) {
	plays, err := h.controller.LegalPlays(r.Context(), gameID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlacementsFromModel(plays))
}

// Play handles POST /games/{id}/play
func (h *GameHandler) Play(w http.ResponseWriter, r *http.Request) {
	var req request.Play
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	side := model.Side(req.Side)
	if !side.Valid() {
		apierr.WriteError(w, model.ErrInvalidSide)
		return
	}

	result, err := h.controller.ExecutePlay(r.Context(), gameID(r), req.StackIndex, side)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayResponseFromResult(result))
}

// Collect handles POST /games/{id}/collect
func (h *GameHandler) Collect(w http.ResponseWriter, r *http.Request) {
	var req request.Collect
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	result, err := h.controller.CollectStack(r.Context(), gameID(r), req.StackIndex, model.Condition(req.Condition))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CollectResponse{
		Collected:          response.StackFromModel(&result.Collected),
		ReplacementCreated: result.ReplacementCreated,
	})
}

// NoLegalPlay handles POST /games/{id}/no-legal-play
func (h *GameHandler) NoLegalPlay(w http.ResponseWriter, r *http.Request) {
	result, err := h.controller.HandleNoLegalPlay(r.Context(), gameID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.NoPlayResponse{
		CreatedNewStack: result.CreatedNewStack,
		NewStackIndex:   result.NewStackIndex,
		RoundEnding:     result.RoundEnding,
		GameOver:        result.GameOver,
	})
}

// NextTurn handles POST /games/{id}/next-turn
func (h *GameHandler) NextTurn(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.NextTurn(r.Context(), gameID(r)); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Scores handles GET /games/{id}/scores
func (h *GameHandler) Scores(w http.ResponseWriter, r *http.Request) {
	scores, err := h.controller.FinalScores(r.Context(), gameID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScoresResponseFromModel(scores, h.scoring.DetermineWinner(scores)))
}
