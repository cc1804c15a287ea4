package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Cireo/sixen/internal/api/handler"
	"github.com/Cireo/sixen/internal/api/middleware"
	"github.com/Cireo/sixen/internal/services/game"
	"github.com/Cireo/sixen/internal/services/highscore"
	"github.com/Cireo/sixen/internal/services/scoring"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	GameController   *game.Controller
	ScoringService   *scoring.Service
	HighScoreService *highscore.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.ScoringService)
	highScoreHandler := handler.NewHighScoreHandler(cfg.HighScoreService)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Game routes
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/draw", gameHandler.Draw).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/legal-plays", gameHandler.LegalPlays).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/play", gameHandler.Play).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/collect", gameHandler.Collect).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/no-legal-play", gameHandler.NoLegalPlay).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/next-turn", gameHandler.NextTurn).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/scores", gameHandler.Scores).Methods(http.MethodGet)

	// High score routes
	api.HandleFunc("/highscores", highScoreHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/highscores", highScoreHandler.Submit).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
