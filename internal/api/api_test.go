package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cireo/sixen/internal/api"
	"github.com/Cireo/sixen/internal/api/response"
	"github.com/Cireo/sixen/internal/factory"
	"github.com/Cireo/sixen/internal/testutil"
)

// testServer wires the router against a mocked app, so deck order and
// game IDs are deterministic
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()

	router := api.NewRouter(api.RouterConfig{
		Logger:           testutil.NopLogger(),
		GameController:   app.GameController,
		ScoringService:   app.ScoringService,
		HighScoreService: app.HighScoreService,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// createGame starts a game with a fixed ID and returns its state
func (ts *testServer) createGame(t *testing.T, names ...string) response.GameState {
	t.Helper()

	ts.app.MockRandom.QueueString("GAME01")
	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]any{"player_names": names})
	require.Equal(t, http.StatusCreated, rr.Code)

	var state response.GameState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	return state
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateGame(t *testing.T) {
	ts := newTestServer(t)

	state := ts.createGame(t, "Alice", "Bob")

	assert.Equal(t, "GAME01", state.ID)
	assert.Equal(t, "in_progress", state.Phase)
	assert.Len(t, state.Players, 2)
	assert.Len(t, state.Stacks, 3)
	assert.Equal(t, 40, state.NumberDeckCount)
	assert.Equal(t, 9, state.FaceDeckCount)
	assert.Nil(t, state.DrawnCard)
}

func TestCreateGameValidation(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]any{"player_names": []string{}})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "NO_PLAYERS")

	rr = ts.request(http.MethodPost, "/api/v1/games", map[string]any{
		"player_names": []string{"a", "b", "c", "d", "e"},
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "TOO_MANY_PLAYERS")
}

func TestGetGameNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/games/MISSING", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "GAME_NOT_FOUND")
}

func TestDrawPlayAndNextTurnFlow(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, "Alice", "Bob")

	// Draw: the unshuffled deck yields the 10 of spades
	rr := ts.request(http.MethodPost, "/api/v1/games/GAME01/draw", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var draw response.DrawResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &draw))
	require.NotNil(t, draw.Card)
	assert.Equal(t, "10", draw.Card.Rank)
	assert.Equal(t, "spades", draw.Card.Suit)
	assert.False(t, draw.DeckEmpty)
	assert.NotEmpty(t, draw.LegalPlays)

	// The standalone legal-plays query agrees with the draw response
	rr = ts.request(http.MethodGet, "/api/v1/games/GAME01/legal-plays", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var plays []response.Placement
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &plays))
	assert.Equal(t, draw.LegalPlays, plays)

	// Play it left on the first stack
	rr = ts.request(http.MethodPost, "/api/v1/games/GAME01/play", map[string]any{
		"stack_index": 0,
		"side":        "left",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var play response.PlayResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &play))
	assert.Equal(t, 0, play.StackIndex)
	assert.Equal(t, "left", play.Side)
	assert.Empty(t, play.Conditions)

	// Advance the turn
	rr = ts.request(http.MethodPost, "/api/v1/games/GAME01/next-turn", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	// Bob is up, the drawn card slot is clear
	rr = ts.request(http.MethodGet, "/api/v1/games/GAME01", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var state response.GameState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.Equal(t, 1, state.CurrentPlayerIndex)
	assert.Nil(t, state.DrawnCard)
	assert.Equal(t, 10, state.Stacks[0].Sum)
}

func TestPlayWithoutDraw(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, "Alice")

	rr := ts.request(http.MethodPost, "/api/v1/games/GAME01/play", map[string]any{
		"stack_index": 0,
		"side":        "left",
	})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "NO_CARD_DRAWN")
}

func TestPlayInvalidSide(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, "Alice")

	rr := ts.request(http.MethodPost, "/api/v1/games/GAME01/play", map[string]any{
		"stack_index": 0,
		"side":        "middle",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCollectValidation(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, "Alice")

	rr := ts.request(http.MethodPost, "/api/v1/games/GAME01/collect", map[string]any{
		"stack_index": 0,
		"condition":   "eight-eight",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_CONDITION")

	rr = ts.request(http.MethodPost, "/api/v1/games/GAME01/collect", map[string]any{
		"stack_index": 9,
		"condition":   "six-six",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_STACK_INDEX")
}

func TestCollectStack(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, "Alice")

	rr := ts.request(http.MethodPost, "/api/v1/games/GAME01/collect", map[string]any{
		"stack_index": 0,
		"condition":   "six-six",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var collect response.CollectResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &collect))
	assert.True(t, collect.ReplacementCreated)

	// The collector's counts update on the game state
	rr = ts.request(http.MethodGet, "/api/v1/games/GAME01", nil)
	var state response.GameState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.Equal(t, 1, state.Players[0].FaceCards)
	assert.Equal(t, 8, state.FaceDeckCount)
}

func TestScores(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, "Alice", "Bob")

	// Bob collects a stack
	ts.request(http.MethodPost, "/api/v1/games/GAME01/next-turn", nil)
	ts.request(http.MethodPost, "/api/v1/games/GAME01/collect", map[string]any{
		"stack_index": 0,
		"condition":   "match",
	})

	rr := ts.request(http.MethodGet, "/api/v1/games/GAME01/scores", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var scores response.ScoresResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &scores))
	require.Len(t, scores.Scores, 2)
	assert.Equal(t, "Bob", scores.Scores[0].PlayerName)
	assert.Equal(t, "Bob", scores.Winner)
}

func TestHighScores(t *testing.T) {
	ts := newTestServer(t)

	// Empty table
	rr := ts.request(http.MethodGet, "/api/v1/highscores", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list response.HighScoresResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Empty(t, list.Entries)

	// Submit a score
	rr = ts.request(http.MethodPost, "/api/v1/highscores", map[string]any{
		"player_name":     "Alice",
		"face_cards":      3,
		"total_cards":     8,
		"six_seven_count": 1,
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var submit response.SubmitScoreResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &submit))
	assert.Equal(t, 1, submit.Rank)
	assert.True(t, submit.InTable)
	assert.True(t, submit.PersonalBest)

	// It shows on the table
	rr = ts.request(http.MethodGet, "/api/v1/highscores", nil)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Entries, 1)
	assert.Equal(t, "Alice", list.Entries[0].PlayerName)
}

func TestHighScoreSubmitValidation(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/highscores", map[string]any{
		"player_name": "   ",
		"face_cards":  1,
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
}
