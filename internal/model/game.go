package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GamePhase represents the lifecycle phase of a game
type GamePhase string

const (
	PhaseInProgress GamePhase = "in_progress"
	PhaseGameOver   GamePhase = "game_over"
)

// InitialStacks is the number of stacks dealt at game start,
// regardless of player count
const InitialStacks = 3

// TotalCards is the invariant card count across decks, stacks,
// collections, and cards in hand
const TotalCards = 52

// MaxPlayers is the most players a game supports
const MaxPlayers = 4

// Game is the aggregate root for one game of Sixen. It is owned and
// mutated by a single orchestrating caller; all operations are
// synchronous state transitions.
type Game struct {
	ID    GameID    `json:"id"`
	Phase GamePhase `json:"phase"`

	Players            []Player `json:"players"`
	CurrentPlayerIndex int      `json:"current_player_index"`

	NumberDeck Deck    `json:"number_deck"`
	FaceDeck   Deck    `json:"face_deck"`
	Stacks     []Stack `json:"stacks"`

	// DrawnCard is the active player's card in hand, at most one at a time
	DrawnCard *Card `json:"drawn_card"`

	// StuckPlayer is the index of the player whose stuck turn started
	// the terminal last round, or nil
	StuckPlayer *int `json:"stuck_player"`

	// LastPlayedIndex is the last player to complete a turn, used for
	// the final tiebreak. -1 before any turn completes.
	LastPlayedIndex int `json:"last_played_index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsOver reports whether the game has reached its terminal phase
func (g *Game) IsOver() bool {
	return g.Phase == PhaseGameOver
}

// CurrentPlayer returns the player whose turn it is
func (g *Game) CurrentPlayer() *Player {
	return &g.Players[g.CurrentPlayerIndex]
}

// IsStuckPlayer reports whether the given index is the recorded stuck player
func (g *Game) IsStuckPlayer(index int) bool {
	return g.StuckPlayer != nil && *g.StuckPlayer == index
}

// CardCount returns the total cards across decks, stacks, collections,
// the drawn card, and stuck cards. Always equals TotalCards for any
// reachable state.
func (g *Game) CardCount() int {
	count := g.NumberDeck.Len() + g.FaceDeck.Len()
	for i := range g.Stacks {
		count += g.Stacks[i].CardCount()
	}
	for i := range g.Players {
		count += g.Players[i].TotalCardCount()
		if g.Players[i].StuckCard != nil {
			count++
		}
	}
	if g.DrawnCard != nil {
		count++
	}
	return count
}
