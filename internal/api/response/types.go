package response

import (
	"time"

	"github.com/Cireo/sixen/internal/model"
	"github.com/Cireo/sixen/internal/services/game"
	"github.com/Cireo/sixen/internal/services/highscore"
)

// Card represents a card in API responses
type Card struct {
	Rank    string `json:"rank"`
	Suit    string `json:"suit"`
	AssetID string `json:"asset_id"`
}

// CardFromModel converts a model.Card
func CardFromModel(c model.Card) Card {
	return Card{
		Rank:    string(c.Rank),
		Suit:    string(c.Suit),
		AssetID: c.AssetID(),
	}
}

func cardPtrFromModel(c *model.Card) *Card {
	if c == nil {
		return nil
	}
	card := CardFromModel(*c)
	return &card
}

func cardsFromModel(cards []model.Card) []Card {
	result := make([]Card, len(cards))
	for i, c := range cards {
		result[i] = CardFromModel(c)
	}
	return result
}

// Stack represents a stack in API responses
type Stack struct {
	Face      Card   `json:"face"`
	Left      []Card `json:"left"`
	Right     []Card `json:"right"`
	MatchSlot *Card  `json:"match_slot"`
	Sum       int    `json:"sum"`
	Capacity  int    `json:"capacity"`
	Full      bool   `json:"full"`
}

// StackFromModel converts a model.Stack
func StackFromModel(s *model.Stack) Stack {
	return Stack{
		Face:      CardFromModel(s.Face),
		Left:      cardsFromModel(s.Left),
		Right:     cardsFromModel(s.Right),
		MatchSlot: cardPtrFromModel(s.MatchSlot),
		Sum:       s.Sum(),
		Capacity:  s.Capacity(),
		Full:      s.IsFull(),
	}
}

// Player represents a player in API responses
type Player struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	FaceCards     int    `json:"face_cards"`
	TotalCards    int    `json:"total_cards"`
	SixSevenCount int    `json:"six_seven_count"`
	StuckCard     *Card  `json:"stuck_card,omitempty"`
}

// PlayerFromModel converts a model.Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:            p.ID,
		Name:          p.Name,
		FaceCards:     p.FaceCardCount(),
		TotalCards:    p.TotalCardCount(),
		SixSevenCount: p.SixSevenCount,
		StuckCard:     cardPtrFromModel(p.StuckCard),
	}
}

// GameState represents the current game state
type GameState struct {
	ID                 string   `json:"id"`
	Phase              string   `json:"phase"`
	Players            []Player `json:"players"`
	CurrentPlayerIndex int      `json:"current_player_index"`
	Stacks             []Stack  `json:"stacks"`
	NumberDeckCount    int      `json:"number_deck_count"`
	FaceDeckCount      int      `json:"face_deck_count"`
	DrawnCard          *Card    `json:"drawn_card"`
	StuckPlayer        *int     `json:"stuck_player"`
}

// GameStateFromModel converts a model.Game
func GameStateFromModel(g *model.Game) GameState {
	players := make([]Player, len(g.Players))
	for i := range g.Players {
		players[i] = PlayerFromModel(&g.Players[i])
	}
	stacks := make([]Stack, len(g.Stacks))
	for i := range g.Stacks {
		stacks[i] = StackFromModel(&g.Stacks[i])
	}
	return GameState{
		ID:                 string(g.ID),
		Phase:              string(g.Phase),
		Players:            players,
		CurrentPlayerIndex: g.CurrentPlayerIndex,
		Stacks:             stacks,
		NumberDeckCount:    g.NumberDeck.Len(),
		FaceDeckCount:      g.FaceDeck.Len(),
		DrawnCard:          cardPtrFromModel(g.DrawnCard),
		StuckPlayer:        g.StuckPlayer,
	}
}

// Placement represents a legal placement
type Placement struct {
	StackIndex int    `json:"stack_index"`
	Side       string `json:"side"`
}

// PlacementsFromModel converts model placements
func PlacementsFromModel(plays []model.Placement) []Placement {
	result := make([]Placement, len(plays))
	for i, p := range plays {
		result[i] = Placement{StackIndex: p.StackIndex, Side: string(p.Side)}
	}
	return result
}

// DrawResponse is the response after drawing a card
type DrawResponse struct {
	Card       *Card       `json:"card"`
	DeckEmpty  bool        `json:"deck_empty"`
	LegalPlays []Placement `json:"legal_plays"`
}

// PlayResponse is the response after executing a play
type PlayResponse struct {
	StackIndex int      `json:"stack_index"`
	Side       string   `json:"side"`
	PlayedCard Card     `json:"played_card"`
	Conditions []string `json:"conditions"`
	Selected   string   `json:"selected,omitempty"`
}

// PlayResponseFromResult converts a game.PlayResult
func PlayResponseFromResult(r *game.PlayResult) PlayResponse {
	conditions := make([]string, len(r.Conditions))
	for i, c := range r.Conditions {
		conditions[i] = string(c)
	}
	return PlayResponse{
		StackIndex: r.StackIndex,
		Side:       string(r.Side),
		PlayedCard: CardFromModel(r.PlayedCard),
		Conditions: conditions,
		Selected:   string(r.Selected),
	}
}

// CollectResponse is the response after collecting a stack
type CollectResponse struct {
	Collected          Stack `json:"collected"`
	ReplacementCreated bool  `json:"replacement_created"`
}

// NoPlayResponse is the response for the no-legal-play branch
type NoPlayResponse struct {
	CreatedNewStack bool `json:"created_new_stack"`
	NewStackIndex   int  `json:"new_stack_index"`
	RoundEnding     bool `json:"round_ending"`
	GameOver        bool `json:"game_over"`
}

// PlayerScore represents a final standing
type PlayerScore struct {
	PlayerID      int    `json:"player_id"`
	PlayerName    string `json:"player_name"`
	FaceCards     int    `json:"face_cards"`
	TotalCards    int    `json:"total_cards"`
	SixSevenCount int    `json:"six_seven_count"`
}

// ScoresResponse is the ranked final standings
type ScoresResponse struct {
	Scores []PlayerScore `json:"scores"`
	Winner string        `json:"winner,omitempty"`
}

// ScoresResponseFromModel converts ranked scores
func ScoresResponseFromModel(scores []model.PlayerScore, winner string) ScoresResponse {
	result := make([]PlayerScore, len(scores))
	for i, s := range scores {
		result[i] = PlayerScore{
			PlayerID:      s.PlayerID,
			PlayerName:    s.PlayerName,
			FaceCards:     s.FaceCards,
			TotalCards:    s.TotalCards,
			SixSevenCount: s.SixSevenCount,
		}
	}
	return ScoresResponse{Scores: result, Winner: winner}
}

// HighScoreEntry represents a persisted high score
type HighScoreEntry struct {
	PlayerName    string    `json:"player_name"`
	FaceCards     int       `json:"face_cards"`
	TotalCards    int       `json:"total_cards"`
	SixSevenCount int       `json:"six_seven_count"`
	Timestamp     time.Time `json:"timestamp"`
	GameVersion   string    `json:"game_version"`
}

// HighScoreEntryFromModel converts a model.HighScoreEntry
func HighScoreEntryFromModel(e model.HighScoreEntry) HighScoreEntry {
	return HighScoreEntry{
		PlayerName:    e.PlayerName,
		FaceCards:     e.FaceCards,
		TotalCards:    e.TotalCards,
		SixSevenCount: e.SixSevenCount,
		Timestamp:     e.Timestamp,
		GameVersion:   e.GameVersion,
	}
}

// HighScoresResponse is the ranked high score table
type HighScoresResponse struct {
	Entries []HighScoreEntry `json:"entries"`
}

// SubmitScoreResponse reports where a submitted score landed
type SubmitScoreResponse struct {
	Rank         int            `json:"rank"`
	InTable      bool           `json:"in_table"`
	PersonalBest bool           `json:"personal_best"`
	Entry        HighScoreEntry `json:"entry"`
}

// SubmitScoreResponseFromResult converts a highscore.SubmitResult
func SubmitScoreResponseFromResult(r highscore.SubmitResult) SubmitScoreResponse {
	return SubmitScoreResponse{
		Rank:         r.Rank,
		InTable:      r.InTable,
		PersonalBest: r.PersonalBest,
		Entry:        HighScoreEntryFromModel(r.Entry),
	}
}
