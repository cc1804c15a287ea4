package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameState:
		o.printGameState(v)
	case DrawResult:
		o.printDrawResult(v)
	case PlayResult:
		o.printPlayResult(v)
	case CollectResult:
		o.printCollectResult(v)
	case NoPlayResult:
		o.printNoPlayResult(v)
	case ScoresResult:
		o.printScoresResult(v)
	case LegalPlaysResult:
		o.printLegalPlays(v.LegalPlays)
	case HighScoresResult:
		o.printHighScores(v)
	case SubmitScoreResult:
		o.printSubmitScoreResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Card response type (matches API)
type Card struct {
	Rank    string `json:"rank"`
	Suit    string `json:"suit"`
	AssetID string `json:"asset_id"`
}

// Stack response type
type Stack struct {
	Face      Card   `json:"face"`
	Left      []Card `json:"left"`
	Right     []Card `json:"right"`
	MatchSlot *Card  `json:"match_slot"`
	Sum       int    `json:"sum"`
	Capacity  int    `json:"capacity"`
	Full      bool   `json:"full"`
}

// Player response type
type Player struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	FaceCards     int    `json:"face_cards"`
	TotalCards    int    `json:"total_cards"`
	SixSevenCount int    `json:"six_seven_count"`
	StuckCard     *Card  `json:"stuck_card,omitempty"`
}

// GameState response type
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

// Placement response type
type Placement struct {
	StackIndex int    `json:"stack_index"`
	Side       string `json:"side"`
}

// DrawResult response type
type DrawResult struct {
	Card       *Card       `json:"card"`
	DeckEmpty  bool        `json:"deck_empty"`
	LegalPlays []Placement `json:"legal_plays"`
}

// LegalPlaysResult response type
type LegalPlaysResult struct {
	LegalPlays []Placement `json:"legal_plays"`
}

// PlayResult response type
type PlayResult struct {
	StackIndex int      `json:"stack_index"`
	Side       string   `json:"side"`
	PlayedCard Card     `json:"played_card"`
	Conditions []string `json:"conditions"`
	Selected   string   `json:"selected,omitempty"`
}

// CollectResult response type
type CollectResult struct {
	Collected          Stack `json:"collected"`
	ReplacementCreated bool  `json:"replacement_created"`
}

// NoPlayResult response type
type NoPlayResult struct {
	CreatedNewStack bool `json:"created_new_stack"`
	NewStackIndex   int  `json:"new_stack_index"`
	RoundEnding     bool `json:"round_ending"`
	GameOver        bool `json:"game_over"`
}

// PlayerScore response type
type PlayerScore struct {
	PlayerID      int    `json:"player_id"`
	PlayerName    string `json:"player_name"`
	FaceCards     int    `json:"face_cards"`
	TotalCards    int    `json:"total_cards"`
	SixSevenCount int    `json:"six_seven_count"`
}

// ScoresResult response type
type ScoresResult struct {
	Scores []PlayerScore `json:"scores"`
	Winner string        `json:"winner,omitempty"`
}

// HighScoreEntry response type
type HighScoreEntry struct {
	PlayerName    string    `json:"player_name"`
	FaceCards     int       `json:"face_cards"`
	TotalCards    int       `json:"total_cards"`
	SixSevenCount int       `json:"six_seven_count"`
	Timestamp     time.Time `json:"timestamp"`
	GameVersion   string    `json:"game_version"`
}

// HighScoresResult response type
type HighScoresResult struct {
	Entries []HighScoreEntry `json:"entries"`
}

// SubmitScoreResult response type
type SubmitScoreResult struct {
	Rank         int            `json:"rank"`
	InTable      bool           `json:"in_table"`
	PersonalBest bool           `json:"personal_best"`
	Entry        HighScoreEntry `json:"entry"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func cardString(c Card) string {
	switch c.Suit {
	case "hearts":
		return c.Rank + "♥"
	case "diamonds":
		return c.Rank + "♦"
	case "clubs":
		return c.Rank + "♣"
	case "spades":
		return c.Rank + "♠"
	}
	return c.Rank + "?"
}

func cardsString(cards []Card) string {
	if len(cards) == 0 {
		return "-"
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = cardString(c)
	}
	return strings.Join(parts, " ")
}

func (o *Output) printGameState(g GameState) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("Phase: %s\n", g.Phase)
	fmt.Printf("Number deck: %d cards, face deck: %d cards\n", g.NumberDeckCount, g.FaceDeckCount)

	if g.DrawnCard != nil {
		fmt.Printf("Drawn card: %s\n", cardString(*g.DrawnCard))
	}

	fmt.Printf("\nStacks (%d):\n", len(g.Stacks))
	for i, s := range g.Stacks {
		o.printStack(i, s)
	}

	fmt.Printf("\nPlayers (%d):\n", len(g.Players))
	for i, p := range g.Players {
		marker := " "
		if i == g.CurrentPlayerIndex {
			marker = "*"
		}
		stuckStr := ""
		if p.StuckCard != nil {
			stuckStr = fmt.Sprintf(" [stuck: %s]", cardString(*p.StuckCard))
		}
		fmt.Printf("%s %s: %d face, %d total, %d six-sevens%s\n",
			marker, p.Name, p.FaceCards, p.TotalCards, p.SixSevenCount, stuckStr)
	}
}

func (o *Output) printStack(index int, s Stack) {
	matchStr := ""
	if s.MatchSlot != nil {
		matchStr = fmt.Sprintf(" match=%s", cardString(*s.MatchSlot))
	}
	fullStr := ""
	if s.Full {
		fullStr = " [full]"
	}
	fmt.Printf("  [%d] %s (cap %d): left=%s right=%s sum=%d%s%s\n",
		index, cardString(s.Face), s.Capacity,
		cardsString(s.Left), cardsString(s.Right), s.Sum, matchStr, fullStr)
}

func (o *Output) printDrawResult(d DrawResult) {
	if d.DeckEmpty {
		fmt.Println("Number deck is empty - game over")
		return
	}
	if d.Card != nil {
		fmt.Printf("Drew: %s\n", cardString(*d.Card))
	}
	o.printLegalPlays(d.LegalPlays)
}

func (o *Output) printLegalPlays(plays []Placement) {
	if len(plays) == 0 {
		fmt.Println("No legal plays")
		return
	}
	fmt.Printf("Legal plays (%d):\n", len(plays))
	for _, p := range plays {
		fmt.Printf("  - stack %d, %s\n", p.StackIndex, p.Side)
	}
}

func (o *Output) printPlayResult(p PlayResult) {
	fmt.Printf("Played %s on stack %d (%s)\n", cardString(p.PlayedCard), p.StackIndex, p.Side)
	if len(p.Conditions) > 0 {
		fmt.Printf("Conditions: %s\n", strings.Join(p.Conditions, ", "))
	}
	if p.Selected != "" {
		fmt.Printf("Collectable: %s\n", p.Selected)
	}
}

func (o *Output) printCollectResult(c CollectResult) {
	count := len(c.Collected.Left) + len(c.Collected.Right) + 1
	if c.Collected.MatchSlot != nil {
		count++
	}
	fmt.Printf("Collected stack (%s): %d cards\n", cardString(c.Collected.Face), count)
	if c.ReplacementCreated {
		fmt.Println("New stack dealt")
	}
}

func (o *Output) printNoPlayResult(n NoPlayResult) {
	switch {
	case n.CreatedNewStack:
		fmt.Printf("New stack created at position %d\n", n.NewStackIndex)
	case n.GameOver:
		fmt.Println("Stuck again - game over")
	case n.RoundEnding:
		fmt.Println("Stuck - final round begins")
	}
}

func (o *Output) printScoresResult(s ScoresResult) {
	fmt.Println("Final standings:")
	for i, score := range s.Scores {
		fmt.Printf("  %d. %s: %d face, %d total, %d six-sevens\n",
			i+1, score.PlayerName, score.FaceCards, score.TotalCards, score.SixSevenCount)
	}
	if s.Winner != "" {
		fmt.Printf("\nWinner: %s\n", s.Winner)
	}
}

func (o *Output) printHighScores(h HighScoresResult) {
	if len(h.Entries) == 0 {
		fmt.Println("No high scores yet")
		return
	}
	fmt.Println("High scores:")
	for i, e := range h.Entries {
		fmt.Printf("  %d. %s: %d face, %d total, %d six-sevens (%s)\n",
			i+1, e.PlayerName, e.FaceCards, e.TotalCards, e.SixSevenCount,
			e.Timestamp.Format("2006-01-02"))
	}
}

func (o *Output) printSubmitScoreResult(s SubmitScoreResult) {
	if s.InTable {
		fmt.Printf("Score submitted - rank %d\n", s.Rank)
	} else {
		fmt.Println("Score submitted - did not make the table")
	}
	if s.PersonalBest {
		fmt.Println("New personal best!")
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
