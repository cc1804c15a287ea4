package game

import (
	"context"
	"log/slog"

	"github.com/Cireo/sixen/internal/dependencies/clock"
	"github.com/Cireo/sixen/internal/dependencies/random"
	"github.com/Cireo/sixen/internal/model"
	"github.com/Cireo/sixen/internal/services/deck"
	"github.com/Cireo/sixen/internal/services/rules"
	"github.com/Cireo/sixen/internal/services/scoring"
	"github.com/Cireo/sixen/internal/storage"
)

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// PlayResult reports the outcome of a successful play
type PlayResult struct {
	StackIndex int
	Side       model.Side
	PlayedCard model.Card

	// Conditions holds every collection condition the play triggered,
	// in detection order, for announcement purposes
	Conditions []model.Condition

	// Selected is the single condition the collection is credited to
	// (six-seven with priority), or empty when nothing fired
	Selected model.Condition
}

// NoPlayResult reports the outcome of the no-legal-play branch
type NoPlayResult struct {
	// CreatedNewStack is true when a face card was turned into a fresh
	// stack at the front of the play area. The drawn card is guaranteed
	// playable on it, so callers should retry the play step.
	CreatedNewStack bool
	NewStackIndex   int

	// RoundEnding is true when a player just became stuck, opening the
	// terminal last round
	RoundEnding bool

	// GameOver is true when the turn had already returned to the
	// recorded stuck player with no relief
	GameOver bool
}

// CollectResult reports the outcome of collecting a stack
type CollectResult struct {
	// Collected is a snapshot of the stack that moved into the current
	// player's collection
	Collected model.Stack

	// ReplacementCreated is true when a fresh stack was dealt into the
	// front of the play area
	ReplacementCreated bool
}

// Controller owns the turn state machine: draw, legal-move check,
// play or no-play, collection, and turn advance. Every operation is a
// synchronous state transition against the stored game.
type Controller struct {
	storage        storage.Storage
	deckService    *deck.Service
	rulesService   *rules.Service
	scoringService *scoring.Service
	clock          clock.Clock
	random         random.Random
	logger         *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	deckService *deck.Service,
	rulesService *rules.Service,
	scoringService *scoring.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:        storage,
		deckService:    deckService,
		rulesService:   rulesService,
		scoringService: scoringService,
		clock:          clock,
		random:         random,
		logger:         logger,
	}
}

// CreateGame initializes a new game: both decks shuffled, three stacks
// dealt from the face deck
func (c *Controller) CreateGame(ctx context.Context, playerNames []string) (*model.Game, error) {
	if len(playerNames) == 0 {
		return nil, model.ErrNoPlayers
	}
	if len(playerNames) > model.MaxPlayers {
		return nil, model.ErrTooManyPlayers
	}

	players := make([]model.Player, len(playerNames))
	for i, name := range playerNames {
		players[i] = model.NewPlayer(i, name)
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:              model.GameID(c.random.String(12, gameIDAlphabet)),
		Phase:           model.PhaseInProgress,
		Players:         players,
		NumberDeck:      c.deckService.NewNumberDeck(),
		FaceDeck:        c.deckService.NewFaceDeck(),
		Stacks:          make([]model.Stack, 0, model.InitialStacks),
		LastPlayedIndex: -1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	for i := 0; i < model.InitialStacks; i++ {
		face, _ := game.FaceDeck.Draw()
		game.Stacks = append(game.Stacks, model.NewStack(face))
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("player_count", len(players)),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, id)
}

// Draw pops the top card of the number deck into the current player's
// hand. A nil card with a nil error means the number deck is empty;
// the game ends immediately.
func (c *Controller) Draw(ctx context.Context, id model.GameID) (*model.Card, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if game.IsOver() {
		return nil, model.ErrGameOver
	}

	card, ok := game.NumberDeck.Draw()
	if !ok {
		game.Phase = model.PhaseGameOver
		game.UpdatedAt = c.clock.Now()
		if err := c.storage.SaveGame(ctx, game); err != nil {
			return nil, err
		}
		c.logger.Info("number deck exhausted, game over",
			slog.String("game_id", string(game.ID)),
		)
		return nil, nil
	}

	game.DrawnCard = &card
	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return &card, nil
}

// LegalPlays enumerates every admissible placement for the drawn card.
// Pure query: no state is mutated, and repeated calls return identical
// results.
func (c *Controller) LegalPlays(ctx context.Context, id model.GameID) ([]model.Placement, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if game.DrawnCard == nil {
		return []model.Placement{}, nil
	}
	return c.rulesService.LegalPlays(game.Stacks, *game.DrawnCard), nil
}

// ExecutePlay applies the drawn card to the requested placement. The
// placement is validated before any mutation; on violation the state is
// untouched and ErrNoCardDrawn or ErrIllegalPlacement is returned.
func (c *Controller) ExecutePlay(ctx context.Context, id model.GameID, stackIndex int, side model.Side) (*PlayResult, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if game.IsOver() {
		return nil, model.ErrGameOver
	}
	if game.DrawnCard == nil {
		return nil, model.ErrNoCardDrawn
	}
	if stackIndex < 0 || stackIndex >= len(game.Stacks) {
		return nil, model.ErrIllegalPlacement
	}
	if !side.Valid() {
		return nil, model.ErrIllegalPlacement
	}

	played := *game.DrawnCard
	if !c.rulesService.CanPlay(&game.Stacks[stackIndex], played, side) {
		return nil, model.ErrIllegalPlacement
	}

	// Copy-on-write: the prior configuration is never mutated
	updated := game.Stacks[stackIndex].Clone()
	switch side {
	case model.SideLeft:
		updated.Left = append(updated.Left, played)
	case model.SideRight:
		updated.Right = append(updated.Right, played)
	case model.SideMatch:
		updated.MatchSlot = &played
	}
	game.Stacks[stackIndex] = updated
	game.DrawnCard = nil

	// A valid play lifts the stuck state, but only for the player who
	// triggered it; the game ends only if the turn returns to them with
	// no play made.
	if game.IsStuckPlayer(game.CurrentPlayerIndex) {
		game.StuckPlayer = nil
		game.CurrentPlayer().StuckCard = nil
	}

	conditions := c.rulesService.DetectConditions(&updated, played, side)
	selected, _ := c.rulesService.SelectCondition(conditions)

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("card played",
		slog.String("game_id", string(game.ID)),
		slog.String("card", played.String()),
		slog.Int("stack_index", stackIndex),
		slog.String("side", string(side)),
		slog.Int("conditions", len(conditions)),
	)

	return &PlayResult{
		StackIndex: stackIndex,
		Side:       side,
		PlayedCard: played,
		Conditions: conditions,
		Selected:   selected,
	}, nil
}

// CollectStack moves a stack into the current player's collection.
// When the face deck still has cards, a fresh stack is dealt into the
// front of the play area; otherwise the play area shrinks permanently.
func (c *Controller) CollectStack(ctx context.Context, id model.GameID, stackIndex int, condition model.Condition) (*CollectResult, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if stackIndex < 0 || stackIndex >= len(game.Stacks) {
		return nil, model.ErrInvalidStackIndex
	}
	if !condition.Valid() {
		return nil, model.ErrInvalidCondition
	}

	snapshot := game.Stacks[stackIndex].Clone()
	player := game.CurrentPlayer()
	player.Collected = append(player.Collected, snapshot)
	if condition == model.ConditionSixSeven {
		player.SixSevenCount++
	}

	game.Stacks = append(game.Stacks[:stackIndex], game.Stacks[stackIndex+1:]...)

	result := &CollectResult{Collected: snapshot}
	if face, ok := game.FaceDeck.Draw(); ok {
		// New stacks enter at the front of the play area
		game.Stacks = append([]model.Stack{model.NewStack(face)}, game.Stacks...)
		result.ReplacementCreated = true
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("stack collected",
		slog.String("game_id", string(game.ID)),
		slog.String("player", player.Name),
		slog.String("condition", string(condition)),
		slog.Bool("replacement_created", result.ReplacementCreated),
	)

	return result, nil
}

// HandleNoLegalPlay runs the no-legal-play branch for the drawn card:
// open a new stack if a face card remains, otherwise mark the current
// player stuck, or end the game if the turn has already come back to
// the recorded stuck player.
func (c *Controller) HandleNoLegalPlay(ctx context.Context, id model.GameID) (*NoPlayResult, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if game.IsOver() {
		return nil, model.ErrGameOver
	}
	if game.DrawnCard == nil {
		return nil, model.ErrNoCardDrawn
	}

	result := &NoPlayResult{}

	if face, ok := game.FaceDeck.Draw(); ok {
		// An empty stack sums to zero, so the drawn card is always
		// playable on the new stack's left side
		game.Stacks = append([]model.Stack{model.NewStack(face)}, game.Stacks...)
		result.CreatedNewStack = true
		result.NewStackIndex = 0
	} else if game.IsStuckPlayer(game.CurrentPlayerIndex) {
		// A full round elapsed with no relief
		game.Phase = model.PhaseGameOver
		result.GameOver = true
		c.logger.Info("stuck player could not recover, game over",
			slog.String("game_id", string(game.ID)),
			slog.Int("player_index", game.CurrentPlayerIndex),
		)
	} else {
		// The player keeps the card; the first player stuck opens the
		// terminal last round
		player := game.CurrentPlayer()
		player.StuckCard = game.DrawnCard
		game.DrawnCard = nil
		if game.StuckPlayer == nil {
			index := game.CurrentPlayerIndex
			game.StuckPlayer = &index
		}
		result.RoundEnding = true
		c.logger.Info("player stuck",
			slog.String("game_id", string(game.ID)),
			slog.String("player", player.Name),
		)
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return result, nil
}

// NextTurn advances play to the next player and clears the shared
// drawn-card slot. A stuck player's card lives in their own StuckCard
// field and persists.
func (c *Controller) NextTurn(ctx context.Context, id model.GameID) error {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return err
	}
	if game.IsOver() {
		return model.ErrGameOver
	}

	game.LastPlayedIndex = game.CurrentPlayerIndex
	game.CurrentPlayerIndex = (game.CurrentPlayerIndex + 1) % len(game.Players)
	game.DrawnCard = nil
	game.UpdatedAt = c.clock.Now()
	return c.storage.SaveGame(ctx, game)
}

// CheckGameEnd evaluates the terminal conditions that do not depend on
// a pending action: exhausted number deck, an empty play area with no
// face cards left, or a provably dead-locked board. Marks the game
// over and reports whether it is.
func (c *Controller) CheckGameEnd(ctx context.Context, id model.GameID) (bool, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return false, err
	}
	if game.IsOver() {
		return true, nil
	}

	over := false
	switch {
	case game.NumberDeck.IsEmpty() && game.DrawnCard == nil:
		over = true
	case len(game.Stacks) == 0 && game.FaceDeck.IsEmpty():
		over = true
	case game.FaceDeck.IsEmpty() && c.rulesService.IsDeadlocked(game.Stacks):
		// Every stack full with sum above 10: no card 1-10 can ever match
		over = true
	}

	if over {
		game.Phase = model.PhaseGameOver
		game.UpdatedAt = c.clock.Now()
		if err := c.storage.SaveGame(ctx, game); err != nil {
			return false, err
		}
		c.logger.Info("game over",
			slog.String("game_id", string(game.ID)),
		)
	}
	return over, nil
}

// FinalScores ranks all players by the end-game tiebreaks
func (c *Controller) FinalScores(ctx context.Context, id model.GameID) ([]model.PlayerScore, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.scoringService.Rank(game.Players, game.LastPlayedIndex), nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, playerNames []string) (*model.Game, error)
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	Draw(ctx context.Context, id model.GameID) (*model.Card, error)
	LegalPlays(ctx context.Context, id model.GameID) ([]model.Placement, error)
	ExecutePlay(ctx context.Context, id model.GameID, stackIndex int, side model.Side) (*PlayResult, error)
	CollectStack(ctx context.Context, id model.GameID, stackIndex int, condition model.Condition) (*CollectResult, error)
	HandleNoLegalPlay(ctx context.Context, id model.GameID) (*NoPlayResult, error)
	NextTurn(ctx context.Context, id model.GameID) error
	CheckGameEnd(ctx context.Context, id model.GameID) (bool, error)
	FinalScores(ctx context.Context, id model.GameID) ([]model.PlayerScore, error)
}

var _ ControllerInterface = (*Controller)(nil)
