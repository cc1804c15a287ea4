package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Cireo/sixen/internal/dependencies/mocks"
	"github.com/Cireo/sixen/internal/model"
	"github.com/Cireo/sixen/internal/services/deck"
	"github.com/Cireo/sixen/internal/services/rules"
	"github.com/Cireo/sixen/internal/services/scoring"
	"github.com/Cireo/sixen/internal/storage/memory"
	"github.com/Cireo/sixen/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	random     *mocks.MockRandom
	clock      *mocks.MockClock
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.random = mocks.NewMockRandom()
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 7, 12, 0, 0, 0, time.UTC))
	s.controller = NewController(
		s.storage,
		deck.New(s.random),
		rules.New(),
		scoring.New(),
		s.clock,
		s.random,
		testutil.NopLogger(),
	)
	s.ctx = context.Background()
}

func card(rank model.Rank, suit model.Suit) model.Card {
	return model.NewCard(rank, suit)
}

// createGame starts a game through the controller with a fixed ID.
// The mock shuffle is a no-op, so both decks keep construction order.
func (s *ControllerSuite) createGame(names ...string) *model.Game {
	s.random.QueueString("TESTGAME0001")
	game, err := s.controller.CreateGame(s.ctx, names)
	s.Require().NoError(err)
	return game
}

// saveGame persists a hand-built fixture
func (s *ControllerSuite) saveGame(game *model.Game) {
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))
}

// getGame reloads the stored state
func (s *ControllerSuite) getGame(id model.GameID) *model.Game {
	game, err := s.storage.GetGame(s.ctx, id)
	s.Require().NoError(err)
	return game
}

// Creation

func (s *ControllerSuite) TestCreateGame() {
	game := s.createGame("Alice", "Bob")

	s.Equal(model.GameID("TESTGAME0001"), game.ID)
	s.Equal(model.PhaseInProgress, game.Phase)
	s.Len(game.Players, 2)
	s.Equal("Alice", game.Players[0].Name)
	s.Equal(0, game.CurrentPlayerIndex)
	s.Equal(-1, game.LastPlayedIndex)
	s.Len(game.Stacks, model.InitialStacks)
	s.Equal(40, game.NumberDeck.Len())
	s.Equal(9, game.FaceDeck.Len())
	s.Equal(model.TotalCards, game.CardCount())
}

func (s *ControllerSuite) TestCreateGameValidatesPlayerCount() {
	_, err := s.controller.CreateGame(s.ctx, nil)
	s.ErrorIs(err, model.ErrNoPlayers)

	_, err = s.controller.CreateGame(s.ctx, []string{"a", "b", "c", "d", "e"})
	s.ErrorIs(err, model.ErrTooManyPlayers)
}

func (s *ControllerSuite) TestCreateGamePersists() {
	game := s.createGame("Alice")

	stored := s.getGame(game.ID)
	s.Equal(game.ID, stored.ID)
	s.Len(stored.Stacks, model.InitialStacks)
}

// Drawing

func (s *ControllerSuite) TestDraw() {
	game := s.createGame("Alice")
	top := game.NumberDeck[game.NumberDeck.Len()-1]

	drawn, err := s.controller.Draw(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Require().NotNil(drawn)
	s.Equal(top, *drawn)

	stored := s.getGame(game.ID)
	s.Equal(39, stored.NumberDeck.Len())
	s.Require().NotNil(stored.DrawnCard)
	s.Equal(top, *stored.DrawnCard)
	s.Equal(model.TotalCards, stored.CardCount())
}

func (s *ControllerSuite) TestDrawFromEmptyDeckEndsGame() {
	game := s.createGame("Alice")
	game.NumberDeck = model.Deck{}
	s.saveGame(game)

	drawn, err := s.controller.Draw(s.ctx, game.ID)
	s.NoError(err)
	s.Nil(drawn)

	stored := s.getGame(game.ID)
	s.True(stored.IsOver())
}

func (s *ControllerSuite) TestDrawOnFinishedGame() {
	game := s.createGame("Alice")
	game.Phase = model.PhaseGameOver
	s.saveGame(game)

	_, err := s.controller.Draw(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameOver)
}

func (s *ControllerSuite) TestDrawMissingGame() {
	_, err := s.controller.Draw(s.ctx, "NOPE")
	s.ErrorIs(err, model.ErrGameNotFound)
}

// Legal plays

func (s *ControllerSuite) TestLegalPlaysWithoutDrawnCard() {
	game := s.createGame("Alice")

	plays, err := s.controller.LegalPlays(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Empty(plays)
}

func (s *ControllerSuite) TestLegalPlaysIsIdempotent() {
	game := s.createGame("Alice")
	_, err := s.controller.Draw(s.ctx, game.ID)
	s.Require().NoError(err)

	first, err := s.controller.LegalPlays(s.ctx, game.ID)
	s.Require().NoError(err)
	second, err := s.controller.LegalPlays(s.ctx, game.ID)
	s.Require().NoError(err)

	s.NotEmpty(first)
	s.Equal(first, second)
}

// Playing

func (s *ControllerSuite) TestExecutePlayLeft() {
	game := s.createGame("Alice")
	drawn := card(model.Rank4, model.SuitClubs)
	game.DrawnCard = &drawn
	s.saveGame(game)

	result, err := s.controller.ExecutePlay(s.ctx, game.ID, 0, model.SideLeft)
	s.Require().NoError(err)
	s.Equal(0, result.StackIndex)
	s.Equal(model.SideLeft, result.Side)
	s.Equal(drawn, result.PlayedCard)

	stored := s.getGame(game.ID)
	s.Nil(stored.DrawnCard)
	s.Equal([]model.Card{drawn}, stored.Stacks[0].Left)
	s.Equal(model.TotalCards, stored.CardCount())
}

func (s *ControllerSuite) TestExecutePlayDetectsConditions() {
	game := s.createGame("Alice")
	game.Stacks[0].Left = []model.Card{card(model.Rank4, model.SuitDiamonds)}
	drawn := card(model.Rank2, model.SuitSpades)
	game.DrawnCard = &drawn
	s.saveGame(game)

	result, err := s.controller.ExecutePlay(s.ctx, game.ID, 0, model.SideLeft)
	s.Require().NoError(err)
	s.Contains(result.Conditions, model.ConditionSixSix)
	s.Equal(model.ConditionSixSix, result.Selected)
}

func (s *ControllerSuite) TestExecutePlaySixSevenPriority() {
	game := s.createGame("Alice")
	game.Stacks[0].Left = []model.Card{card(model.Rank6, model.SuitHearts)}
	drawn := card(model.Rank7, model.SuitSpades)
	game.DrawnCard = &drawn
	s.saveGame(game)

	result, err := s.controller.ExecutePlay(s.ctx, game.ID, 0, model.SideLeft)
	s.Require().NoError(err)
	s.Contains(result.Conditions, model.ConditionSixSeven)
	s.Equal(model.ConditionSixSeven, result.Selected)
}

func (s *ControllerSuite) TestExecutePlayMatch() {
	game := s.createGame("Alice")
	// Jack-sized stack: one card per side
	game.Stacks[0] = model.NewStack(card(model.RankJack, model.SuitHearts))
	game.Stacks[0].Left = []model.Card{card(model.Rank5, model.SuitHearts)}
	game.Stacks[0].Right = []model.Card{card(model.Rank3, model.SuitDiamonds)}
	drawn := card(model.Rank2, model.SuitClubs)
	game.DrawnCard = &drawn
	s.saveGame(game)

	result, err := s.controller.ExecutePlay(s.ctx, game.ID, 0, model.SideMatch)
	s.Require().NoError(err)
	s.Equal(model.ConditionMatch, result.Selected)

	stored := s.getGame(game.ID)
	s.Require().NotNil(stored.Stacks[0].MatchSlot)
	s.Equal(drawn, *stored.Stacks[0].MatchSlot)
}

func (s *ControllerSuite) TestExecutePlayErrors() {
	game := s.createGame("Alice")

	// No card drawn
	_, err := s.controller.ExecutePlay(s.ctx, game.ID, 0, model.SideLeft)
	s.ErrorIs(err, model.ErrNoCardDrawn)

	drawn := card(model.Rank4, model.SuitClubs)
	game.DrawnCard = &drawn
	s.saveGame(game)

	// Out-of-range stack
	_, err = s.controller.ExecutePlay(s.ctx, game.ID, 5, model.SideLeft)
	s.ErrorIs(err, model.ErrIllegalPlacement)

	// Unknown side
	_, err = s.controller.ExecutePlay(s.ctx, game.ID, 0, model.Side("middle"))
	s.ErrorIs(err, model.ErrIllegalPlacement)

	// Match on a non-full stack
	_, err = s.controller.ExecutePlay(s.ctx, game.ID, 0, model.SideMatch)
	s.ErrorIs(err, model.ErrIllegalPlacement)

	// State untouched after the rejections
	stored := s.getGame(game.ID)
	s.NotNil(stored.DrawnCard)
	s.Empty(stored.Stacks[0].Left)
}

func (s *ControllerSuite) TestExecutePlayLiftsStuckState() {
	game := s.createGame("Alice", "Bob")
	index := 0
	game.StuckPlayer = &index
	stuck := card(model.Rank9, model.SuitHearts)
	game.Players[0].StuckCard = &stuck
	drawn := card(model.Rank4, model.SuitClubs)
	game.DrawnCard = &drawn
	s.saveGame(game)

	_, err := s.controller.ExecutePlay(s.ctx, game.ID, 0, model.SideLeft)
	s.Require().NoError(err)

	stored := s.getGame(game.ID)
	s.Nil(stored.StuckPlayer)
	s.Nil(stored.Players[0].StuckCard)
}

func (s *ControllerSuite) TestExecutePlayKeepsOtherPlayersStuckState() {
	game := s.createGame("Alice", "Bob")
	index := 1
	game.StuckPlayer = &index
	stuck := card(model.Rank9, model.SuitHearts)
	game.Players[1].StuckCard = &stuck
	drawn := card(model.Rank4, model.SuitClubs)
	game.DrawnCard = &drawn
	s.saveGame(game)

	_, err := s.controller.ExecutePlay(s.ctx, game.ID, 0, model.SideLeft)
	s.Require().NoError(err)

	stored := s.getGame(game.ID)
	s.NotNil(stored.StuckPlayer)
	s.NotNil(stored.Players[1].StuckCard)
}

// Collection

func (s *ControllerSuite) TestCollectStack() {
	game := s.createGame("Alice")
	game.Stacks[0].Left = []model.Card{card(model.Rank4, model.SuitDiamonds), card(model.Rank2, model.SuitSpades)}
	s.saveGame(game)
	faceBefore := game.FaceDeck.Len()

	result, err := s.controller.CollectStack(s.ctx, game.ID, 0, model.ConditionSixSix)
	s.Require().NoError(err)
	s.True(result.ReplacementCreated)
	s.Equal(3, result.Collected.CardCount())

	stored := s.getGame(game.ID)
	s.Len(stored.Stacks, model.InitialStacks)
	s.Equal(faceBefore-1, stored.FaceDeck.Len())
	s.Len(stored.Players[0].Collected, 1)
	s.Equal(0, stored.Players[0].SixSevenCount)
	s.Equal(model.TotalCards, stored.CardCount())

	// Replacement entered at the front, empty
	s.Empty(stored.Stacks[0].Left)
	s.Empty(stored.Stacks[0].Right)
}

func (s *ControllerSuite) TestCollectStackCountsSixSevens() {
	game := s.createGame("Alice")
	s.saveGame(game)

	_, err := s.controller.CollectStack(s.ctx, game.ID, 1, model.ConditionSixSeven)
	s.Require().NoError(err)

	stored := s.getGame(game.ID)
	s.Equal(1, stored.Players[0].SixSevenCount)
}

func (s *ControllerSuite) TestCollectStackWithEmptyFaceDeckShrinksPlayArea() {
	game := s.createGame("Alice")
	game.FaceDeck = model.Deck{}
	s.saveGame(game)

	result, err := s.controller.CollectStack(s.ctx, game.ID, 0, model.ConditionMatch)
	s.Require().NoError(err)
	s.False(result.ReplacementCreated)

	stored := s.getGame(game.ID)
	s.Len(stored.Stacks, model.InitialStacks-1)
}

func (s *ControllerSuite) TestCollectStackErrors() {
	game := s.createGame("Alice")

	_, err := s.controller.CollectStack(s.ctx, game.ID, 7, model.ConditionMatch)
	s.ErrorIs(err, model.ErrInvalidStackIndex)

	_, err = s.controller.CollectStack(s.ctx, game.ID, 0, model.Condition("eight-eight"))
	s.ErrorIs(err, model.ErrInvalidCondition)
}

// No legal play

func (s *ControllerSuite) TestHandleNoLegalPlayCreatesStack() {
	game := s.createGame("Alice")
	drawn := card(model.Rank9, model.SuitHearts)
	game.DrawnCard = &drawn
	s.saveGame(game)

	result, err := s.controller.HandleNoLegalPlay(s.ctx, game.ID)
	s.Require().NoError(err)
	s.True(result.CreatedNewStack)
	s.Equal(0, result.NewStackIndex)

	stored := s.getGame(game.ID)
	s.Len(stored.Stacks, model.InitialStacks+1)
	// The held card stays drawn, playable on the new stack
	s.NotNil(stored.DrawnCard)
}

func (s *ControllerSuite) TestHandleNoLegalPlayMarksPlayerStuck() {
	game := s.createGame("Alice", "Bob")
	game.FaceDeck = model.Deck{}
	drawn := card(model.Rank9, model.SuitHearts)
	game.DrawnCard = &drawn
	s.saveGame(game)

	result, err := s.controller.HandleNoLegalPlay(s.ctx, game.ID)
	s.Require().NoError(err)
	s.True(result.RoundEnding)
	s.False(result.GameOver)

	stored := s.getGame(game.ID)
	s.Require().NotNil(stored.StuckPlayer)
	s.Equal(0, *stored.StuckPlayer)
	s.Nil(stored.DrawnCard)
	s.Require().NotNil(stored.Players[0].StuckCard)
	s.Equal(drawn, *stored.Players[0].StuckCard)
	s.Equal(model.TotalCards, stored.CardCount())
}

func (s *ControllerSuite) TestHandleNoLegalPlayStuckReturnEndsGame() {
	game := s.createGame("Alice", "Bob")
	game.FaceDeck = model.Deck{}
	game.NumberDeck = model.Deck{}
	index := 0
	game.StuckPlayer = &index
	drawn := card(model.Rank9, model.SuitHearts)
	game.DrawnCard = &drawn
	s.saveGame(game)

	result, err := s.controller.HandleNoLegalPlay(s.ctx, game.ID)
	s.Require().NoError(err)
	s.True(result.GameOver)

	stored := s.getGame(game.ID)
	s.True(stored.IsOver())
}

func (s *ControllerSuite) TestHandleNoLegalPlayKeepsFirstStuckPlayer() {
	game := s.createGame("Alice", "Bob")
	game.FaceDeck = model.Deck{}
	index := 0
	game.StuckPlayer = &index
	game.CurrentPlayerIndex = 1
	drawn := card(model.Rank9, model.SuitHearts)
	game.DrawnCard = &drawn
	s.saveGame(game)

	result, err := s.controller.HandleNoLegalPlay(s.ctx, game.ID)
	s.Require().NoError(err)
	s.True(result.RoundEnding)
	s.False(result.GameOver)

	stored := s.getGame(game.ID)
	// The recorded stuck player stays the first one
	s.Equal(0, *stored.StuckPlayer)
	s.NotNil(stored.Players[1].StuckCard)
}

func (s *ControllerSuite) TestHandleNoLegalPlayRequiresDrawnCard() {
	game := s.createGame("Alice")

	_, err := s.controller.HandleNoLegalPlay(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrNoCardDrawn)
}

// Turn advance

func (s *ControllerSuite) TestNextTurn() {
	game := s.createGame("Alice", "Bob", "Carol")

	s.Require().NoError(s.controller.NextTurn(s.ctx, game.ID))

	stored := s.getGame(game.ID)
	s.Equal(1, stored.CurrentPlayerIndex)
	s.Equal(0, stored.LastPlayedIndex)
	s.Nil(stored.DrawnCard)
}

func (s *ControllerSuite) TestNextTurnWrapsAround() {
	game := s.createGame("Alice", "Bob")
	game.CurrentPlayerIndex = 1
	s.saveGame(game)

	s.Require().NoError(s.controller.NextTurn(s.ctx, game.ID))

	stored := s.getGame(game.ID)
	s.Equal(0, stored.CurrentPlayerIndex)
	s.Equal(1, stored.LastPlayedIndex)
}

// End detection

func (s *ControllerSuite) TestCheckGameEndNumberDeckExhausted() {
	game := s.createGame("Alice")
	game.NumberDeck = model.Deck{}
	s.saveGame(game)

	over, err := s.controller.CheckGameEnd(s.ctx, game.ID)
	s.Require().NoError(err)
	s.True(over)
	s.True(s.getGame(game.ID).IsOver())
}

func (s *ControllerSuite) TestCheckGameEndEmptyPlayArea() {
	game := s.createGame("Alice")
	game.Stacks = []model.Stack{}
	game.FaceDeck = model.Deck{}
	s.saveGame(game)

	over, err := s.controller.CheckGameEnd(s.ctx, game.ID)
	s.Require().NoError(err)
	s.True(over)
}

func (s *ControllerSuite) TestCheckGameEndDeadlock() {
	game := s.createGame("Alice")
	game.FaceDeck = model.Deck{}

	// Full jack stack with sum 9: a 9 could still match, not dead
	alive := model.NewStack(card(model.RankJack, model.SuitHearts))
	alive.Left = []model.Card{card(model.Rank10, model.SuitHearts)}
	alive.Right = []model.Card{card(model.RankAce, model.SuitClubs)}
	game.Stacks = []model.Stack{alive}
	s.saveGame(game)

	over, err := s.controller.CheckGameEnd(s.ctx, game.ID)
	s.Require().NoError(err)
	s.False(over)

	// Full queen stack with sum 11: out of reach for every card
	game = s.getGame(game.ID)
	game.Stacks[0] = model.Stack{
		Face:  card(model.RankQueen, model.SuitSpades),
		Left:  []model.Card{card(model.Rank10, model.SuitHearts), card(model.Rank9, model.SuitClubs)},
		Right: []model.Card{card(model.Rank5, model.SuitDiamonds), card(model.Rank3, model.SuitSpades)},
	}
	s.saveGame(game)

	over, err = s.controller.CheckGameEnd(s.ctx, game.ID)
	s.Require().NoError(err)
	s.True(over)
}

func (s *ControllerSuite) TestCheckGameEndInProgress() {
	game := s.createGame("Alice")

	over, err := s.controller.CheckGameEnd(s.ctx, game.ID)
	s.Require().NoError(err)
	s.False(over)
	s.False(s.getGame(game.ID).IsOver())
}

// Scoring

func (s *ControllerSuite) TestFinalScores() {
	game := s.createGame("Alice", "Bob")
	collected := model.NewStack(card(model.RankKing, model.SuitHearts))
	game.Players[1].Collected = []model.Stack{collected}
	s.saveGame(game)

	scores, err := s.controller.FinalScores(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Len(scores, 2)
	s.Equal("Bob", scores[0].PlayerName)
}

// Full turn integration

func (s *ControllerSuite) TestCardConservationThroughTurns() {
	game := s.createGame("Alice", "Bob")

	for turn := 0; turn < 5; turn++ {
		drawn, err := s.controller.Draw(s.ctx, game.ID)
		s.Require().NoError(err)
		s.Require().NotNil(drawn)

		plays, err := s.controller.LegalPlays(s.ctx, game.ID)
		s.Require().NoError(err)

		if len(plays) > 0 {
			result, err := s.controller.ExecutePlay(s.ctx, game.ID, plays[0].StackIndex, plays[0].Side)
			s.Require().NoError(err)
			if result.Selected != "" {
				_, err = s.controller.CollectStack(s.ctx, game.ID, result.StackIndex, result.Selected)
				s.Require().NoError(err)
			}
		} else {
			_, err := s.controller.HandleNoLegalPlay(s.ctx, game.ID)
			s.Require().NoError(err)
		}

		s.Require().NoError(s.controller.NextTurn(s.ctx, game.ID))
		s.Equal(model.TotalCards, s.getGame(game.ID).CardCount())
	}
}
