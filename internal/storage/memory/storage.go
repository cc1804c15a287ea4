package memory

import (
	"context"
	"sync"

	"github.com/Cireo/sixen/internal/model"
	"github.com/Cireo/sixen/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	games      map[model.GameID]*model.Game
	highScores []model.HighScoreEntry
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games: make(map[model.GameID]*model.Game),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

// High score operations

func (s *Storage) GetHighScores(ctx context.Context) ([]model.HighScoreEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.HighScoreEntry, len(s.highScores))
	copy(result, s.highScores)
	return result, nil
}

func (s *Storage) SaveHighScores(ctx context.Context, entries []model.HighScoreEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.highScores = make([]model.HighScoreEntry, len(entries))
	copy(s.highScores, entries)
	return nil
}
