package storage

import (
	"context"

	"github.com/Cireo/sixen/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error

	// High score operations. The stored slice is the full ranked table,
	// already sorted and capped by the highscore service.
	GetHighScores(ctx context.Context) ([]model.HighScoreEntry, error)
	SaveHighScores(ctx context.Context, entries []model.HighScoreEntry) error
}
