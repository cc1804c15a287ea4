package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/Cireo/sixen/internal/dependencies/clock"
	"github.com/Cireo/sixen/internal/dependencies/random"
	"github.com/Cireo/sixen/internal/services/deck"
	"github.com/Cireo/sixen/internal/services/game"
	"github.com/Cireo/sixen/internal/services/highscore"
	"github.com/Cireo/sixen/internal/services/rules"
	"github.com/Cireo/sixen/internal/services/scoring"
	"github.com/Cireo/sixen/internal/storage"
	"github.com/Cireo/sixen/internal/storage/memory"
	redisstorage "github.com/Cireo/sixen/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DeckService      *deck.Service
	RulesService     *rules.Service
	ScoringService   *scoring.Service
	HighScoreService *highscore.Service
	GameController   *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return NewWithDependencies(store, clock.New(), random.New(), logger), nil
}

// NewWithDependencies creates an App with the given dependencies
// (useful for testing with mocked clock and random)
func NewWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	deckService := deck.New(rnd)
	rulesService := rules.New()
	scoringService := scoring.New()
	highScoreService := highscore.New(store, clk, logger)
	gameController := game.NewController(store, deckService, rulesService, scoringService, clk, rnd, logger)

	return &App{
		Storage:          store,
		Clock:            clk,
		Random:           rnd,
		DeckService:      deckService,
		RulesService:     rulesService,
		ScoringService:   scoringService,
		HighScoreService: highScoreService,
		GameController:   gameController,
	}
}
