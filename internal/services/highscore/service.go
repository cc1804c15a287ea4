package highscore

import (
	"context"
	"log/slog"
	"sort"

	"github.com/Cireo/sixen/internal/dependencies/clock"
	"github.com/Cireo/sixen/internal/model"
	"github.com/Cireo/sixen/internal/storage"
)

// SubmitResult describes where a submitted score landed
type SubmitResult struct {
	// Rank is the 1-based position in the table, or 0 when the score
	// fell below the retained entries
	Rank int

	// InTable is true when the score made the retained table
	InTable bool

	// PersonalBest is true when this is the best score recorded under
	// this player name
	PersonalBest bool

	Entry model.HighScoreEntry
}

// Service maintains the persisted high score table: up to
// model.MaxHighScores entries ranked by the game's tiebreak rules with
// the oldest timestamp winning full ties. Storage failures degrade to
// "no scores" rather than propagating.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new high score Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Top returns the ranked table. On storage failure it logs and returns
// an empty list.
func (s *Service) Top(ctx context.Context) []model.HighScoreEntry {
	entries, err := s.storage.GetHighScores(ctx)
	if err != nil {
		s.logger.Warn("high scores unavailable", slog.String("error", err.Error()))
		return []model.HighScoreEntry{}
	}
	return entries
}

// Submit records a finished game's score under the player-supplied
// name and reports its rank. A storage failure skips the save and
// reports the score as unranked.
func (s *Service) Submit(ctx context.Context, playerName string, score model.PlayerScore) SubmitResult {
	entry := model.HighScoreEntry{
		PlayerName:    playerName,
		FaceCards:     score.FaceCards,
		TotalCards:    score.TotalCards,
		SixSevenCount: score.SixSevenCount,
		Timestamp:     s.clock.Now(),
		GameVersion:   model.GameVersion,
	}

	entries, err := s.storage.GetHighScores(ctx)
	if err != nil {
		s.logger.Warn("high score save skipped", slog.String("error", err.Error()))
		return SubmitResult{Entry: entry}
	}

	personalBest := s.isPersonalBest(entry, entries)

	entries = append(entries, entry)
	sortEntries(entries)

	if len(entries) > model.MaxHighScores {
		entries = entries[:model.MaxHighScores]
	}

	result := SubmitResult{Entry: entry, PersonalBest: personalBest}
	for i := range entries {
		if entries[i].Timestamp.Equal(entry.Timestamp) && entries[i].PlayerName == entry.PlayerName {
			result.Rank = i + 1
			result.InTable = true
			break
		}
	}

	if err := s.storage.SaveHighScores(ctx, entries); err != nil {
		s.logger.Warn("high score save skipped", slog.String("error", err.Error()))
		return SubmitResult{Entry: entry, PersonalBest: personalBest}
	}

	return result
}

// isPersonalBest reports whether the entry beats (or ties) every
// existing entry under the same name
func (s *Service) isPersonalBest(entry model.HighScoreEntry, entries []model.HighScoreEntry) bool {
	for _, existing := range entries {
		if existing.PlayerName != entry.PlayerName {
			continue
		}
		if compareEntries(existing, entry) < 0 {
			return false
		}
	}
	return true
}

// compareEntries orders two entries: negative when a ranks above b.
// Same tiebreaks as end-game scoring, with the older timestamp keeping
// its place on full ties.
func compareEntries(a, b model.HighScoreEntry) int {
	if a.FaceCards != b.FaceCards {
		return b.FaceCards - a.FaceCards
	}
	if a.TotalCards != b.TotalCards {
		return b.TotalCards - a.TotalCards
	}
	if a.SixSevenCount != b.SixSevenCount {
		return b.SixSevenCount - a.SixSevenCount
	}
	switch {
	case a.Timestamp.Before(b.Timestamp):
		return -1
	case a.Timestamp.After(b.Timestamp):
		return 1
	}
	return 0
}

func sortEntries(entries []model.HighScoreEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return compareEntries(entries[i], entries[j]) < 0
	})
}
