package highscore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Cireo/sixen/internal/dependencies/mocks"
	"github.com/Cireo/sixen/internal/model"
	"github.com/Cireo/sixen/internal/storage/memory"
	"github.com/Cireo/sixen/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 7, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func score(faceCards, totalCards, sixSevens int) model.PlayerScore {
	return model.PlayerScore{
		FaceCards:     faceCards,
		TotalCards:    totalCards,
		SixSevenCount: sixSevens,
	}
}

func (s *ServiceSuite) TestTopEmpty() {
	s.Empty(s.service.Top(s.ctx))
}

func (s *ServiceSuite) TestSubmitFirstScore() {
	result := s.service.Submit(s.ctx, "Alice", score(3, 8, 1))

	s.Equal(1, result.Rank)
	s.True(result.InTable)
	s.True(result.PersonalBest)
	s.Equal("Alice", result.Entry.PlayerName)
	s.Equal(model.GameVersion, result.Entry.GameVersion)
	s.Equal(s.clock.CurrentTime, result.Entry.Timestamp)

	entries := s.service.Top(s.ctx)
	s.Len(entries, 1)
}

func (s *ServiceSuite) TestSubmitRanksByTiebreaks() {
	s.service.Submit(s.ctx, "Alice", score(3, 8, 0))
	s.clock.Advance(time.Minute)
	s.service.Submit(s.ctx, "Bob", score(3, 9, 0))
	s.clock.Advance(time.Minute)
	result := s.service.Submit(s.ctx, "Carol", score(4, 4, 0))

	s.Equal(1, result.Rank)

	entries := s.service.Top(s.ctx)
	s.Equal("Carol", entries[0].PlayerName)
	s.Equal("Bob", entries[1].PlayerName)
	s.Equal("Alice", entries[2].PlayerName)
}

func (s *ServiceSuite) TestSubmitOlderEntryKeepsPlaceOnFullTie() {
	s.service.Submit(s.ctx, "Alice", score(3, 8, 1))
	s.clock.Advance(time.Hour)
	result := s.service.Submit(s.ctx, "Bob", score(3, 8, 1))

	s.Equal(2, result.Rank)

	entries := s.service.Top(s.ctx)
	s.Equal("Alice", entries[0].PlayerName)
}

func (s *ServiceSuite) TestTableCapsAtLimit() {
	for i := 0; i < model.MaxHighScores; i++ {
		s.service.Submit(s.ctx, "Filler", score(5, 20, 1))
		s.clock.Advance(time.Minute)
	}

	// Worse than everything in the full table
	result := s.service.Submit(s.ctx, "Late", score(1, 1, 0))

	s.False(result.InTable)
	s.Equal(0, result.Rank)

	entries := s.service.Top(s.ctx)
	s.Len(entries, model.MaxHighScores)
	for _, e := range entries {
		s.Equal("Filler", e.PlayerName)
	}
}

func (s *ServiceSuite) TestBetterScoreEvictsWorst() {
	for i := 0; i < model.MaxHighScores; i++ {
		s.service.Submit(s.ctx, "Filler", score(5, 20, 1))
		s.clock.Advance(time.Minute)
	}

	result := s.service.Submit(s.ctx, "Champ", score(9, 30, 2))

	s.True(result.InTable)
	s.Equal(1, result.Rank)

	entries := s.service.Top(s.ctx)
	s.Len(entries, model.MaxHighScores)
	s.Equal("Champ", entries[0].PlayerName)
}

func (s *ServiceSuite) TestPersonalBestDetection() {
	s.service.Submit(s.ctx, "Alice", score(4, 10, 1))
	s.clock.Advance(time.Minute)

	worse := s.service.Submit(s.ctx, "Alice", score(2, 5, 0))
	s.False(worse.PersonalBest)
	s.clock.Advance(time.Minute)

	better := s.service.Submit(s.ctx, "Alice", score(5, 12, 1))
	s.True(better.PersonalBest)

	// Another player's scores don't affect personal bests
	s.clock.Advance(time.Minute)
	other := s.service.Submit(s.ctx, "Bob", score(1, 2, 0))
	s.True(other.PersonalBest)
}

func (s *ServiceSuite) TestTopDegradesOnStorageFailure() {
	service := New(&failingStorage{}, s.clock, testutil.NopLogger())

	s.Empty(service.Top(s.ctx))
}

func (s *ServiceSuite) TestSubmitDegradesOnStorageFailure() {
	service := New(&failingStorage{}, s.clock, testutil.NopLogger())

	result := service.Submit(s.ctx, "Alice", score(3, 8, 1))

	s.False(result.InTable)
	s.Equal(0, result.Rank)
	s.Equal("Alice", result.Entry.PlayerName)
}

// failingStorage errors on every high score operation
type failingStorage struct {
	memory.Storage
}

func (f *failingStorage) GetHighScores(ctx context.Context) ([]model.HighScoreEntry, error) {
	return nil, model.ErrScoresUnavailable
}

func (f *failingStorage) SaveHighScores(ctx context.Context, entries []model.HighScoreEntry) error {
	return model.ErrScoresUnavailable
}
