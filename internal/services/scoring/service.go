package scoring

import (
	"sort"

	"github.com/Cireo/sixen/internal/model"
)

// Service ranks players at game end
type Service struct{}

// New creates a new scoring Service
func New() *Service {
	return &Service{}
}

// Rank orders players by the end-game tiebreaks: most face cards, then
// most total cards, then most six-seven collections, then most
// recently active. The sort is stable, so full ties keep their
// input-relative order.
func (s *Service) Rank(players []model.Player, lastPlayedIndex int) []model.PlayerScore {
	count := len(players)
	scores := make([]model.PlayerScore, 0, count)
	for i := range players {
		p := &players[i]
		scores = append(scores, model.PlayerScore{
			PlayerID:      p.ID,
			PlayerName:    p.Name,
			FaceCards:     p.FaceCardCount(),
			TotalCards:    p.TotalCardCount(),
			SixSevenCount: p.SixSevenCount,
			TurnOrder:     (lastPlayedIndex - i + count) % count,
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		a, b := scores[i], scores[j]
		if a.FaceCards != b.FaceCards {
			return a.FaceCards > b.FaceCards
		}
		if a.TotalCards != b.TotalCards {
			return a.TotalCards > b.TotalCards
		}
		if a.SixSevenCount != b.SixSevenCount {
			return a.SixSevenCount > b.SixSevenCount
		}
		return a.TurnOrder < b.TurnOrder
	})

	return scores
}

// DetermineWinner returns the winning player's name, or empty string
// when the ranking is empty
func (s *Service) DetermineWinner(scores []model.PlayerScore) string {
	if len(scores) == 0 {
		return ""
	}
	return scores[0].PlayerName
}
