package model

// Player is a game participant. Membership is fixed for the duration
// of a game; the ID is the player's index in Game.Players.
type Player struct {
	ID   int    `json:"id"`
	Name string `json:"name"`

	// Collected holds snapshots of stacks won by this player
	Collected []Stack `json:"collected"`

	// SixSevenCount is how many of those wins were six-seven collections
	SixSevenCount int `json:"six_seven_count"`

	// StuckCard is a card the player was forced to keep because no
	// legal play and no face card remained on their turn. It persists
	// across turns until the player plays again or the game ends.
	StuckCard *Card `json:"stuck_card"`
}

// NewPlayer creates a player with an empty collection
func NewPlayer(id int, name string) Player {
	return Player{
		ID:        id,
		Name:      name,
		Collected: []Stack{},
	}
}

// FaceCardCount returns the number of stacks the player has collected
func (p *Player) FaceCardCount() int {
	return len(p.Collected)
}

// TotalCardCount returns the total cards across the player's collected
// stacks, face cards and match slots included
func (p *Player) TotalCardCount() int {
	count := 0
	for i := range p.Collected {
		count += p.Collected[i].CardCount()
	}
	return count
}
