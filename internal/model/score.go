package model

import "time"

// GameVersion is recorded on persisted high score entries so old
// entries can be distinguished if scoring rules change
const GameVersion = "1.0.0"

// PlayerScore is one player's final standing
type PlayerScore struct {
	PlayerID      int    `json:"player_id"`
	PlayerName    string `json:"player_name"`
	FaceCards     int    `json:"face_cards"`
	TotalCards    int    `json:"total_cards"`
	SixSevenCount int    `json:"six_seven_count"`

	// TurnOrder is the distance since this player's last turn; smaller
	// means more recently active. Final tiebreak only.
	TurnOrder int `json:"turn_order"`
}

// HighScoreEntry is a persisted high score record, keyed by the
// player-supplied display name
type HighScoreEntry struct {
	PlayerName    string    `json:"player_name"`
	FaceCards     int       `json:"face_cards"`
	TotalCards    int       `json:"total_cards"`
	SixSevenCount int       `json:"six_seven_count"`
	Timestamp     time.Time `json:"timestamp"`
	GameVersion   string    `json:"game_version"`
}

// MaxHighScores is the number of entries the high score table retains;
// entries ranked below this are evicted
const MaxHighScores = 20
