package request

// CreateGame is the request body for creating a game
type CreateGame struct {
	PlayerNames []string `json:"player_names"`
}

// Play is the request body for executing a play
type Play struct {
	StackIndex int    `json:"stack_index"`
	Side       string `json:"side"`
}

// Collect is the request body for collecting a stack
type Collect struct {
	StackIndex int    `json:"stack_index"`
	Condition  string `json:"condition"`
}

// SubmitScore is the request body for submitting a high score
type SubmitScore struct {
	PlayerName    string `json:"player_name"`
	FaceCards     int    `json:"face_cards"`
	TotalCards    int    `json:"total_cards"`
	SixSevenCount int    `json:"six_seven_count"`
}
