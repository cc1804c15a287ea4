package redis

import (
	"fmt"

	"github.com/Cireo/sixen/internal/model"
)

const keyPrefix = "sixen"

func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

func highScoresKey() string {
	return keyPrefix + ":highscores"
}
