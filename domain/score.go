package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScoreRecord is one finished level, as stored for the score history.
type ScoreRecord struct {
	ID             uuid.UUID `bson:"_id"`
	PlayerID       uuid.UUID `bson:"playerId"`
	MazeSize       int       `bson:"mazeSize"`
	WallCount      int       `bson:"wallCount"`
	Mode           string    `bson:"mode"`
	Attempts       int       `bson:"attempts"`
	ElapsedSeconds int       `bson:"elapsedSeconds"`
	Score          int       `bson:"score"`
	RecordedAt     time.Time `bson:"recordedAt"`
}
