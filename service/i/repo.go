package i

import (
	"github.com/google/uuid"
	dmn "github.com/keymaze/keymaze-api/domain"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *dmn.User) error

	// ByID retrieves a user by their unique ID.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByUsername(username string) (*dmn.User, error)
}

// ScoreRepo defines the interface for score history persistence.
type ScoreRepo interface {
	// Save appends a finished level to the player's score history.
	Save(record *dmn.ScoreRecord) error

	// ByPlayer retrieves a player's score history, most recent first,
	// capped at limit records.
	ByPlayer(playerID uuid.UUID, limit int) ([]dmn.ScoreRecord, error)
}
