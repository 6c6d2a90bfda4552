package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewUser(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		user, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "maze_runner",
			PlainPassword: "tr0ub4dor&3corridor",
		})
		assert.NoError(t, err)
		assert.Equal(t, "maze_runner", user.Username)
		assert.Equal(t, 0, user.BestScore)
		assert.True(t, user.VerifyPassword("tr0ub4dor&3corridor"))
		assert.False(t, user.VerifyPassword("wrong"))
	})

	t.Run("short username", func(t *testing.T) {
		_, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "ab",
			PlainPassword: "tr0ub4dor&3corridor",
		})
		assert.Error(t, err)
	})

	t.Run("username with invalid characters", func(t *testing.T) {
		_, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "maze runner!",
			PlainPassword: "tr0ub4dor&3corridor",
		})
		assert.Error(t, err)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "maze_runner",
			PlainPassword: "password",
		})
		assert.Error(t, err)
	})
}
