package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	dmn "github.com/keymaze/keymaze-api/domain"
	"github.com/stretchr/testify/assert"
)

type stubUserRepo struct {
	users map[string]*dmn.User
}

func (r *stubUserRepo) Save(user *dmn.User) error {
	if r.users == nil {
		r.users = make(map[string]*dmn.User)
	}
	r.users[user.Username] = user
	return nil
}

func (r *stubUserRepo) ByID(id uuid.UUID) (*dmn.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("user not found")
}

func (r *stubUserRepo) ByUsername(username string) (*dmn.User, error) {
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return nil, errors.New("user not found")
}

type stubTokenizer struct{}

func (stubTokenizer) Generate(map[string]interface{}, time.Duration) (string, error) {
	return "token", nil
}

func (stubTokenizer) Decode(string) (map[string]interface{}, error) {
	return nil, nil
}

func TestAuth(t *testing.T) {
	t.Run("requires repo and tokenizer", func(t *testing.T) {
		_, err := NewAuthService(nil, nil)
		assert.Error(t, err)
	})

	t.Run("register rejects weak passwords", func(t *testing.T) {
		auth, err := NewAuthService(&stubUserRepo{}, stubTokenizer{})
		assert.NoError(t, err)

		assert.Error(t, auth.Register("maze_runner", "password"))
	})

	t.Run("sign in hides whether the username exists", func(t *testing.T) {
		auth, err := NewAuthService(&stubUserRepo{}, stubTokenizer{})
		assert.NoError(t, err)

		_, _, err = auth.SignIn("nobody", "whatever")
		assert.EqualError(t, err, "invalid username or password")
	})

	t.Run("register then sign in round trip", func(t *testing.T) {
		repo := &stubUserRepo{}
		auth, err := NewAuthService(repo, stubTokenizer{})
		assert.NoError(t, err)

		password := "tr0ub4dor&3corridor"
		assert.NoError(t, auth.Register("maze_runner", password))

		user, token, err := auth.SignIn("maze_runner", password)
		assert.NoError(t, err)
		assert.Equal(t, "maze_runner", user.Username)
		assert.Equal(t, "token", token)

		_, _, err = auth.SignIn("maze_runner", "wrong password")
		assert.EqualError(t, err, "invalid username or password")
	})
}
