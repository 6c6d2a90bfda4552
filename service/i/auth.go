package i

import (
	dmn "github.com/keymaze/keymaze-api/domain"
)

// Authenticator handles player registration and sign-in.
type Authenticator interface {
	Register(username, password string) error
	SignIn(username, password string) (*dmn.User, string, error)
}
