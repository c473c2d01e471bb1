// Package auth holds the admin gate: a single shared password whose
// successful entry sets a client-local trust flag with no expiry. This is
// explicitly not a security boundary; the flag never reaches the server.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const authKey = "isAuthenticated"

var (
	ErrInvalidPassword  = errors.New("incorrect password")
	ErrNotAuthenticated = errors.New("not authenticated")
)

type State struct {
	store Store
	hash  []byte
}

// NewState hashes the configured shared password once so later comparisons
// never touch the plaintext.
func NewState(store Store, password string) (*State, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &State{store: store, hash: hash}, nil
}

// Login compares the entered password and persists the trust flag on match.
func (s *State) Login(password string) error {
	if bcrypt.CompareHashAndPassword(s.hash, []byte(password)) != nil {
		return ErrInvalidPassword
	}
	return s.store.Set(authKey, "true")
}

// Logout clears the flag.
func (s *State) Logout() error {
	return s.store.Remove(authKey)
}

func (s *State) Authenticated() bool {
	return s.store.Get(authKey) == "true"
}

// Require is the guarded-route abstraction: the wrapped action only runs
// while the trust flag is set.
func (s *State) Require(fn func() error) error {
	if !s.Authenticated() {
		return ErrNotAuthenticated
	}
	return fn()
}
