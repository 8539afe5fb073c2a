package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"

	"thegriller/internal/remote"
)

// Authenticator is the slice of the remote client the store uses.
type Authenticator interface {
	Login(ctx context.Context, email, password, role string) (*remote.AuthResponse, error)
	Register(ctx context.Context, name, email, password, phone string) (*remote.AuthResponse, error)
}

// Store holds the current session: user and bearer token in memory,
// mirrored to durable storage so a restart restores the session
// without re-authenticating.
type Store struct {
	auth    Authenticator
	storage Storage
	log     *logrus.Logger

	mu    sync.RWMutex
	user  *User
	token string
}

func NewStore(auth Authenticator, storage Storage, log *logrus.Logger) *Store {
	return &Store{auth: auth, storage: storage, log: log}
}

// Current returns the signed-in user, or nil.
func (s *Store) Current() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the bearer token, or "" when signed out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Login authenticates against the remote service. On failure the
// stored session, in memory and on disk, is left exactly as it was.
func (s *Store) Login(ctx context.Context, email, password, role string) (*User, error) {
	resp, err := s.auth.Login(ctx, email, password, role)
	if err != nil {
		return nil, err
	}
	user := userFromRemote(resp.User)
	s.establish(user, resp.Token)
	return &user, nil
}

// Register signs the user up and, like the original flow, establishes
// a session from the response (auto-login after signup).
func (s *Store) Register(ctx context.Context, name, email, password, phone string) (*User, error) {
	resp, err := s.auth.Register(ctx, name, email, password, phone)
	if err != nil {
		return nil, err
	}
	user := userFromRemote(resp.User)
	s.establish(user, resp.Token)
	return &user, nil
}

// establish swaps the session and mirrors it to storage under the one
// lock, so overlapping logins and logouts cannot leave storage holding
// a different session than memory.
func (s *Store) establish(user User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	s.token = token

	if err := s.storage.Set(keyToken, token); err != nil {
		s.log.WithError(err).Warn("failed to persist auth token")
	}
	raw, _ := json.Marshal(user)
	if err := s.storage.Set(keyUser, string(raw)); err != nil {
		s.log.WithError(err).Warn("failed to persist session user")
	}
}

// Logout clears the session unconditionally.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""

	if err := s.storage.Delete(keyToken); err != nil {
		s.log.WithError(err).Warn("failed to clear stored token")
	}
	if err := s.storage.Delete(keyUser); err != nil {
		s.log.WithError(err).Warn("failed to clear stored user")
	}
}

// Restore rebuilds the session from durable storage. No network call
// is made; a token or user that was never stored simply stays absent.
func (s *Store) Restore() error {
	token, err := s.storage.Get(keyToken)
	if err != nil {
		return err
	}
	rawUser, err := s.storage.Get(keyUser)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	if rawUser != "" {
		var u User
		if err := json.Unmarshal([]byte(rawUser), &u); err == nil {
			s.user = &u
		}
	}
	return nil
}
