// Package session keeps the local user registry and the single signed-in
// session of this process. The ledger only sees it as an AuthSignal.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"finai/internal/storage"
)

const (
	UsersKey = "finai-users"
	AuthKey  = "finai-auth"

	minPasswordLength = 6
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrWeakPassword       = errors.New("password too short")
	ErrEmptyName          = errors.New("name is required")
)

type (
	User struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	storedUser struct {
		User
		PasswordHash []byte `json:"passwordHash"`
	}

	authState struct {
		IsSignedIn bool  `json:"isSignedIn"`
		User       *User `json:"user"`
	}
)

type Store struct {
	mu    sync.RWMutex
	kv    storage.Store
	users []storedUser
	auth  authState
	cost  int
}

// Option configures a Store.
type Option func(*Store)

// WithBcryptCost overrides bcrypt.DefaultCost; tests use bcrypt.MinCost.
func WithBcryptCost(cost int) Option {
	return func(s *Store) { s.cost = cost }
}

// Open loads the user registry and the persisted session from kv.
func Open(ctx context.Context, kv storage.Store, opts ...Option) (*Store, error) {
	s := &Store{kv: kv, cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(ctx, UsersKey, &s.users); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if err := s.load(ctx, AuthKey, &s.auth); err != nil {
		return nil, fmt.Errorf("load auth state: %w", err)
	}
	// A session pointing at an unknown user is dropped.
	if s.auth.User != nil && s.findByEmail(s.auth.User.Email) < 0 {
		s.auth = authState{}
	}
	return s, nil
}

func (s *Store) load(ctx context.Context, key string, into any) error {
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, into)
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.kv.Put(ctx, key, raw)
}

func (s *Store) IsSignedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auth.IsSignedIn
}

// CurrentUser returns the signed-in user, if any.
func (s *Store) CurrentUser() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.auth.IsSignedIn || s.auth.User == nil {
		return User{}, false
	}
	return *s.auth.User, true
}

// SignUp registers a user and signs them in.
func (s *Store) SignUp(ctx context.Context, name, email, password string) (User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" {
		return User{}, ErrEmptyName
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return User{}, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return User{}, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findByEmail(email) >= 0 {
		return User{}, ErrEmailTaken
	}

	u := User{ID: "user-" + uuid.NewString(), Name: name, Email: email}
	users := append(append([]storedUser(nil), s.users...), storedUser{User: u, PasswordHash: hash})
	if err := s.save(ctx, UsersKey, users); err != nil {
		return User{}, fmt.Errorf("save users: %w", err)
	}
	s.users = users

	s.setAuth(ctx, authState{IsSignedIn: true, User: &u})
	slog.InfoContext(ctx, "User registered", "user_id", u.ID)
	return u, nil
}

func (s *Store) SignIn(ctx context.Context, email, password string) (User, error) {
	email = normalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findByEmail(email)
	if i < 0 {
		return User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.users[i].PasswordHash, []byte(password)); err != nil {
		slog.WarnContext(ctx, "Invalid password attempt", "email", email)
		return User{}, ErrInvalidCredentials
	}

	u := s.users[i].User
	s.setAuth(ctx, authState{IsSignedIn: true, User: &u})
	slog.InfoContext(ctx, "User signed in", "user_id", u.ID)
	return u, nil
}

// SignOut clears the session and removes the persisted auth record.
func (s *Store) SignOut(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = authState{}
	if err := s.kv.Delete(ctx, AuthKey); err != nil {
		slog.WarnContext(ctx, "Failed to clear auth state", "error", err)
	}
}

// setAuth updates the session; persisting it is best-effort. Callers hold s.mu.
func (s *Store) setAuth(ctx context.Context, a authState) {
	s.auth = a
	if err := s.save(ctx, AuthKey, a); err != nil {
		slog.WarnContext(ctx, "Failed to persist auth state", "error", err)
	}
}

func (s *Store) findByEmail(email string) int {
	for i, u := range s.users {
		if u.Email == email {
			return i
		}
	}
	return -1
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
