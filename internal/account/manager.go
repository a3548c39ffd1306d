package account

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/phrazzld/fitcircle/internal/clock"
	"github.com/phrazzld/fitcircle/internal/domain"
	"github.com/phrazzld/fitcircle/internal/platform/logger"
)

// UserInfo holds optional profile changes. Nil fields are left unchanged.
type UserInfo struct {
	Email    *string
	Password *string
}

// Manager is an in-memory registry of users keyed by username.
type Manager struct {
	mu     sync.RWMutex
	users  []*domain.User
	byName map[string]*domain.User

	hasher PasswordHasher
	clock  clock.Clock
	logger *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock sets the time source for account timestamps.
func WithClock(c clock.Clock) Option {
	return func(m *Manager) {
		m.clock = clock.OrReal(c)
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger.OrDefault(l)
	}
}

// NewManager creates an empty registry that stores credentials through hasher.
func NewManager(hasher PasswordHasher, opts ...Option) *Manager {
	m := &Manager{
		users:  make([]*domain.User, 0),
		byName: make(map[string]*domain.User),
		hasher: hasher,
		clock:  clock.Real{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With("component", "account_manager")
	return m
}

// CreateUser registers a new user. Returns ErrUsernameTaken if the username
// is already registered.
func (m *Manager) CreateUser(username, password, email string) (*domain.User, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byName[username]; exists {
		m.logger.Debug("attempted to create user with existing username", "username", username)
		return nil, ErrUsernameTaken
	}

	hashed, err := m.hasher.Hash(password)
	if err != nil {
		m.logger.Error("failed to hash password", "error", err, "username", username)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(username, email, hashed, m.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	m.users = append(m.users, user)
	m.byName[username] = user

	m.logger.Info("user created", "user_id", user.ID, "username", username)
	return user, nil
}

// LoginUser returns the user whose username and password match.
func (m *Manager) LoginUser(username, password string) (*domain.User, error) {
	m.mu.RLock()
	user, ok := m.byName[username]
	m.mu.RUnlock()

	if !ok {
		m.logger.Debug("login failed, unknown username", "username", username)
		return nil, ErrInvalidCredentials
	}

	if err := m.hasher.Compare(user.HashedPassword, password); err != nil {
		m.logger.Debug("login failed, password mismatch", "username", username)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser looks up a user by username.
func (m *Manager) GetUser(username string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.byName[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateUserInfo applies info to the registered user with the given
// username. The *domain.User held by callers is updated in place, so
// references shared with communities and journals stay current. Nothing is
// changed when any part of the update is invalid.
func (m *Manager) UpdateUserInfo(username string, info UserInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.byName[username]
	if !ok {
		return ErrUserNotFound
	}

	updated := *user
	if info.Email != nil {
		updated.Email = *info.Email
	}
	if info.Password != nil {
		if *info.Password == "" {
			return ErrEmptyPassword
		}
		hashed, err := m.hasher.Hash(*info.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		updated.HashedPassword = hashed
	}
	updated.UpdatedAt = m.clock.Now().UTC()

	if err := updated.Validate(); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	*user = updated
	m.logger.Info("user updated", "user_id", user.ID, "username", username)
	return nil
}

// DeleteUser removes the user with the given username.
func (m *Manager) DeleteUser(username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.byName[username]
	if !ok {
		return ErrUserNotFound
	}

	delete(m.byName, username)
	for i, u := range m.users {
		if u == user {
			m.users = append(m.users[:i], m.users[i+1:]...)
			break
		}
	}

	m.logger.Info("user deleted", "user_id", user.ID, "username", username)
	return nil
}

// GetAllUsers returns every registered user in registration order.
func (m *Manager) GetAllUsers() []*domain.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.User, len(m.users))
	copy(out, m.users)
	return out
}

// IsNotFound reports whether err means the user does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}
