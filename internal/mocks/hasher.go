package mocks

import (
	"errors"
	"strings"
)

// MockHasher implements account.PasswordHasher for testing. By default it
// "hashes" by prefixing the password with "hashed:".
type MockHasher struct {
	// HashFn allows for custom hashing logic in tests
	HashFn func(password string) (string, error)

	// CompareFn allows for custom comparison logic in tests
	CompareFn func(hashedPassword, password string) error

	// HashCallCount tracks how many times Hash was called
	HashCallCount int

	// CompareCallCount tracks how many times Compare was called
	CompareCallCount int
}

// Hash implements the account.PasswordHasher interface
func (m *MockHasher) Hash(password string) (string, error) {
	m.HashCallCount++
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return "hashed:" + password, nil
}

// Compare implements the account.PasswordHasher interface
func (m *MockHasher) Compare(hashedPassword, password string) error {
	m.CompareCallCount++
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if strings.TrimPrefix(hashedPassword, "hashed:") == password {
		return nil
	}
	return errors.New("password mismatch")
}
