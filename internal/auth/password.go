package auth

import (
	"errors"
	"fmt"

	apperrors "control-room-backend/internal/errors"
	"control-room-backend/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes and verifies operator secrets with bcrypt
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher producing hashes at the given cost
func NewPasswordHasher(cost int) *PasswordHasher {
	return &PasswordHasher{cost: cost}
}

// Hash returns the bcrypt hash of secret
func (h *PasswordHasher) Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether secret matches storedHash. A stored hash bcrypt cannot
// parse is a data problem, not a wrong password: it is logged as a
// configuration error and the check fails closed.
func (h *PasswordHasher) Verify(secret, storedHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(secret))
	if err == nil {
		return true
	}
	if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		logger.New().WithComponent("credentials").
			WithField("cause", err.Error()).
			Error(apperrors.ErrMalformedPasswordHash.Error())
	}
	return false
}
