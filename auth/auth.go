// Copyright (c) 2025 StyleMe.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// HashPassword creates a bcrypt hash of the given password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a stored bcrypt hash against a candidate
// password. Returns ErrInvalidCredentials on mismatch so callers never
// branch on bcrypt internals.
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// GenerateImageName creates a unique filename for an uploaded image.
// Timestamp plus a random UUID suffix makes collisions practically
// impossible; the name never derives from user input, so it cannot
// carry path traversal.
func GenerateImageName() string {
	return fmt.Sprintf("%d-%s.jpg", time.Now().UnixMilli(), uuid.NewString())
}
