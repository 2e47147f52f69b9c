// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Setayesh Nri

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes the given plaintext password with bcrypt using the
// default cost. The resulting hash embeds its own salt and is safe to store
// directly in the database.
//
// Returns an error if the password is empty or exceeds bcrypt's 72-byte limit.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword checks the given plaintext password against a stored bcrypt
// hash. Returns true only when the password matches.
func ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
