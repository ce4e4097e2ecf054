// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package sec generates profile credential material in the exact formats the
profile validators accept.

It is the producing counterpart of the validation core: activation tokens,
salts, and password digests minted here always pass the corresponding setter
on a profile entity.

Formats:

  - Activation token: 16 random bytes, lowercase hex (32 characters).
  - Salt: 32 random bytes, lowercase hex (64 characters).
  - Password digest: PBKDF2-SHA-512, 64-byte key, lowercase hex (128 characters).

The package never stores or logs plain-text passwords.
*/
package sec

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// tokenBytes is the entropy of an activation token (32 hex characters).
	tokenBytes = 16
	// saltBytes is the entropy of a password salt (64 hex characters).
	saltBytes = 32
	// digestBytes is the PBKDF2 key length (128 hex characters).
	digestBytes = 64

	// DefaultIterations is the PBKDF2 work factor used when the caller does
	// not configure one. Matches the 2023 OWASP recommendation for SHA-512.
	DefaultIterations = 210_000
)

// NewActivationToken mints a random 32-character lowercase hex token.
func NewActivationToken() string {
	return randomHex(tokenBytes)
}

// NewSalt mints a random 64-character lowercase hex salt.
func NewSalt() string {
	return randomHex(saltBytes)
}

// randomHex returns n random bytes hex-encoded.
//
// It panics only if the OS random source is unavailable (extremely rare).
// OS entropy failure is an unrecoverable system-level error.
func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("sec: failed to read random bytes: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// HashPassword derives a 128-character lowercase hex digest from a plain-text
// password and a hex-encoded salt.
//
// # Parameters
//   - password: The plain-text password. Never retained.
//   - saltHex: A hex-encoded salt, typically from [NewSalt].
//   - iterations: The PBKDF2 work factor. Values <= 0 fall back to
//     [DefaultIterations].
func HashPassword(password, saltHex string, iterations int) (string, error) {
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return "", fmt.Errorf("sec: salt is not hex-encoded: %w", err)
	}
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, digestBytes, sha512.New)
	return hex.EncodeToString(key), nil
}

// VerifyPassword reports whether password derives to hashHex under saltHex.
// The comparison is constant-time.
func VerifyPassword(password, saltHex, hashHex string, iterations int) bool {
	computed, err := HashPassword(password, saltHex, iterations)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hashHex)) == 1
}
