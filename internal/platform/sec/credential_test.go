// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira-profile/internal/platform/sec"
	"github.com/taibuivan/yomira-profile/internal/profile"
	"github.com/taibuivan/yomira-profile/pkg/uuidv7"
)

// testIterations keeps PBKDF2 cheap in tests; production uses the config value.
const testIterations = 1_000

/*
TestGeneratedMaterialPassesValidators is the producer/validator contract:
everything this package mints must construct a valid profile.
*/
func TestGeneratedMaterialPassesValidators(t *testing.T) {
	token := sec.NewActivationToken()
	salt := sec.NewSalt()
	hash, err := sec.HashPassword("correct horse battery staple", salt, testIterations)
	require.NoError(t, err)

	p, err := profile.New(uuidv7.New(), &token, "tai", "tai@yomira.com", hash, nil, salt)
	require.NoError(t, err)

	assert.Equal(t, hash, p.Hash())
	assert.Equal(t, salt, p.Salt())
	require.NotNil(t, p.ActivationToken())
	assert.Equal(t, token, *p.ActivationToken())
}

/*
TestHashPassword checks digest shape, determinism, and salt sensitivity.
*/
func TestHashPassword(t *testing.T) {
	salt := sec.NewSalt()

	first, err := sec.HashPassword("secret", salt, testIterations)
	require.NoError(t, err)
	second, err := sec.HashPassword("secret", salt, testIterations)
	require.NoError(t, err)

	assert.Len(t, first, 128)
	assert.Equal(t, first, second, "same password and salt must derive the same digest")

	other, err := sec.HashPassword("secret", sec.NewSalt(), testIterations)
	require.NoError(t, err)
	assert.NotEqual(t, first, other, "a different salt must change the digest")
}

/*
TestHashPassword_BadSalt checks that a non-hex salt is a hard error, not a
silent fallback.
*/
func TestHashPassword_BadSalt(t *testing.T) {
	_, err := sec.HashPassword("secret", "not-hex", testIterations)
	assert.Error(t, err)
}

/*
TestVerifyPassword checks accept and reject paths.
*/
func TestVerifyPassword(t *testing.T) {
	salt := sec.NewSalt()
	hash, err := sec.HashPassword("secret", salt, testIterations)
	require.NoError(t, err)

	assert.True(t, sec.VerifyPassword("secret", salt, hash, testIterations))
	assert.False(t, sec.VerifyPassword("wrong", salt, hash, testIterations))
	assert.False(t, sec.VerifyPassword("secret", sec.NewSalt(), hash, testIterations))
	assert.False(t, sec.VerifyPassword("secret", "not-hex", hash, testIterations))
}

/*
TestGenerators_Unique is a sanity check that consecutive mints differ.
*/
func TestGenerators_Unique(t *testing.T) {
	assert.NotEqual(t, sec.NewActivationToken(), sec.NewActivationToken())
	assert.NotEqual(t, sec.NewSalt(), sec.NewSalt())
}
