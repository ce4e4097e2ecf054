// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package rule_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira-profile/internal/platform/fielderr"
	"github.com/taibuivan/yomira-profile/internal/platform/rule"
)

/*
TestRequired checks the emptiness rule. Sanitization happens upstream, so only
the literal empty string is rejected here.
*/
func TestRequired(t *testing.T) {
	assert.NoError(t, rule.Required("f", "x"))

	err := rule.Required("f", "")
	require.Error(t, err)
	assert.Equal(t, fielderr.KindEmptyOrUnsafe, fielderr.KindOf(err))
}

/*
TestMaxLen checks the maximum-length rule counts Unicode characters, not bytes.
*/
func TestMaxLen(t *testing.T) {
	tests := []struct {
		name  string
		value string
		max   int
		ok    bool
	}{
		{"under", "abc", 4, true},
		{"at_bound", "abcd", 4, true},
		{"over", "abcde", 4, false},
		{"multibyte_at_bound", "éééé", 4, true},
		{"multibyte_over", "ééééé", 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.MaxLen("f", tt.value, tt.max)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, fielderr.KindTooLong, fielderr.KindOf(err))
			}
		})
	}
}

/*
TestExactLen checks the exact-length rule, including the empty string.
*/
func TestExactLen(t *testing.T) {
	assert.NoError(t, rule.ExactLen("f", "abcd", 4))
	assert.Equal(t, fielderr.KindWrongLength, fielderr.KindOf(rule.ExactLen("f", "abc", 4)))
	assert.Equal(t, fielderr.KindWrongLength, fielderr.KindOf(rule.ExactLen("f", "abcde", 4)))
	assert.Equal(t, fielderr.KindWrongLength, fielderr.KindOf(rule.ExactLen("f", "", 4)))
}

/*
TestHexDigits checks the hex charset rule, including the vacuous pass of the
empty string that the salt validator relies on.
*/
func TestHexDigits(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"lower_hex", "0123456789abcdef", true},
		{"empty_vacuous", "", true},
		{"uppercase", "ABCDEF", false}, // callers lowercase first
		{"non_hex_letter", "abcg", false},
		{"space", "ab cd", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.HexDigits("f", tt.value)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, fielderr.KindInvalidFormat, fielderr.KindOf(err))
			}
		})
	}
}

/*
TestEmail checks the RFC 5322 syntax rule.
*/
func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"plain", "user@example.com", true},
		{"subdomain", "user@mail.example.com", true},
		{"plus_tag", "user+tag@example.com", true},
		{"no_at", "userexample.com", false},
		{"missing_domain", "user@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.Email("f", tt.value)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, fielderr.KindInvalidEmail, fielderr.KindOf(err))
				// The parser error rides along as the cause.
				assert.NotNil(t, fielderr.As(err).Cause)
			}
		})
	}
}

/*
TestUUID checks parse-or-fail across textual forms and canonical rendering.
*/
func TestUUID(t *testing.T) {
	const canonical = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"canonical", canonical, true},
		{"uppercase", strings.ToUpper(canonical), true},
		{"braced", "{" + canonical + "}", true},
		{"urn", "urn:uuid:" + canonical, true},
		{"empty", "", false},
		{"garbage", "zzz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := rule.UUID("f", tt.value)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, canonical, id.String())
			} else {
				assert.Equal(t, fielderr.KindInvalidIdentity, fielderr.KindOf(err))
			}
		})
	}
}

/*
TestInteger checks the strict base-10 parse.
*/
func TestInteger(t *testing.T) {
	n, err := rule.Integer("f", "-12")
	require.NoError(t, err)
	assert.Equal(t, -12, n)

	for _, bad := range []string{"", "1.5", "0x10", "ten", "12 "} {
		_, err := rule.Integer("f", bad)
		assert.Equal(t, fielderr.KindInvalidIdentity, fielderr.KindOf(err), "input %q", bad)
	}
}
