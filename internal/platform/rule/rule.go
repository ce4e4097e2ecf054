// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package rule provides fail-fast field validation rules that report
// [fielderr.Error] rejections.
//
// # Architecture
//
// Each rule checks one constraint and returns the first violation immediately.
// Entity setters compose rules in a fixed order; the first rule to fail
// determines the rejection kind the caller observes. Rules are total and
// deterministic: same input, same outcome, no I/O.
package rule

import (
	"net/mail"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/taibuivan/yomira-profile/internal/platform/fielderr"
)

// hexDigits matches strings composed only of lowercase hexadecimal digits.
// The empty string matches vacuously; pair with an explicit Required or
// ExactLen rule where emptiness must be rejected.
var hexDigits = regexp.MustCompile(`^[0-9a-f]*$`)

// Required fails with EMPTY_OR_UNSAFE if the value is empty.
// The value is expected to be sanitized already.
func Required(field, value string) error {
	if value == "" {
		return fielderr.EmptyOrUnsafe(field)
	}
	return nil
}

// MaxLen fails with TOO_LONG if the Unicode character count exceeds max.
func MaxLen(field, value string, max int) error {
	if n := utf8.RuneCountInString(value); n > max {
		return fielderr.TooLong(field, max, n)
	}
	return nil
}

// ExactLen fails with WRONG_LENGTH if the Unicode character count is not
// exactly want.
func ExactLen(field, value string, want int) error {
	if n := utf8.RuneCountInString(value); n != want {
		return fielderr.WrongLength(field, want, n)
	}
	return nil
}

// HexDigits fails with INVALID_FORMAT if the value contains any character
// outside [0-9a-f]. Callers lowercase the value first.
func HexDigits(field, value string) error {
	if !hexDigits.MatchString(value) {
		return fielderr.InvalidFormat(field)
	}
	return nil
}

// Email fails with INVALID_EMAIL if the value is not a valid RFC 5322 address.
func Email(field, value string) error {
	if _, err := mail.ParseAddress(value); err != nil {
		return fielderr.InvalidEmail(field, err)
	}
	return nil
}

// UUID parses the value as a UUID, failing with INVALID_IDENTITY.
//
// All textual forms the uuid library accepts are valid input (canonical,
// braced, URN, raw hex); the returned value renders canonically.
func UUID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fielderr.InvalidIdentity(field, err)
	}
	return id, nil
}

// Integer parses the value as a base-10 integer, failing with
// INVALID_IDENTITY.
func Integer(field, value string) (int, error) {
	n, err := strconv.ParseInt(value, 10, 0)
	if err != nil {
		return 0, fielderr.InvalidIdentity(field, err)
	}
	return int(n), nil
}
