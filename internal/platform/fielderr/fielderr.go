// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package fielderr defines the centralized rejection taxonomy for profile field
validation.

Every validating mutator in this module reports failure as a [*Error] carrying a
machine-readable [Kind]. Callers branch on the kind, never on message text.

Architecture:

  - Error: A struct pairing the offending field name with a rejection Kind.
  - Kinds: A closed set of rejection categories (identity, format, length, ...).
  - Wrapping: Errors survive [fmt.Errorf] %w chains; [KindOf] and [As] walk the
    chain so the originating kind is observable unchanged at any layer.

Rejections are ordinary values, not process failures. The caller decides whether
to retry with different input or abort; this package never recovers on its own.
*/
package fielderr

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable rejection category.
type Kind string

const (
	// KindInvalidIdentity: the value does not parse as the required identity
	// type (UUID or integer).
	KindInvalidIdentity Kind = "INVALID_IDENTITY"
	// KindEmptyOrUnsafe: a required string is empty, or became empty after
	// sanitization removed unsafe characters.
	KindEmptyOrUnsafe Kind = "EMPTY_OR_UNSAFE"
	// KindInvalidFormat: the string is not composed solely of the required
	// character set (hexadecimal digits).
	KindInvalidFormat Kind = "INVALID_FORMAT"
	// KindWrongLength: the string violates an exact length bound.
	KindWrongLength Kind = "WRONG_LENGTH"
	// KindTooLong: the string exceeds a maximum length bound.
	KindTooLong Kind = "TOO_LONG"
	// KindInvalidEmail: the string fails email syntax validation.
	KindInvalidEmail Kind = "INVALID_EMAIL"
)

// Error is the canonical field rejection value.
//
// # Security
//
// Message never echoes the rejected value. Credential material (hashes, salts,
// tokens) passes through these validators, so rejection text must stay safe to
// log verbatim.
type Error struct {
	// Kind is the machine-readable rejection category.
	Kind Kind `json:"kind"`
	// Field is the entity field name that was rejected (e.g. "profileEmail").
	Field string `json:"field"`
	// Message is a human-readable description safe to log and return.
	Message string `json:"message"`
	// Cause is the underlying parser error, if any. Logging only.
	Cause error `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *Error) Unwrap() error { return e.Cause }

// Is matches another [*Error] by kind, and by field when the target names one.
//
// This lets tests and callers write errors.Is(err, &fielderr.Error{Kind: ...})
// without constructing the full rejection value.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != "" && t.Kind != e.Kind {
		return false
	}
	if t.Field != "" && t.Field != e.Field {
		return false
	}
	return t.Kind != "" || t.Field != ""
}

// # Constructors

// InvalidIdentity creates a rejection for a value that does not parse as the
// required identity type. The parse error is retained as the cause.
func InvalidIdentity(field string, cause error) *Error {
	return &Error{
		Kind:    KindInvalidIdentity,
		Field:   field,
		Message: "must be a valid identity value",
		Cause:   cause,
	}
}

// EmptyOrUnsafe creates a rejection for a required string that is empty after
// sanitization.
func EmptyOrUnsafe(field string) *Error {
	return &Error{
		Kind:    KindEmptyOrUnsafe,
		Field:   field,
		Message: "must not be empty or consist of unsafe characters",
	}
}

// InvalidFormat creates a rejection for a string containing characters outside
// the hexadecimal digit set.
func InvalidFormat(field string) *Error {
	return &Error{
		Kind:    KindInvalidFormat,
		Field:   field,
		Message: "must contain only hexadecimal digits",
	}
}

// WrongLength creates a rejection for a string violating an exact length bound.
func WrongLength(field string, want, got int) *Error {
	return &Error{
		Kind:    KindWrongLength,
		Field:   field,
		Message: fmt.Sprintf("must be exactly %d characters, got %d", want, got),
	}
}

// TooLong creates a rejection for a string exceeding a maximum length bound.
func TooLong(field string, max, got int) *Error {
	return &Error{
		Kind:    KindTooLong,
		Field:   field,
		Message: fmt.Sprintf("must be at most %d characters, got %d", max, got),
	}
}

// InvalidEmail creates a rejection for a string failing email syntax rules.
// The parser error is retained as the cause.
func InvalidEmail(field string, cause error) *Error {
	return &Error{
		Kind:    KindInvalidEmail,
		Field:   field,
		Message: "must be a valid email address",
		Cause:   cause,
	}
}

// # Helpers

// As extracts the [*Error] from err's chain. It returns nil if not found.
func As(err error) *Error {
	var fe *Error
	if errors.As(err, &fe) {
		return fe
	}
	return nil
}

// KindOf returns the rejection kind of err, walking wrap chains.
// It returns the empty Kind when err carries no field rejection.
func KindOf(err error) Kind {
	if fe := As(err); fe != nil {
		return fe.Kind
	}
	return ""
}
