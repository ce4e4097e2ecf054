// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package profile implements the validated profile identity core of the Yomira
platform.

It defines the Profile entity — an identity record whose every field must
satisfy format and length invariants before an instance can exist — and the
AuthorRef lightweight reference.

# Architecture

This layer is the "Truth" of the system. A Profile cannot be observed in an
invalid state:

  - Construction is all-or-nothing. The constructor runs every field setter in
    a fixed order and aborts on the first rejection; no instance is produced.
  - Mutation is atomic. Every setter normalizes, validates, then commits; a
    rejected mutation leaves the previously committed value untouched.
  - Rejections carry a [fielderr.Kind] that survives wrapping unchanged.

# Concurrency

Instances are exclusively owned by their caller during mutation. There is no
internal locking; hosts that share an instance across goroutines must
synchronize externally.
*/
package profile

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/taibuivan/yomira-profile/internal/platform/rule"
	"github.com/taibuivan/yomira-profile/internal/platform/sanitize"
)

// # Field Identifiers

// Field names as they appear in transport payloads and rejection values.
const (
	FieldID              = "profileId"
	FieldActivationToken = "profileActivationToken"
	FieldAtHandle        = "profileAtHandle"
	FieldEmail           = "profileEmail"
	FieldHash            = "profileHash"
	FieldPhone           = "profilePhone"
	FieldSalt            = "profileSalt"
)

// # Field Bounds

const (
	// MaxAtHandleLen bounds the sanitized at-handle.
	MaxAtHandleLen = 32
	// MaxEmailLen bounds the trimmed email address.
	MaxEmailLen = 128
	// MaxPhoneLen bounds the sanitized phone number.
	MaxPhoneLen = 32
	// ActivationTokenLen is the exact hex length of an activation token.
	ActivationTokenLen = 32
	// HashLen is the exact hex length of a password digest.
	HashLen = 128
	// SaltLen is the exact hex length of a password salt.
	SaltLen = 64
)

// # Entity

// Profile is a strictly validated profile identity record.
//
// All fields are private; state changes go through the validating setters.
// The zero value is not a valid Profile — use [New].
type Profile struct {
	id              uuid.UUID
	activationToken *string
	atHandle        string
	email           string
	hash            string
	phone           *string
	salt            string
}

/*
New constructs a fully validated Profile or nothing at all.

The seven setters run in a fixed order: id, activation token, at-handle,
email, hash, phone, salt. The first rejection aborts construction; its
[fielderr.Kind] is preserved through the returned wrap and observable via
errors.Is or fielderr.KindOf.

Parameters:
  - id: Raw UUID string (any textual form the uuid library accepts).
  - activationToken: Optional raw hex token; nil means no pending activation.
  - atHandle: Raw handle, sanitized before validation.
  - email: Raw email address.
  - hash: Raw hex password digest.
  - phone: Optional raw phone number; nil means not provided.
  - salt: Raw hex password salt.

Returns:
  - *Profile: The constructed entity, every invariant holding.
  - error: The first setter rejection, wrapped.
*/
func New(id string, activationToken *string, atHandle, email, hash string, phone *string, salt string) (*Profile, error) {
	p := &Profile{}

	if err := p.SetID(id); err != nil {
		return nil, fmt.Errorf("profile: new: %w", err)
	}
	if err := p.SetActivationToken(activationToken); err != nil {
		return nil, fmt.Errorf("profile: new: %w", err)
	}
	if err := p.SetAtHandle(atHandle); err != nil {
		return nil, fmt.Errorf("profile: new: %w", err)
	}
	if err := p.SetEmail(email); err != nil {
		return nil, fmt.Errorf("profile: new: %w", err)
	}
	if err := p.SetHash(hash); err != nil {
		return nil, fmt.Errorf("profile: new: %w", err)
	}
	if err := p.SetPhone(phone); err != nil {
		return nil, fmt.Errorf("profile: new: %w", err)
	}
	if err := p.SetSalt(salt); err != nil {
		return nil, fmt.Errorf("profile: new: %w", err)
	}

	return p, nil
}

// # Identity

// SetID parses and commits the profile's UUID identity.
// Rejects with INVALID_IDENTITY when the value does not parse.
func (p *Profile) SetID(raw string) error {
	id, err := rule.UUID(FieldID, sanitize.Trim(raw))
	if err != nil {
		return err
	}

	p.id = id
	return nil
}

// SetUUID commits an already-typed UUID value. A typed UUID is structurally
// valid by construction, so this form cannot fail.
func (p *Profile) SetUUID(id uuid.UUID) {
	p.id = id
}

// ID returns the profile's UUID identity.
func (p *Profile) ID() uuid.UUID { return p.id }

// # Activation Token

// SetActivationToken validates and commits the activation token.
//
// nil is valid and clears the token (account already activated). Otherwise
// the value is trimmed and lowercased, then must be all hex digits
// (INVALID_FORMAT) of exactly 32 characters (WRONG_LENGTH).
func (p *Profile) SetActivationToken(raw *string) error {
	if raw == nil {
		p.activationToken = nil
		return nil
	}

	token := strings.ToLower(sanitize.Trim(*raw))
	if err := rule.HexDigits(FieldActivationToken, token); err != nil {
		return err
	}
	if err := rule.ExactLen(FieldActivationToken, token, ActivationTokenLen); err != nil {
		return err
	}

	p.activationToken = &token
	return nil
}

// ActivationToken returns the current token, or nil when none is pending.
func (p *Profile) ActivationToken() *string {
	if p.activationToken == nil {
		return nil
	}
	token := *p.activationToken
	return &token
}

// # At-Handle

// SetAtHandle sanitizes, validates, and commits the handle.
// Rejects with EMPTY_OR_UNSAFE when nothing survives sanitization, and
// TOO_LONG past 32 characters.
func (p *Profile) SetAtHandle(raw string) error {
	handle := sanitize.Clean(raw)
	if err := rule.Required(FieldAtHandle, handle); err != nil {
		return err
	}
	if err := rule.MaxLen(FieldAtHandle, handle, MaxAtHandleLen); err != nil {
		return err
	}

	p.atHandle = handle
	return nil
}

// AtHandle returns the sanitized handle.
func (p *Profile) AtHandle() string { return p.atHandle }

// # Email

// SetEmail trims, validates, and commits the email address.
// Rejects with INVALID_EMAIL on syntax failure (which also covers emptiness)
// and TOO_LONG past 128 characters.
func (p *Profile) SetEmail(raw string) error {
	email := sanitize.Trim(raw)
	if err := rule.Email(FieldEmail, email); err != nil {
		return err
	}
	if err := rule.MaxLen(FieldEmail, email, MaxEmailLen); err != nil {
		return err
	}

	p.email = email
	return nil
}

// Email returns the trimmed email address.
func (p *Profile) Email() string { return p.email }

// # Password Digest

// SetHash validates and commits the password digest.
//
// The value is trimmed and lowercased, then must be non-empty
// (EMPTY_OR_UNSAFE), all hex digits (INVALID_FORMAT), and exactly 128
// characters (WRONG_LENGTH).
func (p *Profile) SetHash(raw string) error {
	hash := strings.ToLower(sanitize.Trim(raw))
	if err := rule.Required(FieldHash, hash); err != nil {
		return err
	}
	if err := rule.HexDigits(FieldHash, hash); err != nil {
		return err
	}
	if err := rule.ExactLen(FieldHash, hash, HashLen); err != nil {
		return err
	}

	p.hash = hash
	return nil
}

// Hash returns the password digest. Never serialized for transport.
func (p *Profile) Hash() string { return p.hash }

// # Phone

// SetPhone sanitizes, validates, and commits the phone number.
// nil is always accepted and clears the field. Otherwise rejects with
// EMPTY_OR_UNSAFE when nothing survives sanitization, and TOO_LONG past 32
// characters.
func (p *Profile) SetPhone(raw *string) error {
	if raw == nil {
		p.phone = nil
		return nil
	}

	phone := sanitize.Clean(*raw)
	if err := rule.Required(FieldPhone, phone); err != nil {
		return err
	}
	if err := rule.MaxLen(FieldPhone, phone, MaxPhoneLen); err != nil {
		return err
	}

	p.phone = &phone
	return nil
}

// Phone returns the current phone number, or nil when not provided.
func (p *Profile) Phone() *string {
	if p.phone == nil {
		return nil
	}
	phone := *p.phone
	return &phone
}

// # Password Salt

// SetSalt validates and commits the password salt.
//
// The value is trimmed and lowercased, then must be all hex digits
// (INVALID_FORMAT) and exactly 64 characters (WRONG_LENGTH). The hex rule
// passes the empty string vacuously, so an empty salt is rejected by the
// length rule as WRONG_LENGTH.
func (p *Profile) SetSalt(raw string) error {
	salt := strings.ToLower(sanitize.Trim(raw))
	if err := rule.HexDigits(FieldSalt, salt); err != nil {
		return err
	}
	if err := rule.ExactLen(FieldSalt, salt, SaltLen); err != nil {
		return err
	}

	p.salt = salt
	return nil
}

// Salt returns the password salt. Never serialized for transport.
func (p *Profile) Salt() string { return p.salt }

// # Transport

// Transport returns the profile as a flat field map safe for transport and
// logging.
//
// # Guarantees
//
//   - Deterministic key set: profileId, profileActivationToken,
//     profileAtHandle, profileEmail, profilePhone — always all five.
//   - No secret material: profileHash and profileSalt are never present.
//   - profileId renders in canonical string form.
//   - Unset activation token and phone render as nil, not as absent keys.
func (p *Profile) Transport() map[string]any {
	out := map[string]any{
		FieldID:              p.id.String(),
		FieldActivationToken: nil,
		FieldAtHandle:        p.atHandle,
		FieldEmail:           p.email,
		FieldPhone:           nil,
	}
	if p.activationToken != nil {
		out[FieldActivationToken] = *p.activationToken
	}
	if p.phone != nil {
		out[FieldPhone] = *p.phone
	}
	return out
}

// MarshalJSON implements [json.Marshaler] over the transport map, so encoding
// a Profile can never leak hash or salt.
func (p *Profile) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Transport())
}
