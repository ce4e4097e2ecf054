// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"fmt"

	"github.com/taibuivan/yomira-profile/internal/platform/rule"
	"github.com/taibuivan/yomira-profile/internal/platform/sanitize"
)

// FieldAuthorID is the author reference identity field name.
const FieldAuthorID = "authorId"

// AuthorRef is a lightweight reference to an author record.
//
// Only the numeric identity is validated here. Email, hash, and username are
// loaded by a persistence collaborator and treated as already trusted; they
// are read-only in this core.
type AuthorRef struct {
	authorID int
	email    string
	hash     string
	username string
}

// NewAuthorRef constructs an author reference, validating the identity and
// loading the trusted fields as-is.
func NewAuthorRef(rawID, email, hash, username string) (*AuthorRef, error) {
	ref := &AuthorRef{
		email:    email,
		hash:     hash,
		username: username,
	}
	if err := ref.SetAuthorID(rawID); err != nil {
		return nil, fmt.Errorf("profile: new author ref: %w", err)
	}
	return ref, nil
}

// SetAuthorID parses and commits the numeric author identity.
// Rejects with INVALID_IDENTITY when the value is not representable as an
// integer; the prior value stays committed.
func (a *AuthorRef) SetAuthorID(raw string) error {
	id, err := rule.Integer(FieldAuthorID, sanitize.Trim(raw))
	if err != nil {
		return err
	}

	a.authorID = id
	return nil
}

// AuthorID returns the numeric author identity.
func (a *AuthorRef) AuthorID() int { return a.authorID }

// Email returns the trusted author email as stored.
func (a *AuthorRef) Email() string { return a.email }

// Hash returns the trusted author credential hash as stored.
func (a *AuthorRef) Hash() string { return a.hash }

// Username returns the trusted author username as stored.
func (a *AuthorRef) Username() string { return a.username }
