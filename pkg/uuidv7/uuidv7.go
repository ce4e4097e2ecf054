// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 wraps google/uuid to mint time-ordered UUIDv7 profile IDs.
//
// # Why UUIDv7?
//
// Profile IDs minted here are destined for database primary keys. Because
// UUIDv7 is time-sortable, it stays clustered-index friendly in PostgreSQL,
// preventing the index fragmentation common with random UUIDv4.
//
// The profile entity itself only parses IDs; generation lives here so the
// validation core stays free of entropy concerns.
package uuidv7

import "github.com/google/uuid"

// New mints a new UUIDv7 in canonical string form.
//
// # Safety
//
// It panics only if the OS random source is unavailable (extremely rare).
// OS entropy failure is an unrecoverable system-level error.
func New() string {
	return NewUUID().String()
}

// NewUUID mints a new UUIDv7 as a typed value, suitable for
// [profile.Profile.SetUUID] without a parse round-trip.
func NewUUID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuidv7: failed to generate UUID: " + err.Error())
	}

	return id
}
