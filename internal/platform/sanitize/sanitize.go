// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sanitize normalizes free-form profile input before validation.
//
// # Character Policy
//
// Cleaning is an explicit, reproducible pipeline rather than a platform default
// filter, so the behavior is identical everywhere the module runs:
//
//  1. Trim leading and trailing whitespace.
//  2. Normalize to Unicode NFC (composes "e" + combining acute into "é").
//  3. Drop control runes (C0 and C1 ranges, including tab and newline).
//  4. Drop the markup delimiters '<' and '>'.
//  5. Trim again, in case rune removal exposed edge whitespace.
//
// The pipeline never rejects: a string that sanitizes to empty is reported as
// empty by the caller's Required rule, not here.
package sanitize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Clean runs the full character policy pipeline over s.
func Clean(s string) string {
	s = strings.TrimSpace(s)
	s = norm.NFC.String(s)

	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		switch r {
		case '<', '>':
			return -1
		}
		return r
	}, s)

	return strings.TrimSpace(s)
}

// Trim removes leading and trailing whitespace without applying the rune
// policy. Used for fields whose own validators constrain the character set
// (hex digests, email addresses).
func Trim(s string) string {
	return strings.TrimSpace(s)
}
