// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sanitize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/yomira-profile/internal/platform/sanitize"
)

/*
TestClean exercises every stage of the character policy pipeline.
*/
func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "tai", "tai"},
		{"trim", "  tai  ", "tai"},
		{"tab_removed", "ta\tb", "tab"},
		{"newline_removed", "ta\nb", "tab"},
		{"nul_removed", "ta\x00b", "tab"},
		{"markup_removed", "<script>alert</script>", "scriptalert/script"},
		{"interior_space_kept", "two words", "two words"},
		// NFC composes the decomposed form into a single rune.
		{"nfc_composition", "cafe\u0301", "caf\u00e9"},
		{"empty", "", ""},
		{"whitespace_only", "   ", ""},
		{"markup_only", "<>", ""},
		// Removal can expose edge whitespace; the final trim catches it.
		{"trim_after_strip", "< tai >", "tai"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitize.Clean(tt.in))
		})
	}
}

/*
TestTrim checks that Trim only touches edge whitespace and applies no rune
policy.
*/
func TestTrim(t *testing.T) {
	assert.Equal(t, "a<b>c", sanitize.Trim("  a<b>c  "))
	assert.Equal(t, "", sanitize.Trim("   "))
}
