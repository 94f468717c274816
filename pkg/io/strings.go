package io

import (
	"strings"

	"golang.org/x/text/cases"
)

// String manipulation helpers.

// TrimNonEmpty returns the trimmed string and whether it's non-empty.
func TrimNonEmpty(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)

	return trimmed, trimmed != ""
}

// Fold trims s and applies Unicode case folding, for comparing operator input and
// settings case-insensitively.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
