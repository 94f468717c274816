package io_test

import (
	"testing"

	iopkg "github.com/devantler-tech/wilder/pkg/io"
	"github.com/stretchr/testify/assert"
)

func TestTrimNonEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		input         string
		expectedStr   string
		expectedValid bool
	}{
		{"empty string returns false", "", "", false},
		{"whitespace only returns false", "   ", "", false},
		{"tabs and newlines return false", "\t  \n  ", "", false},
		{"valid string returns true and trimmed value", "https://registry.npmjs.org/", "https://registry.npmjs.org/", true},
		{"leading and trailing whitespace is trimmed", "  http://localhost:4873  ", "http://localhost:4873", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			str, valid := iopkg.TrimNonEmpty(test.input)

			assert.Equal(t, test.expectedStr, str, "trimmed string should match")
			assert.Equal(t, test.expectedValid, valid, "validity should match")
		})
	}
}

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{" YES\n", "yes"},
		{"Sí", "sí"},
		{"\tPNPM ", "pnpm"},
		{"SÍ", "sí"},
		{"YARN\r\n", "yarn"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.expected, iopkg.Fold(test.input))
		})
	}
}
