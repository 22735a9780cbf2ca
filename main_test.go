/* main_test.go
 * Contains unit tests for main.go functions
 */

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseMode_KnownModes tests every mode main can run
func TestParseMode_KnownModes(t *testing.T) {
	for input, want := range map[string]Mode{
		"console": ModeConsole,
		"bot":     ModeBot,
		"web":     ModeWeb,
	} {
		result, err := parseMode(input)

		assert.NoError(t, err)
		assert.Equal(t, want, result)
	}
}

// TestParseMode_CaseInsensitive tests mixed case "BoT"
func TestParseMode_CaseInsensitive(t *testing.T) {
	result, err := parseMode("BoT")

	assert.NoError(t, err)
	assert.Equal(t, ModeBot, result)
}

// TestParseMode_WithWhitespace tests string with leading/trailing whitespace
func TestParseMode_WithWhitespace(t *testing.T) {
	result, err := parseMode("  web  ")

	assert.NoError(t, err)
	assert.Equal(t, ModeWeb, result)
}

// TestParseMode_InvalidString tests an unknown mode
func TestParseMode_InvalidString(t *testing.T) {
	_, err := parseMode("gui")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode")
}

// TestParseMode_EmptyString tests empty and whitespace only strings
func TestParseMode_EmptyString(t *testing.T) {
	_, err := parseMode("")
	assert.Error(t, err)

	_, err = parseMode("   ")
	assert.Error(t, err)
}
