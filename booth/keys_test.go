package booth

import (
	"strings"
	"testing"
)

func TestSanitizeName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain name", "Ada", "ada"},
		{"Name with space", "Ada Lovelace", "ada-lovelace"},
		{"Dots and dashes kept", "v1.2-beta", "v1.2-beta"},
		{"Special characters", "Ada / Lovelace!", "ada-lovelace-"},
		{"Consecutive unsafe characters collapse", "a___b", "a-b"},
		{"Existing dashes collapse with replacements", "a-!b", "a-b"},
		{"Unicode", "José München", "jos-m-nchen"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeName(tc.input); got != tc.expected {
				t.Errorf("SanitizeName(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestStorageKey(t *testing.T) {
	key := storageKey(rawKeyPrefix, "Ada Lovelace", "Recording.WAV")

	if !strings.HasPrefix(key, "recordings/") {
		t.Errorf("Expected key under recordings/, got %q", key)
	}
	if !strings.HasSuffix(key, "-ada-lovelace.wav") {
		t.Errorf("Expected key ending in sanitized name and lowercased extension, got %q", key)
	}
}

func TestStorageKey_DistinctAcrossRuns(t *testing.T) {
	first := storageKey(rawKeyPrefix, "Ada", "a.wav")
	second := storageKey(rawKeyPrefix, "Ada", "a.wav")

	if first == second {
		t.Errorf("Expected distinct keys for successive runs, both were %q", first)
	}
}
