package duration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToMinutes(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected int
	}{
		{"whole hours", "2 hours", 120},
		{"single hour", "1 hour", 60},
		{"fractional hours", "1.5 hours", 90},
		{"minutes", "45 minutes", 45},
		{"short minutes", "30 min", 30},
		{"short hours", "3 hrs", 180},
		{"bare number is minutes", "90", 90},
		{"days", "1 day", 1440},
		{"mixed case with spaces", "  2 Hours ", 120},
		{"fraction rounds to nearest minute", "0.33 hours", 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			minutes, err := ParseToMinutes(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, minutes)
		})
	}
}

func TestParseToMinutes_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"only spaces", "   "},
		{"no leading number", "half an hour"},
		{"unknown unit", "2 fortnights"},
		{"negative value", "-30 minutes"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseToMinutes(tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDuration)
		})
	}
}
