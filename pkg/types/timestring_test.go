package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid time", func(t *testing.T) {
		ts, err := NewTimeStringFromString("09:30")
		require.NoError(t, err)
		assert.Equal(t, "09:30", ts.String())
	})

	t.Run("midnight", func(t *testing.T) {
		ts, err := NewTimeStringFromString("00:00")
		require.NoError(t, err)
		assert.Equal(t, "00:00", ts.String())
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := NewTimeStringFromString("9:30am")
		assert.Error(t, err)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := NewTimeStringFromString("25:00")
		assert.Error(t, err)
	})

	t.Run("empty string", func(t *testing.T) {
		_, err := NewTimeStringFromString("")
		assert.Error(t, err)
	})
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 9, 15, 14, 5, 0, 0, time.UTC)
	ts := NewTimeString(moment)
	assert.Equal(t, "14:05", ts.String())
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	t.Run("morning", func(t *testing.T) {
		ts, err := NewTimeStringFromMinutes(360)
		require.NoError(t, err)
		assert.Equal(t, "06:00", ts.String())
	})

	t.Run("evening", func(t *testing.T) {
		ts, err := NewTimeStringFromMinutes(1380)
		require.NoError(t, err)
		assert.Equal(t, "23:00", ts.String())
	})

	t.Run("negative", func(t *testing.T) {
		_, err := NewTimeStringFromMinutes(-1)
		assert.Error(t, err)
	})

	t.Run("past end of day", func(t *testing.T) {
		_, err := NewTimeStringFromMinutes(1440)
		assert.Error(t, err)
	})
}

func TestTimeString_Minutes(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		ts, err := NewTimeStringFromString("10:45")
		require.NoError(t, err)

		minutes, err := ts.Minutes()
		require.NoError(t, err)
		assert.Equal(t, 10*60+45, minutes)
	})

	t.Run("invalid value", func(t *testing.T) {
		ts := TimeString("oops")
		_, err := ts.Minutes()
		assert.Error(t, err)
	})
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("within day", func(t *testing.T) {
		ts, err := NewTimeStringFromString("10:00")
		require.NoError(t, err)

		moved, err := ts.AddMinutes(90)
		require.NoError(t, err)
		assert.Equal(t, "11:30", moved.String())
	})

	t.Run("crosses midnight", func(t *testing.T) {
		ts, err := NewTimeStringFromString("23:30")
		require.NoError(t, err)

		_, err = ts.AddMinutes(60)
		assert.Error(t, err)
	})
}

func TestTimeString_Ordering(t *testing.T) {
	early := TimeString("09:00")
	late := TimeString("17:30")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
}
