package resolve_conflict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
)

func TestFindNextAvailableSlot(t *testing.T) {
	windowStart := domain.DayWindowStartMinutes // 06:00
	windowEnd := domain.DayWindowEndMinutes     // 23:00

	t.Run("empty day starts at window start", func(t *testing.T) {
		result := findNextAvailableSlot(nil, 120, windowStart, windowEnd)
		require.NotNil(t, result)
		assert.Equal(t, windowStart, *result)
	})

	t.Run("gap before first interval", func(t *testing.T) {
		// Первая позиция в 10:00 - до нее помещается двухчасовое окно с 06:00
		occupied := []interval{{start: 600, end: 720}}

		result := findNextAvailableSlot(occupied, 120, windowStart, windowEnd)
		require.NotNil(t, result)
		assert.Equal(t, windowStart, *result)
	})

	t.Run("first fitting gap between intervals", func(t *testing.T) {
		// 06:00-09:00 и 10:00-12:00 заняты; часовое окно помещается в 09:00
		occupied := []interval{
			{start: 360, end: 540},
			{start: 600, end: 720},
		}

		result := findNextAvailableSlot(occupied, 60, windowStart, windowEnd)
		require.NotNil(t, result)
		assert.Equal(t, 540, *result)
	})

	t.Run("too small gap is skipped", func(t *testing.T) {
		// Зазор 09:00-10:00 мал для двух часов, ответ - после второго интервала
		occupied := []interval{
			{start: 360, end: 540},
			{start: 600, end: 720},
		}

		result := findNextAvailableSlot(occupied, 120, windowStart, windowEnd)
		require.NotNil(t, result)
		assert.Equal(t, 720, *result)
	})

	t.Run("unsorted input", func(t *testing.T) {
		occupied := []interval{
			{start: 600, end: 720},
			{start: 360, end: 540},
		}

		result := findNextAvailableSlot(occupied, 60, windowStart, windowEnd)
		require.NotNil(t, result)
		assert.Equal(t, 540, *result)
	})

	t.Run("overlapping intervals are merged by the scan", func(t *testing.T) {
		occupied := []interval{
			{start: 360, end: 600},
			{start: 540, end: 660},
		}

		result := findNextAvailableSlot(occupied, 60, windowStart, windowEnd)
		require.NotNil(t, result)
		assert.Equal(t, 660, *result)
	})

	t.Run("no gap fits", func(t *testing.T) {
		// Весь день занят одним интервалом
		occupied := []interval{{start: windowStart, end: windowEnd}}

		assert.Nil(t, findNextAvailableSlot(occupied, 30, windowStart, windowEnd))
	})

	t.Run("tail of the day", func(t *testing.T) {
		// Занято до 21:00, двухчасовое окно уже не помещается, часовое - да
		occupied := []interval{{start: windowStart, end: 1260}}

		assert.Nil(t, findNextAvailableSlot(occupied, 121, windowStart, windowEnd))

		result := findNextAvailableSlot(occupied, 120, windowStart, windowEnd)
		require.NotNil(t, result)
		assert.Equal(t, 1260, *result)
	})

	t.Run("duration longer than the whole window", func(t *testing.T) {
		assert.Nil(t, findNextAvailableSlot(nil, windowEnd-windowStart+1, windowStart, windowEnd))
	})

	t.Run("non positive duration", func(t *testing.T) {
		assert.Nil(t, findNextAvailableSlot(nil, 0, windowStart, windowEnd))
	})

	t.Run("result never intersects occupied intervals", func(t *testing.T) {
		occupied := []interval{
			{start: 400, end: 500},
			{start: 520, end: 900},
			{start: 950, end: 1100},
		}
		required := 90

		result := findNextAvailableSlot(occupied, required, windowStart, windowEnd)
		require.NotNil(t, result)

		start, end := *result, *result+required
		assert.GreaterOrEqual(t, start, windowStart)
		assert.LessOrEqual(t, end, windowEnd)
		for _, iv := range occupied {
			overlaps := max(start, iv.start) < min(end, iv.end)
			assert.False(t, overlaps, "slot [%d,%d) intersects [%d,%d)", start, end, iv.start, iv.end)
		}
	})
}
