package detect_conflicts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/types"
)

func scheduledTripItem(id, experienceID int64, startTime string) *domain.TripItem {
	ts := types.TimeString(startTime)
	return &domain.TripItem{
		ID:           id,
		TripID:       1,
		ExperienceID: experienceID,
		StartTime:    &ts,
	}
}

func TestBuildScheduledItems(t *testing.T) {
	t.Run("unscheduled items are excluded", func(t *testing.T) {
		items := []*domain.TripItem{
			scheduledTripItem(1, 10, "10:00"),
			{ID: 2, TripID: 1, ExperienceID: 11, StartTime: nil},
		}
		durations := map[int64]int{10: 120, 11: 60}

		scheduled, err := buildScheduledItems(items, durations)
		require.NoError(t, err)
		require.Len(t, scheduled, 1)
		assert.Equal(t, int64(1), scheduled[0].itemID)
		assert.Equal(t, 600, scheduled[0].startMinutes)
		assert.Equal(t, 720, scheduled[0].endMinutes)
	})

	t.Run("broken time string is an error", func(t *testing.T) {
		items := []*domain.TripItem{scheduledTripItem(1, 10, "not-a-time")}

		_, err := buildScheduledItems(items, map[int64]int{10: 60})
		assert.Error(t, err)
	})
}

func TestFindOverlaps(t *testing.T) {
	t.Run("partial overlap reports overlap length", func(t *testing.T) {
		// 10:00+120 мин пересекается с 11:00+60 мин ровно на час
		items := []scheduledItem{
			{itemID: 1, startMinutes: 600, endMinutes: 720},
			{itemID: 2, startMinutes: 660, endMinutes: 720},
		}

		conflicts := findOverlaps(items)
		require.Len(t, conflicts, 1)
		assert.Equal(t, int64(1), conflicts[0].ItemID1)
		assert.Equal(t, int64(2), conflicts[0].ItemID2)
		assert.Equal(t, 60, conflicts[0].OverlapMinutes)
	})

	t.Run("back to back items do not conflict", func(t *testing.T) {
		items := []scheduledItem{
			{itemID: 1, startMinutes: 600, endMinutes: 660},
			{itemID: 2, startMinutes: 660, endMinutes: 720},
		}

		assert.Empty(t, findOverlaps(items))
	})

	t.Run("zero duration never conflicts", func(t *testing.T) {
		items := []scheduledItem{
			{itemID: 1, startMinutes: 600, endMinutes: 600},
			{itemID: 2, startMinutes: 600, endMinutes: 720},
		}

		assert.Empty(t, findOverlaps(items))
	})

	t.Run("containment is a conflict", func(t *testing.T) {
		items := []scheduledItem{
			{itemID: 1, startMinutes: 600, endMinutes: 840},
			{itemID: 2, startMinutes: 660, endMinutes: 720},
		}

		conflicts := findOverlaps(items)
		require.Len(t, conflicts, 1)
		assert.Equal(t, 60, conflicts[0].OverlapMinutes)
	})

	t.Run("order of items does not change the result", func(t *testing.T) {
		forward := []scheduledItem{
			{itemID: 1, startMinutes: 600, endMinutes: 720},
			{itemID: 2, startMinutes: 660, endMinutes: 780},
		}
		backward := []scheduledItem{forward[1], forward[0]}

		a := findOverlaps(forward)
		b := findOverlaps(backward)
		require.Len(t, a, 1)
		require.Len(t, b, 1)
		assert.Equal(t, a[0], b[0])
	})

	t.Run("each unordered pair reported once", func(t *testing.T) {
		// Три позиции в одном и том же интервале - три пары
		items := []scheduledItem{
			{itemID: 1, startMinutes: 600, endMinutes: 720},
			{itemID: 2, startMinutes: 600, endMinutes: 720},
			{itemID: 3, startMinutes: 600, endMinutes: 720},
		}

		assert.Len(t, findOverlaps(items), 3)
	})

	t.Run("smaller id always first in the pair", func(t *testing.T) {
		items := []scheduledItem{
			{itemID: 7, startMinutes: 600, endMinutes: 720},
			{itemID: 3, startMinutes: 660, endMinutes: 780},
		}

		conflicts := findOverlaps(items)
		require.Len(t, conflicts, 1)
		assert.Equal(t, int64(3), conflicts[0].ItemID1)
		assert.Equal(t, int64(7), conflicts[0].ItemID2)
	})
}
