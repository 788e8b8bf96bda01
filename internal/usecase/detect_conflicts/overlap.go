package detect_conflicts

import (
	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
)

// scheduledItem позиция маршрута, приведенная к занятому интервалу
// [startMinutes, endMinutes) в минутах от полуночи
type scheduledItem struct {
	itemID       int64
	startMinutes int
	endMinutes   int
}

// buildScheduledItems приводит позиции маршрута к занятым интервалам
// Позиции без назначенного времени исключаются - против них конфликт
// подняться не может. durations - длительности впечатлений в минутах
func buildScheduledItems(items []*domain.TripItem, durations map[int64]int) ([]scheduledItem, error) {
	scheduled := make([]scheduledItem, 0, len(items))

	for _, item := range items {
		if !item.IsScheduled() {
			continue
		}

		start, err := item.StartTime.Minutes()
		if err != nil {
			return nil, err
		}

		scheduled = append(scheduled, scheduledItem{
			itemID:       item.ID,
			startMinutes: start,
			endMinutes:   start + durations[item.ExperienceID],
		})
	}

	return scheduled, nil
}

// findOverlaps находит все пары пересекающихся интервалов
//
// Пересечение есть тогда и только тогда, когда
// max(startA, startB) < min(endA, endB) - строгое неравенство, поэтому
// стыкующиеся позиции (endA == startB) и нулевые длительности конфликтом
// не считаются. Каждая неупорядоченная пара сообщается один раз; отношение
// симметрично по построению
func findOverlaps(items []scheduledItem) []Conflict {
	conflicts := make([]Conflict, 0)

	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			a, b := items[i], items[j]

			overlapStart := max(a.startMinutes, b.startMinutes)
			overlapEnd := min(a.endMinutes, b.endMinutes)

			if overlapStart < overlapEnd {
				first, second := a.itemID, b.itemID
				if first > second {
					first, second = second, first
				}
				conflicts = append(conflicts, Conflict{
					ItemID1:        first,
					ItemID2:        second,
					OverlapMinutes: overlapEnd - overlapStart,
				})
			}
		}
	}

	return conflicts
}
