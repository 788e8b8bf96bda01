package resolve_conflict

import (
	"sort"

	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/ptr"
)

// interval занятый отрезок дня [start, end) в минутах от полуночи
type interval struct {
	start int
	end   int
}

// findNextAvailableSlot ищет самое раннее свободное окно длиной required
// минут внутри окна дня [windowStart, windowEnd)
//
// Классический earliest-fit проход: интервалы сортируются по началу, курсор
// идет от начала окна; первый зазор достаточной длины - ответ. Возвращает
// nil, когда подходящего окна нет. Гарантия: возвращенное время t дает
// интервал [t, t+required], который целиком лежит в окне дня и не
// пересекается ни с одним из переданных интервалов
func findNextAvailableSlot(occupied []interval, required, windowStart, windowEnd int) *int {
	if required <= 0 || windowStart+required > windowEnd {
		return nil
	}

	sorted := make([]interval, len(occupied))
	copy(sorted, occupied)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].start < sorted[j].start
	})

	current := windowStart

	for _, iv := range sorted {
		// Интервал целиком позади курсора не сужает зазор
		if iv.end <= current {
			continue
		}

		// Зазор перед интервалом, обрезанный правой границей окна
		gapEnd := iv.start
		if gapEnd > windowEnd {
			gapEnd = windowEnd
		}
		if gapEnd-current >= required {
			return ptr.Ptr(current)
		}

		current = iv.end
		if current >= windowEnd {
			return nil
		}
	}

	// Хвост дня после последнего интервала
	if windowEnd-current >= required {
		return ptr.Ptr(current)
	}

	return nil
}
