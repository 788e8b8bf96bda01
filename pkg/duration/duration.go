package duration

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Пакет duration разбирает человекочитаемые длительности из каталога
// впечатлений ("2 hours", "45 minutes", "1.5 hours") в целые минуты.

var (
	// ErrInvalidDuration возвращается, когда строку длительности не удалось разобрать
	ErrInvalidDuration = errors.New("duration: invalid duration string")
)

// ParseToMinutes разбирает строку длительности в целое число минут
// Дробные значения часов округляются до ближайшей минуты
//
// Примеры:
//   - "2 hours"      -> 120
//   - "1 hour"       -> 60
//   - "45 minutes"   -> 45
//   - "1.5 hours"    -> 90
//   - "90"           -> 90 (число без единицы измерения трактуется как минуты)
func ParseToMinutes(s string) (int, error) {
	trimmed := strings.TrimSpace(strings.ToLower(s))
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidDuration)
	}

	fields := strings.Fields(trimmed)

	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: negative value in %q", ErrInvalidDuration, s)
	}

	// Число без единицы измерения - минуты
	if len(fields) == 1 {
		return int(math.Round(value)), nil
	}

	unit := strings.TrimSuffix(fields[1], "s")
	switch unit {
	case "hour", "hr", "h":
		return int(math.Round(value * 60)), nil
	case "minute", "min", "m":
		return int(math.Round(value)), nil
	case "day", "d":
		return int(math.Round(value * 24 * 60)), nil
	default:
		return 0, fmt.Errorf("%w: unknown unit %q in %q", ErrInvalidDuration, fields[1], s)
	}
}
