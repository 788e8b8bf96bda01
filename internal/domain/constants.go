package domain

// Окно дня, в котором разрешено планирование позиций маршрута
// Ресолвер конфликтов никогда не предлагает время вне этого окна
const (
	DayWindowStartMinutes = 6 * 60  // 06:00
	DayWindowEndMinutes   = 23 * 60 // 23:00
)

// Business validation constants
const (
	MinGuestsPerItem = 1
	MaxGuestsPerItem = 50

	MaxSlotCapacity = 10000

	MaxActorLength  = 100
	MaxReasonLength = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
