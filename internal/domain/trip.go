package domain

import (
	"time"

	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/types"
)

// TripItem represents one entry of a traveler's itinerary
type TripItem struct {
	ID           int64
	TripID       int64
	ExperienceID int64
	ItemDate     time.Time         // Календарная дата позиции
	StartTime    *types.TimeString // nil = время не назначено, позиция не участвует в поиске конфликтов
	Guests       int               // >= 1
	TotalPrice   float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsScheduled returns true if the item has an assigned start time
func (i *TripItem) IsScheduled() bool {
	return i.StartTime != nil && !i.StartTime.IsZero()
}
