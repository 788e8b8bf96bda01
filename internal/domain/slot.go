package domain

import (
	"time"

	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/types"
)

// Slot represents bookable capacity for one experience at one date and time
type Slot struct {
	ID           int64
	ExperienceID int64
	SlotDate     time.Time        // Дата слота (без времени)
	StartTime    types.TimeString // Время начала ("10:00")

	TotalCapacity  int // Общая вместимость, >= 0
	AvailableCount int // Инвариант: 0 <= AvailableCount <= TotalCapacity

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSoldOut returns true if no capacity remains
func (s *Slot) IsSoldOut() bool {
	return s.AvailableCount <= 0
}

// IsFullyAvailable returns true if no capacity has been taken
func (s *Slot) IsFullyAvailable() bool {
	return s.AvailableCount == s.TotalCapacity
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *Slot) OccupancyRate() float64 {
	if s.TotalCapacity == 0 {
		return 0
	}
	taken := s.TotalCapacity - s.AvailableCount
	return float64(taken) / float64(s.TotalCapacity) * 100
}

// WithinBounds returns true if the capacity invariant holds
func (s *Slot) WithinBounds() bool {
	return s.AvailableCount >= 0 && s.AvailableCount <= s.TotalCapacity
}
