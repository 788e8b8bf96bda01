package models

import (
	"time"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/types"
)

// Request модели

// CreateSlotRequest запрос на создание слота
type CreateSlotRequest struct {
	ExperienceID  int64
	SlotDate      time.Time
	StartTime     types.TimeString
	TotalCapacity int
	Actor         string
}

// MutationRequest запрос на изменение available_count слота
type MutationRequest struct {
	SlotID int64
	Count  int
	Actor  string
}

// DeleteSlotRequest запрос на удаление слота
type DeleteSlotRequest struct {
	SlotID int64
	Actor  string
}

// Response модели

// DecrementResult результат атомарного декремента
type DecrementResult struct {
	SlotID         int64
	AvailableCount int
}

// DecrementWithSlotResult результат декремента с метаданными слота
type DecrementWithSlotResult struct {
	Slot           *domain.Slot // Состояние слота, прочитанное под блокировкой до декремента
	AvailableCount int          // Значение после декремента
}

// IncrementResult результат инкремента с капом
type IncrementResult struct {
	SlotID         int64
	AvailableCount int
	AppliedDelta   int // Фактически примененная дельта (меньше запрошенной при срабатывании капа)
}

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID             int64
	ExperienceID   int64
	SlotDate       time.Time
	StartTime      types.TimeString
	TotalCapacity  int
	AvailableCount int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	if s == nil {
		return nil
	}
	return &SlotResponse{
		ID:             s.ID,
		ExperienceID:   s.ExperienceID,
		SlotDate:       s.SlotDate,
		StartTime:      s.StartTime,
		TotalCapacity:  s.TotalCapacity,
		AvailableCount: s.AvailableCount,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
