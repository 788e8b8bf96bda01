package create_slot

import (
	"time"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
	"github.com/5n10sndkts-eng/Pulau-sub002/internal/service/inventory/models"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/types"
)

// CreateSlotRequest HTTP request model
type CreateSlotRequest struct {
	ExperienceID  int64  `json:"experienceId"`
	SlotDate      string `json:"slotDate"`  // "2026-09-15"
	StartTime     string `json:"startTime"` // "10:00"
	TotalCapacity int    `json:"totalCapacity"`
}

// SlotResponse HTTP response model
type SlotResponse struct {
	ID             int64  `json:"id"`
	ExperienceID   int64  `json:"experienceId"`
	SlotDate       string `json:"slotDate"`
	StartTime      string `json:"startTime"`
	TotalCapacity  int    `json:"totalCapacity"`
	AvailableCount int    `json:"availableCount"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateSlotRequest) ToServiceRequest(actor string) (*models.CreateSlotRequest, error) {
	slotDate, err := time.Parse(domain.DateFormat, r.SlotDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &models.CreateSlotRequest{
		ExperienceID:  r.ExperienceID,
		SlotDate:      slotDate,
		StartTime:     startTime,
		TotalCapacity: r.TotalCapacity,
		Actor:         actor,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.SlotResponse) *SlotResponse {
	return &SlotResponse{
		ID:             resp.ID,
		ExperienceID:   resp.ExperienceID,
		SlotDate:       resp.SlotDate.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		TotalCapacity:  resp.TotalCapacity,
		AvailableCount: resp.AvailableCount,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
