package decrement_inventory_locked

import (
	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
	"github.com/5n10sndkts-eng/Pulau-sub002/internal/service/inventory/models"
)

// DecrementRequest HTTP request model
type DecrementRequest struct {
	Count int `json:"count"`
}

// SlotInfo метаданные слота, прочитанные в той же транзакции, что и декремент
type SlotInfo struct {
	ExperienceID int64  `json:"experienceId"`
	SlotDate     string `json:"slotDate"`
	StartTime    string `json:"startTime"`
}

// MutationResponse единый формат ответа мутаций инвентаря,
// расширенный метаданными слота
type MutationResponse struct {
	Success        bool      `json:"success"`
	Error          *string   `json:"error"`
	AvailableCount *int      `json:"availableCount"`
	Slot           *SlotInfo `json:"slot,omitempty"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(result *models.DecrementWithSlotResult) *MutationResponse {
	return &MutationResponse{
		Success:        true,
		Error:          nil,
		AvailableCount: &result.AvailableCount,
		Slot: &SlotInfo{
			ExperienceID: result.Slot.ExperienceID,
			SlotDate:     result.Slot.SlotDate.Format(domain.DateFormat),
			StartTime:    result.Slot.StartTime.String(),
		},
	}
}

// FailResponse ответ терминального отказа
func FailResponse(message string) *MutationResponse {
	return &MutationResponse{
		Success:        false,
		Error:          &message,
		AvailableCount: nil,
	}
}
