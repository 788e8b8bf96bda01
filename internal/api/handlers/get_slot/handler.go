package get_slot

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/api/handlers"
	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
	inventoryService "github.com/5n10sndkts-eng/Pulau-sub002/internal/service/inventory"
	"github.com/5n10sndkts-eng/Pulau-sub002/internal/service/inventory/models"
)

const (
	msgInvalidSlotID = "некорректный ID слота"
	msgSlotNotFound  = "слот не найден"
)

type Handler struct {
	service InventoryService
	logger  Logger
}

func NewHandler(service InventoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
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

// Handle GET /api/v1/slots/{slotId}
//
// Сверочное чтение: вызывающие обращаются сюда после таймаута мутации,
// когда исход неизвестен
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		h.logger.Warn("GET /slots/{slotId} - Invalid slot ID: %v", mux.Vars(r)["slotId"])
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	result, err := h.service.GetSlot(r.Context(), slotID)
	if err != nil {
		switch {
		case errors.Is(err, inventoryService.ErrSlotNotFound):
			h.logger.Warn("GET /slots/{slotId} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		default:
			h.logger.Error("GET /slots/{slotId} - Failed to get slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

func fromServiceResponse(resp *models.SlotResponse) *SlotResponse {
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
