package create_slot

import (
	"errors"
	"net/http"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/api/handlers"
	inventoryService "github.com/5n10sndkts-eng/Pulau-sub002/internal/service/inventory"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты слота, ожидается YYYY-MM-DD"
	msgInvalidCapacity    = "некорректная вместимость слота"
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

// Handle POST /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(handlers.ActorFromRequest(r))
	if err != nil {
		h.logger.Warn("POST /slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.CreateSlot(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, inventoryService.ErrInvalidCapacity):
			h.logger.Warn("POST /slots - Invalid capacity: experience_id=%d, capacity=%d", req.ExperienceID, req.TotalCapacity)
			handlers.RespondBadRequest(w, msgInvalidCapacity)

		default:
			h.logger.Error("POST /slots - Failed to create slot: experience_id=%d, error=%v", req.ExperienceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots - Slot created successfully: slot_id=%d, experience_id=%d", result.ID, result.ExperienceID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
