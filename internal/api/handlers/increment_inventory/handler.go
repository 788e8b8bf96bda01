package increment_inventory

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/api/handlers"
	inventoryService "github.com/5n10sndkts-eng/Pulau-sub002/internal/service/inventory"
	"github.com/5n10sndkts-eng/Pulau-sub002/internal/service/inventory/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotID      = "некорректный ID слота"
	msgInvalidCount       = "количество должно быть положительным целым числом"
	msgSlotNotFound       = "слот не найден"
	msgInternalError      = "внутренняя ошибка сервера"
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

// Handle POST /api/v1/slots/{slotId}/increment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		h.logger.Warn("POST /slots/{slotId}/increment - Invalid slot ID: %v", mux.Vars(r)["slotId"])
		handlers.RespondJSON(w, http.StatusBadRequest, FailResponse(msgInvalidSlotID))
		return
	}

	var req IncrementRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/{slotId}/increment - Invalid request body: %v", err)
		handlers.RespondJSON(w, http.StatusBadRequest, FailResponse(msgInvalidRequestBody))
		return
	}

	result, err := h.service.IncrementAvailability(r.Context(), &models.MutationRequest{
		SlotID: slotID,
		Count:  req.Count,
		Actor:  handlers.ActorFromRequest(r),
	})
	if err != nil {
		switch {
		case errors.Is(err, inventoryService.ErrInvalidCount):
			h.logger.Warn("POST /slots/{slotId}/increment - Invalid count: slot_id=%d, count=%d", slotID, req.Count)
			handlers.RespondJSON(w, http.StatusBadRequest, FailResponse(msgInvalidCount))

		case errors.Is(err, inventoryService.ErrSlotNotFound):
			h.logger.Warn("POST /slots/{slotId}/increment - Slot not found: slot_id=%d", slotID)
			handlers.RespondJSON(w, http.StatusNotFound, FailResponse(msgSlotNotFound))

		default:
			h.logger.Error("POST /slots/{slotId}/increment - Failed: slot_id=%d, error=%v", slotID, err)
			handlers.RespondJSON(w, http.StatusInternalServerError, FailResponse(msgInternalError))
		}
		return
	}

	h.logger.Info("POST /slots/{slotId}/increment - Incremented: slot_id=%d, applied=%d, available=%d",
		slotID, result.AppliedDelta, result.AvailableCount)
	handlers.RespondJSON(w, http.StatusOK, OkResponse(result.AvailableCount, result.AppliedDelta))
}
