package delete_slot

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
	msgInvalidSlotID     = "некорректный ID слота"
	msgSlotNotFound      = "слот не найден"
	msgHasActiveBookings = "слот нельзя удалить: на него есть активные бронирования"
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

// Handle DELETE /api/v1/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		h.logger.Warn("DELETE /slots/{slotId} - Invalid slot ID: %v", mux.Vars(r)["slotId"])
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	err = h.service.DeleteSlot(r.Context(), &models.DeleteSlotRequest{
		SlotID: slotID,
		Actor:  handlers.ActorFromRequest(r),
	})
	if err != nil {
		switch {
		case errors.Is(err, inventoryService.ErrSlotNotFound):
			h.logger.Warn("DELETE /slots/{slotId} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, inventoryService.ErrHasExistingBookings):
			h.logger.Warn("DELETE /slots/{slotId} - Slot has active bookings: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgHasActiveBookings)

		default:
			h.logger.Error("DELETE /slots/{slotId} - Failed to delete slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /slots/{slotId} - Slot deleted: slot_id=%d", slotID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
