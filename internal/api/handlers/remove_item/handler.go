package remove_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/api/handlers"
	tripsService "github.com/5n10sndkts-eng/Pulau-sub002/internal/service/trips"
	"github.com/5n10sndkts-eng/Pulau-sub002/internal/service/trips/models"
)

const (
	msgInvalidIDs   = "некорректный ID маршрута или позиции"
	msgItemNotFound = "позиция маршрута не найдена"
)

type Handler struct {
	service TripsService
	logger  Logger
}

func NewHandler(service TripsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/trips/{tripId}/items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tripID, err1 := strconv.ParseInt(vars["tripId"], 10, 64)
	itemID, err2 := strconv.ParseInt(vars["itemId"], 10, 64)
	if err1 != nil || err2 != nil || tripID <= 0 || itemID <= 0 {
		h.logger.Warn("DELETE /trips/{tripId}/items/{itemId} - Invalid IDs: trip=%v, item=%v",
			vars["tripId"], vars["itemId"])
		handlers.RespondBadRequest(w, msgInvalidIDs)
		return
	}

	err := h.service.RemoveItem(r.Context(), &models.RemoveRequest{
		TripID: tripID,
		ItemID: itemID,
	})
	if err != nil {
		switch {
		case errors.Is(err, tripsService.ErrInvalidInput):
			h.logger.Warn("DELETE /trips/{tripId}/items/{itemId} - Invalid input: trip_id=%d, item_id=%d, error=%v",
				tripID, itemID, err)
			handlers.RespondBadRequest(w, msgInvalidIDs)

		case errors.Is(err, tripsService.ErrItemNotFound):
			h.logger.Warn("DELETE /trips/{tripId}/items/{itemId} - Item not found: trip_id=%d, item_id=%d",
				tripID, itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		default:
			h.logger.Error("DELETE /trips/{tripId}/items/{itemId} - Failed: trip_id=%d, item_id=%d, error=%v",
				tripID, itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /trips/{tripId}/items/{itemId} - Item removed: trip_id=%d, item_id=%d", tripID, itemID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
