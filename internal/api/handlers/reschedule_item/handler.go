package reschedule_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/api/handlers"
	tripsService "github.com/5n10sndkts-eng/Pulau-sub002/internal/service/trips"
	"github.com/5n10sndkts-eng/Pulau-sub002/internal/service/trips/models"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidIDs         = "некорректный ID маршрута или позиции"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgItemNotFound       = "позиция маршрута не найдена"
	msgOutsideDayWindow   = "позиция не помещается в окно дня 06:00-23:00"
	msgExperienceNotFound = "впечатление не найдено в каталоге"
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

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	NewStartTime string `json:"newStartTime"` // "14:30"
}

// Handle POST /api/v1/trips/{tripId}/items/{itemId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tripID, err1 := strconv.ParseInt(vars["tripId"], 10, 64)
	itemID, err2 := strconv.ParseInt(vars["itemId"], 10, 64)
	if err1 != nil || err2 != nil || tripID <= 0 || itemID <= 0 {
		h.logger.Warn("POST /trips/{tripId}/items/{itemId}/reschedule - Invalid IDs: trip=%v, item=%v",
			vars["tripId"], vars["itemId"])
		handlers.RespondBadRequest(w, msgInvalidIDs)
		return
	}

	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /trips/{tripId}/items/{itemId}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	newStartTime, err := types.NewTimeStringFromString(req.NewStartTime)
	if err != nil {
		h.logger.Warn("POST /trips/{tripId}/items/{itemId}/reschedule - Invalid time %q: %v", req.NewStartTime, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	err = h.service.RescheduleItem(r.Context(), &models.RescheduleRequest{
		TripID:       tripID,
		ItemID:       itemID,
		NewStartTime: newStartTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, tripsService.ErrInvalidInput):
			h.logger.Warn("POST /trips/{tripId}/items/{itemId}/reschedule - Invalid input: trip_id=%d, item_id=%d, error=%v",
				tripID, itemID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, tripsService.ErrItemNotFound):
			h.logger.Warn("POST /trips/{tripId}/items/{itemId}/reschedule - Item not found: trip_id=%d, item_id=%d",
				tripID, itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, tripsService.ErrOutsideDayWindow):
			h.logger.Warn("POST /trips/{tripId}/items/{itemId}/reschedule - Outside day window: trip_id=%d, item_id=%d, time=%s",
				tripID, itemID, req.NewStartTime)
			handlers.RespondBadRequest(w, msgOutsideDayWindow)

		case errors.Is(err, tripsService.ErrExperienceNotFound):
			h.logger.Warn("POST /trips/{tripId}/items/{itemId}/reschedule - Experience not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgExperienceNotFound)

		default:
			h.logger.Error("POST /trips/{tripId}/items/{itemId}/reschedule - Failed: trip_id=%d, item_id=%d, error=%v",
				tripID, itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /trips/{tripId}/items/{itemId}/reschedule - Item moved: trip_id=%d, item_id=%d, new_time=%s",
		tripID, itemID, req.NewStartTime)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
