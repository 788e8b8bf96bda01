package resolve_conflict

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/api/handlers"
	resolveConflict "github.com/5n10sndkts-eng/Pulau-sub002/internal/usecase/resolve_conflict"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTripID      = "некорректный ID маршрута"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgItemNotFound       = "позиция маршрута не найдена на указанную дату"
	msgItemNotScheduled   = "у позиции маршрута нет назначенного времени"
	msgExperienceNotFound = "впечатление не найдено в каталоге"
)

type Handler struct {
	useCase ResolveConflictUseCase
	logger  Logger
}

func NewHandler(useCase ResolveConflictUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/trips/{tripId}/conflicts/resolve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tripID, err := strconv.ParseInt(mux.Vars(r)["tripId"], 10, 64)
	if err != nil || tripID <= 0 {
		h.logger.Warn("POST /trips/{tripId}/conflicts/resolve - Invalid trip ID: %v", mux.Vars(r)["tripId"])
		handlers.RespondBadRequest(w, msgInvalidTripID)
		return
	}

	var req ResolveConflictRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /trips/{tripId}/conflicts/resolve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tripID)
	if err != nil {
		h.logger.Warn("POST /trips/{tripId}/conflicts/resolve - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, resolveConflict.ErrInvalidInput):
			h.logger.Warn("POST /trips/{tripId}/conflicts/resolve - Invalid input: trip_id=%d, error=%v", tripID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, resolveConflict.ErrItemNotFound):
			h.logger.Warn("POST /trips/{tripId}/conflicts/resolve - Item not found: trip_id=%d, items=%d/%d",
				tripID, req.ItemID1, req.ItemID2)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, resolveConflict.ErrItemNotScheduled):
			h.logger.Warn("POST /trips/{tripId}/conflicts/resolve - Item not scheduled: trip_id=%d, items=%d/%d",
				tripID, req.ItemID1, req.ItemID2)
			handlers.RespondBadRequest(w, msgItemNotScheduled)

		case errors.Is(err, resolveConflict.ErrExperienceNotFound):
			h.logger.Warn("POST /trips/{tripId}/conflicts/resolve - Experience not found: trip_id=%d", tripID)
			handlers.RespondNotFound(w, msgExperienceNotFound)

		default:
			h.logger.Error("POST /trips/{tripId}/conflicts/resolve - Failed: trip_id=%d, error=%v", tripID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /trips/{tripId}/conflicts/resolve - Suggestions computed: trip_id=%d, items=%d/%d",
		tripID, req.ItemID1, req.ItemID2)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
