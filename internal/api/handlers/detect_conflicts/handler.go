package detect_conflicts

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/api/handlers"
	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
	detectConflicts "github.com/5n10sndkts-eng/Pulau-sub002/internal/usecase/detect_conflicts"
)

const (
	msgInvalidTripID      = "некорректный ID маршрута"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgExperienceNotFound = "впечатление не найдено в каталоге"
)

type Handler struct {
	useCase DetectConflictsUseCase
	logger  Logger
}

func NewHandler(useCase DetectConflictsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/trips/{tripId}/conflicts?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tripID, err := strconv.ParseInt(mux.Vars(r)["tripId"], 10, 64)
	if err != nil || tripID <= 0 {
		h.logger.Warn("GET /trips/{tripId}/conflicts - Invalid trip ID: %v", mux.Vars(r)["tripId"])
		handlers.RespondBadRequest(w, msgInvalidTripID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /trips/{tripId}/conflicts - Invalid date: %v", r.URL.Query().Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &detectConflicts.Request{
		TripID: tripID,
		Date:   date,
	})
	if err != nil {
		switch {
		case errors.Is(err, detectConflicts.ErrInvalidInput):
			h.logger.Warn("GET /trips/{tripId}/conflicts - Invalid input: trip_id=%d, error=%v", tripID, err)
			handlers.RespondBadRequest(w, msgInvalidTripID)

		case errors.Is(err, detectConflicts.ErrExperienceNotFound):
			h.logger.Warn("GET /trips/{tripId}/conflicts - Experience not found: trip_id=%d", tripID)
			handlers.RespondNotFound(w, msgExperienceNotFound)

		default:
			h.logger.Error("GET /trips/{tripId}/conflicts - Failed: trip_id=%d, error=%v", tripID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /trips/{tripId}/conflicts - Found %d conflicts: trip_id=%d, date=%s",
		len(result.Conflicts), tripID, date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
