package resolve_conflict

import (
	"context"
	"errors"
	"fmt"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
	catalogClient "github.com/5n10sndkts-eng/Pulau-sub002/internal/integrations/experiencecatalog"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/duration"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/types"
)

// UseCase use case подбора вариантов разрешения конфликта расписания
//
// Для каждой позиции пары ищется самое раннее свободное окно дня, в которое
// ее можно передвинуть. Позиция, для которой считается вариант, исключается
// из занятых интервалов - иначе она блокировала бы собственное новое место.
// Use case ничего не мутирует; применение выбранного варианта - отдельная
// операция сервиса маршрутов
type UseCase struct {
	tripItemRepo  TripItemRepository
	catalogClient ExperienceCatalogClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tripItemRepo TripItemRepository,
	catalogClient ExperienceCatalogClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		tripItemRepo:  tripItemRepo,
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// Execute считает варианты разрешения для обеих позиций пары
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolveConflict: trip=%d, date=%s, items=%d/%d",
		req.TripID, req.Date.Format(domain.DateFormat), req.ItemID1, req.ItemID2)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveConflict: validation failed: %v", err)
		return nil, err
	}

	// 2. Берем снимок позиций маршрута на дату
	items, err := uc.tripItemRepo.GetByTripAndDate(ctx, req.TripID, req.Date)
	if err != nil {
		uc.logger.Error("ResolveConflict: failed to get trip items: %v", err)
		return nil, fmt.Errorf("%w: failed to get trip items: %v", ErrInternal, err)
	}

	// 3. Обе позиции пары должны существовать на дате и иметь время
	byID := make(map[int64]*domain.TripItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	for _, id := range []int64{req.ItemID1, req.ItemID2} {
		item, ok := byID[id]
		if !ok {
			uc.logger.Warn("ResolveConflict: item id=%d not found on trip=%d date=%s",
				id, req.TripID, req.Date.Format(domain.DateFormat))
			return nil, ErrItemNotFound
		}
		if !item.IsScheduled() {
			uc.logger.Warn("ResolveConflict: item id=%d has no scheduled time", id)
			return nil, ErrItemNotScheduled
		}
	}

	// 4. Получаем длительности впечатлений (по одному запросу на experience)
	durations, err := uc.loadDurations(ctx, items)
	if err != nil {
		return nil, err
	}

	// 5. Для каждой позиции пары ищем самое раннее свободное окно,
	// исключая ее саму из занятых интервалов
	suggestions := make([]Suggestion, 0, 2)
	for _, id := range []int64{req.ItemID1, req.ItemID2} {
		proposed, err := uc.suggestFor(byID[id], items, durations)
		if err != nil {
			uc.logger.Error("ResolveConflict: failed to compute suggestion for item id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: failed to compute suggestion: %v", ErrInternal, err)
		}
		suggestions = append(suggestions, Suggestion{
			ItemID:            id,
			ProposedStartTime: proposed,
		})
	}

	uc.logger.Info("ResolveConflict: trip=%d, date=%s, suggestions computed",
		req.TripID, req.Date.Format(domain.DateFormat))

	return &Response{
		TripID:      req.TripID,
		Date:        req.Date,
		Suggestions: suggestions,
	}, nil
}

// suggestFor ищет новое время начала для moved среди занятых интервалов
// остальных позиций дня. nil без ошибки - свободного окна нет
func (uc *UseCase) suggestFor(
	moved *domain.TripItem,
	items []*domain.TripItem,
	durations map[int64]int,
) (*types.TimeString, error) {
	occupied := make([]interval, 0, len(items))

	for _, item := range items {
		if item.ID == moved.ID || !item.IsScheduled() {
			continue
		}

		start, err := item.StartTime.Minutes()
		if err != nil {
			return nil, err
		}

		occupied = append(occupied, interval{
			start: start,
			end:   start + durations[item.ExperienceID],
		})
	}

	minutes := findNextAvailableSlot(
		occupied,
		durations[moved.ExperienceID],
		domain.DayWindowStartMinutes,
		domain.DayWindowEndMinutes,
	)
	if minutes == nil {
		return nil, nil
	}

	ts, err := types.NewTimeStringFromMinutes(*minutes)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

// loadDurations загружает длительности впечатлений для позиций с назначенным
// временем. Длительности парсятся из человекочитаемых строк каталога
func (uc *UseCase) loadDurations(ctx context.Context, items []*domain.TripItem) (map[int64]int, error) {
	durations := make(map[int64]int)

	for _, item := range items {
		if !item.IsScheduled() {
			continue
		}
		if _, ok := durations[item.ExperienceID]; ok {
			continue
		}

		experience, err := uc.catalogClient.GetExperience(ctx, item.ExperienceID)
		if err != nil {
			if errors.Is(err, catalogClient.ErrExperienceNotFound) {
				uc.logger.Warn("ResolveConflict: experience id=%d not found", item.ExperienceID)
				return nil, ErrExperienceNotFound
			}
			uc.logger.Error("ResolveConflict: failed to get experience id=%d: %v", item.ExperienceID, err)
			return nil, fmt.Errorf("%w: failed to get experience: %v", ErrInternal, err)
		}

		minutes, err := duration.ParseToMinutes(experience.Duration)
		if err != nil {
			uc.logger.Error("ResolveConflict: unparseable duration %q for experience id=%d: %v",
				experience.Duration, item.ExperienceID, err)
			return nil, fmt.Errorf("%w: unparseable duration for experience %d: %v", ErrInternal, item.ExperienceID, err)
		}

		durations[item.ExperienceID] = minutes
	}

	return durations, nil
}
