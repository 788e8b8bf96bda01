package detect_conflicts

import (
	"context"
	"errors"
	"fmt"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
	catalogClient "github.com/5n10sndkts-eng/Pulau-sub002/internal/integrations/experiencecatalog"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/duration"
)

// UseCase use case поиска конфликтов расписания в пределах одного дня маршрута
//
// Чистая проекция: берет снимок позиций на дату, ничего не мутирует
// и не сохраняет. Безопасно запускать конкурентно и многократно
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

// Execute выполняет поиск конфликтов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DetectConflicts: trip=%d, date=%s", req.TripID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("DetectConflicts: validation failed: %v", err)
		return nil, err
	}

	// 2. Берем снимок позиций маршрута на дату
	items, err := uc.tripItemRepo.GetByTripAndDate(ctx, req.TripID, req.Date)
	if err != nil {
		uc.logger.Error("DetectConflicts: failed to get trip items: %v", err)
		return nil, fmt.Errorf("%w: failed to get trip items: %v", ErrInternal, err)
	}

	// 3. Получаем длительности впечатлений (по одному запросу на experience)
	durations, err := uc.loadDurations(ctx, items)
	if err != nil {
		return nil, err
	}

	// 4. Приводим позиции к занятым интервалам (позиции без времени выпадают)
	scheduled, err := buildScheduledItems(items, durations)
	if err != nil {
		uc.logger.Error("DetectConflicts: failed to build intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to build intervals: %v", ErrInternal, err)
	}

	// 5. Попарная проверка пересечений
	conflicts := findOverlaps(scheduled)

	uc.logger.Info("DetectConflicts: trip=%d, date=%s, %d scheduled items, %d conflicts",
		req.TripID, req.Date.Format(domain.DateFormat), len(scheduled), len(conflicts))

	return &Response{
		TripID:    req.TripID,
		Date:      req.Date,
		Conflicts: conflicts,
	}, nil
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
				uc.logger.Warn("DetectConflicts: experience id=%d not found", item.ExperienceID)
				return nil, ErrExperienceNotFound
			}
			uc.logger.Error("DetectConflicts: failed to get experience id=%d: %v", item.ExperienceID, err)
			return nil, fmt.Errorf("%w: failed to get experience: %v", ErrInternal, err)
		}

		minutes, err := duration.ParseToMinutes(experience.Duration)
		if err != nil {
			uc.logger.Error("DetectConflicts: unparseable duration %q for experience id=%d: %v",
				experience.Duration, item.ExperienceID, err)
			return nil, fmt.Errorf("%w: unparseable duration for experience %d: %v", ErrInternal, item.ExperienceID, err)
		}

		durations[item.ExperienceID] = minutes
	}

	return durations, nil
}
