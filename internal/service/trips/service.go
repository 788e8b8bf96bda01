package trips

import (
	"context"
	"errors"
	"fmt"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
	tripItemRepo "github.com/5n10sndkts-eng/Pulau-sub002/internal/infra/storage/tripitem"
	catalogClient "github.com/5n10sndkts-eng/Pulau-sub002/internal/integrations/experiencecatalog"
	"github.com/5n10sndkts-eng/Pulau-sub002/internal/service/trips/models"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/duration"
)

// Service применяет выбранный вариант разрешения конфликта: перенос позиции
// на новое время или удаление позиции из маршрута
//
// Конфликты нигде не хранятся, поэтому "закрытия" конфликта как записи нет:
// мутация позиции сама по себе меняет результат следующего прогона детектора
type Service struct {
	tripItemRepo  TripItemRepository
	catalogClient ExperienceCatalogClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса маршрутов
func NewService(
	tripItemRepo TripItemRepository,
	catalogClient ExperienceCatalogClient,
	logger Logger,
) *Service {
	return &Service{
		tripItemRepo:  tripItemRepo,
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// RescheduleItem переносит позицию маршрута на новое время начала
// Новое время должно целиком помещать позицию в окно дня
func (s *Service) RescheduleItem(ctx context.Context, req *models.RescheduleRequest) error {
	s.logger.Info("RescheduleItem: trip=%d, item=%d, newTime=%s", req.TripID, req.ItemID, req.NewStartTime)

	if req.TripID <= 0 || req.ItemID <= 0 {
		return fmt.Errorf("%w: IDs must be positive", ErrInvalidInput)
	}
	if err := req.NewStartTime.Validate(); err != nil {
		s.logger.Warn("RescheduleItem: invalid time %q: %v", req.NewStartTime, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item, err := s.getOwnedItem(ctx, req.TripID, req.ItemID)
	if err != nil {
		return err
	}

	// Позиция на новом времени должна целиком лежать в окне дня
	if err := s.checkDayWindow(ctx, item, req); err != nil {
		return err
	}

	if err := s.tripItemRepo.UpdateStartTime(ctx, req.ItemID, req.NewStartTime); err != nil {
		if errors.Is(err, tripItemRepo.ErrItemNotFound) {
			return ErrItemNotFound
		}
		s.logger.Error("RescheduleItem: repository error for item id=%d: %v", req.ItemID, err)
		return fmt.Errorf("%w: RescheduleItem - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RescheduleItem: item id=%d moved to %s", req.ItemID, req.NewStartTime)
	return nil
}

// RemoveItem удаляет позицию из маршрута
func (s *Service) RemoveItem(ctx context.Context, req *models.RemoveRequest) error {
	s.logger.Info("RemoveItem: trip=%d, item=%d", req.TripID, req.ItemID)

	if req.TripID <= 0 || req.ItemID <= 0 {
		return fmt.Errorf("%w: IDs must be positive", ErrInvalidInput)
	}

	if _, err := s.getOwnedItem(ctx, req.TripID, req.ItemID); err != nil {
		return err
	}

	if err := s.tripItemRepo.Delete(ctx, req.ItemID); err != nil {
		if errors.Is(err, tripItemRepo.ErrItemNotFound) {
			return ErrItemNotFound
		}
		s.logger.Error("RemoveItem: repository error for item id=%d: %v", req.ItemID, err)
		return fmt.Errorf("%w: RemoveItem - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveItem: item id=%d removed", req.ItemID)
	return nil
}

// getOwnedItem читает позицию и проверяет принадлежность маршруту
// Чужая позиция сообщается как отсутствующая, чтобы не раскрывать ее наличие
func (s *Service) getOwnedItem(ctx context.Context, tripID, itemID int64) (*domain.TripItem, error) {
	item, err := s.tripItemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, tripItemRepo.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		s.logger.Error("getOwnedItem: repository error for item id=%d: %v", itemID, err)
		return nil, fmt.Errorf("%w: getOwnedItem - repository error: %v", ErrInternal, err)
	}

	if item.TripID != tripID {
		s.logger.Warn("getOwnedItem: item id=%d belongs to trip=%d, not trip=%d", itemID, item.TripID, tripID)
		return nil, ErrItemNotFound
	}

	return item, nil
}

// checkDayWindow проверяет, что позиция с новым временем целиком лежит
// в окне дня [06:00, 23:00)
func (s *Service) checkDayWindow(ctx context.Context, item *domain.TripItem, req *models.RescheduleRequest) error {
	experience, err := s.catalogClient.GetExperience(ctx, item.ExperienceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrExperienceNotFound) {
			s.logger.Warn("checkDayWindow: experience id=%d not found", item.ExperienceID)
			return ErrExperienceNotFound
		}
		s.logger.Error("checkDayWindow: failed to get experience id=%d: %v", item.ExperienceID, err)
		return fmt.Errorf("%w: checkDayWindow - failed to get experience: %v", ErrInternal, err)
	}

	durationMinutes, err := duration.ParseToMinutes(experience.Duration)
	if err != nil {
		s.logger.Error("checkDayWindow: unparseable duration %q for experience id=%d: %v",
			experience.Duration, item.ExperienceID, err)
		return fmt.Errorf("%w: checkDayWindow - unparseable duration: %v", ErrInternal, err)
	}

	startMinutes, err := req.NewStartTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if startMinutes < domain.DayWindowStartMinutes || startMinutes+durationMinutes > domain.DayWindowEndMinutes {
		s.logger.Warn("checkDayWindow: item id=%d at %s (+%d min) is outside the day window",
			item.ID, req.NewStartTime, durationMinutes)
		return ErrOutsideDayWindow
	}

	return nil
}
