package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
	slotRepo "github.com/5n10sndkts-eng/Pulau-sub002/internal/infra/storage/slot"
	"github.com/5n10sndkts-eng/Pulau-sub002/internal/service/inventory/models"
)

// Service единственная точка изменения available_count слотов
//
// Корректность под конкурентным доступом держится целиком на атомарном
// условном UPDATE в хранилище: никакой in-process блокировки между
// вызывающими нет, и последовательность "прочитать-решить-записать" в коде
// приложения для декремента не используется
type Service struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	audit       AuditRecorder
	txManager   TransactionManager
	logger      Logger
	metrics     Metrics // может быть nil, если метрики выключены
}

// NewService создает новый экземпляр сервиса инвентаря
func NewService(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	audit AuditRecorder,
	txManager TransactionManager,
	logger Logger,
	metrics Metrics,
) *Service {
	return &Service{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		audit:       audit,
		txManager:   txManager,
		logger:      logger,
		metrics:     metrics,
	}
}

// CreateSlot создает новый слот вместимости (действие вендора)
func (s *Service) CreateSlot(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("CreateSlot: experience=%d, date=%s, time=%s, capacity=%d",
		req.ExperienceID, req.SlotDate.Format(domain.DateFormat), req.StartTime, req.TotalCapacity)

	if req.TotalCapacity < 0 {
		s.logger.Warn("CreateSlot: negative capacity %d", req.TotalCapacity)
		return nil, ErrInvalidCapacity
	}
	if req.TotalCapacity > domain.MaxSlotCapacity {
		return nil, fmt.Errorf("%w: capacity above %d", ErrInvalidCapacity, domain.MaxSlotCapacity)
	}
	if err := req.StartTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCapacity, err)
	}

	created, err := s.slotRepo.Create(ctx, &domain.Slot{
		ExperienceID:  req.ExperienceID,
		SlotDate:      req.SlotDate,
		StartTime:     req.StartTime,
		TotalCapacity: req.TotalCapacity,
	})
	if err != nil {
		s.logger.Error("CreateSlot: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateSlot - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(&domain.AuditLogEntry{
		SlotID:                  created.ID,
		ExperienceID:            created.ExperienceID,
		Delta:                   created.AvailableCount,
		ResultingAvailableCount: created.AvailableCount,
		Actor:                   req.Actor,
		Reason:                  domain.AuditReasonSlotCreated,
	})

	s.logger.Info("CreateSlot: created slot id=%d", created.ID)
	return models.FromDomainSlot(created), nil
}

// GetSlot читает текущее состояние слота
// Используется вызывающими как сверочное чтение после таймаута,
// когда исход мутации неизвестен
func (s *Service) GetSlot(ctx context.Context, slotID int64) (*models.SlotResponse, error) {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetSlot: repository error for slot id=%d: %v", slotID, err)
		return nil, fmt.Errorf("%w: GetSlot - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSlot(slot), nil
}

// DecrementAvailability атомарно забирает count единиц вместимости слота
//
// Два конкурентных вызова не могут забрать одни и те же единицы: предикат
// available_count >= count проверяется хранилищем в том же неделимом шаге,
// что и запись. Проигравший получает ErrInsufficientInventory и неизменное
// состояние. Повтор после транспортной ошибки безопасен - предикат заново
// оценивает текущее состояние
func (s *Service) DecrementAvailability(ctx context.Context, req *models.MutationRequest) (*models.DecrementResult, error) {
	s.logger.Info("DecrementAvailability: slot=%d, count=%d, actor=%s", req.SlotID, req.Count, req.Actor)

	if req.Count <= 0 {
		s.logger.Warn("DecrementAvailability: invalid count=%d for slot=%d", req.Count, req.SlotID)
		s.observe("decrement", "invalid_count")
		return nil, ErrInvalidCount
	}

	newCount, experienceID, err := s.slotRepo.DecrementAvailable(ctx, req.SlotID, req.Count)
	if err != nil {
		return nil, s.mapDecrementError("decrement", req, err)
	}

	s.observe("decrement", "ok")
	s.recordMutation(req.SlotID, experienceID, -req.Count, newCount, req.Actor, domain.AuditReasonCheckout)

	s.logger.Info("DecrementAvailability: slot=%d decremented by %d, available=%d", req.SlotID, req.Count, newCount)
	return &models.DecrementResult{SlotID: req.SlotID, AvailableCount: newCount}, nil
}

// DecrementAvailabilityWithLock то же, что DecrementAvailability, но
// дополнительно возвращает метаданные слота, прочитанные под блокировкой
// строки в той же транзакции
//
// Используется на критическом пути чекаута, когда вызывающему помимо нового
// остатка нужны experience_id/дата/время слота. Блокировка - способ получить
// согласованные метаданные; реальную защиту от гонки дает тот же атомарный
// условный UPDATE, а не блокировка
func (s *Service) DecrementAvailabilityWithLock(ctx context.Context, req *models.MutationRequest) (*models.DecrementWithSlotResult, error) {
	s.logger.Info("DecrementAvailabilityWithLock: slot=%d, count=%d, actor=%s", req.SlotID, req.Count, req.Actor)

	if req.Count <= 0 {
		s.logger.Warn("DecrementAvailabilityWithLock: invalid count=%d for slot=%d", req.Count, req.SlotID)
		s.observe("decrement_locked", "invalid_count")
		return nil, ErrInvalidCount
	}

	var result *models.DecrementWithSlotResult

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Читаем строку под блокировкой ради метаданных
		slot, err := s.slotRepo.GetByIDForUpdate(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: DecrementAvailabilityWithLock - read slot: %v", ErrInternal, err)
		}

		// Сам декремент - тот же атомарный условный UPDATE
		newCount, _, err := s.slotRepo.DecrementAvailable(txCtx, req.SlotID, req.Count)
		if err != nil {
			if errors.Is(err, slotRepo.ErrInsufficientCapacity) {
				return ErrInsufficientInventory
			}
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: DecrementAvailabilityWithLock - decrement: %v", ErrInternal, err)
		}

		result = &models.DecrementWithSlotResult{Slot: slot, AvailableCount: newCount}
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			s.observe("decrement_locked", "not_found")
		case errors.Is(err, ErrInsufficientInventory):
			s.logger.Warn("DecrementAvailabilityWithLock: insufficient inventory for slot=%d count=%d", req.SlotID, req.Count)
			s.observe("decrement_locked", "insufficient")
		default:
			s.logger.Error("DecrementAvailabilityWithLock: slot=%d: %v", req.SlotID, err)
			s.observe("decrement_locked", "error")
		}
		return nil, err
	}

	s.observe("decrement_locked", "ok")
	s.recordMutation(req.SlotID, result.Slot.ExperienceID, -req.Count, result.AvailableCount, req.Actor, domain.AuditReasonCheckout)

	s.logger.Info("DecrementAvailabilityWithLock: slot=%d decremented by %d, available=%d",
		req.SlotID, req.Count, result.AvailableCount)
	return result, nil
}

// IncrementAvailability атомарно возвращает count единиц вместимости слота,
// не поднимая available_count выше total_capacity
//
// При срабатывании капа (например, возврат после частичной отмены поверх
// уже восстановленного инвентаря) применяется и записывается в журнал
// фактическая дельта, а не запрошенная
func (s *Service) IncrementAvailability(ctx context.Context, req *models.MutationRequest) (*models.IncrementResult, error) {
	s.logger.Info("IncrementAvailability: slot=%d, count=%d, actor=%s", req.SlotID, req.Count, req.Actor)

	if req.Count <= 0 {
		s.logger.Warn("IncrementAvailability: invalid count=%d for slot=%d", req.Count, req.SlotID)
		s.observe("increment", "invalid_count")
		return nil, ErrInvalidCount
	}

	newCount, prevCount, experienceID, err := s.slotRepo.IncrementAvailableCapped(ctx, req.SlotID, req.Count)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.observe("increment", "not_found")
			return nil, ErrSlotNotFound
		}
		s.logger.Error("IncrementAvailability: repository error for slot=%d: %v", req.SlotID, err)
		s.observe("increment", "error")
		return nil, fmt.Errorf("%w: IncrementAvailability - repository error: %v", ErrInternal, err)
	}

	appliedDelta := newCount - prevCount
	if appliedDelta < req.Count {
		s.logger.Warn("IncrementAvailability: slot=%d capped, requested=%d applied=%d",
			req.SlotID, req.Count, appliedDelta)
	}

	s.observe("increment", "ok")
	if appliedDelta != 0 {
		s.recordMutation(req.SlotID, experienceID, appliedDelta, newCount, req.Actor, domain.AuditReasonRestore)
	}

	s.logger.Info("IncrementAvailability: slot=%d incremented by %d, available=%d", req.SlotID, appliedDelta, newCount)
	return &models.IncrementResult{
		SlotID:         req.SlotID,
		AvailableCount: newCount,
		AppliedDelta:   appliedDelta,
	}, nil
}

// DeleteSlot удаляет слот, если на него не ссылается ни одно confirmed или
// pending бронирование (корреляция по experience + date + time)
func (s *Service) DeleteSlot(ctx context.Context, req *models.DeleteSlotRequest) error {
	s.logger.Info("DeleteSlot: slot=%d, actor=%s", req.SlotID, req.Actor)

	slot, err := s.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.observe("delete", "not_found")
			return ErrSlotNotFound
		}
		s.logger.Error("DeleteSlot: failed to read slot=%d: %v", req.SlotID, err)
		s.observe("delete", "error")
		return fmt.Errorf("%w: DeleteSlot - read slot: %v", ErrInternal, err)
	}

	// Guard: слот с активными бронированиями удалять нельзя
	hasBookings, err := s.bookingRepo.ExistsActiveForSlot(ctx, slot.ExperienceID, slot.SlotDate, slot.StartTime)
	if err != nil {
		s.logger.Error("DeleteSlot: booking existence check failed for slot=%d: %v", req.SlotID, err)
		s.observe("delete", "error")
		return fmt.Errorf("%w: DeleteSlot - booking existence check: %v", ErrInternal, err)
	}
	if hasBookings {
		s.logger.Warn("DeleteSlot: slot=%d has existing bookings, deletion blocked", req.SlotID)
		s.observe("delete", "has_bookings")
		return ErrHasExistingBookings
	}

	if err := s.slotRepo.Delete(ctx, req.SlotID); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.observe("delete", "not_found")
			return ErrSlotNotFound
		}
		s.logger.Error("DeleteSlot: failed to delete slot=%d: %v", req.SlotID, err)
		s.observe("delete", "error")
		return fmt.Errorf("%w: DeleteSlot - delete: %v", ErrInternal, err)
	}

	s.observe("delete", "ok")
	s.recordMutation(slot.ID, slot.ExperienceID, -slot.AvailableCount, 0, req.Actor, domain.AuditReasonSlotDeleted)

	s.logger.Info("DeleteSlot: slot=%d deleted", req.SlotID)
	return nil
}

// Вспомогательные методы

// mapDecrementError конвертирует ошибки репозитория в ошибки сервиса
// с логированием и метриками
func (s *Service) mapDecrementError(operation string, req *models.MutationRequest, err error) error {
	switch {
	case errors.Is(err, slotRepo.ErrSlotNotFound):
		s.logger.Warn("%s: slot=%d not found", operation, req.SlotID)
		s.observe(operation, "not_found")
		return ErrSlotNotFound
	case errors.Is(err, slotRepo.ErrInsufficientCapacity):
		s.logger.Warn("%s: insufficient inventory for slot=%d count=%d", operation, req.SlotID, req.Count)
		s.observe(operation, "insufficient")
		return ErrInsufficientInventory
	default:
		s.logger.Error("%s: repository error for slot=%d: %v", operation, req.SlotID, err)
		s.observe(operation, "error")
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, operation, err)
	}
}

// recordMutation ставит audit-запись в очередь (fire-and-forget)
func (s *Service) recordMutation(slotID, experienceID int64, delta, resulting int, actor, reason string) {
	s.audit.Record(&domain.AuditLogEntry{
		SlotID:                  slotID,
		ExperienceID:            experienceID,
		Delta:                   delta,
		ResultingAvailableCount: resulting,
		Actor:                   actor,
		Reason:                  reason,
	})
}

func (s *Service) observe(operation, result string) {
	if s.metrics != nil {
		s.metrics.ObserveInventoryMutation(operation, result)
	}
}
