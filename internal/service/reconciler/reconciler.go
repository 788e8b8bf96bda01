package reconciler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
)

// Таймаут одного прохода сверки
const runTimeout = 2 * time.Minute

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListOutOfBounds(ctx context.Context) ([]*domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс метрик сверки
type Metrics interface {
	ObserveInvariantViolation()
}

// Reconciler фоновая сверка инварианта вместимости
//
// В норме проход не находит ничего: инвариант 0 <= available_count <=
// total_capacity держат CHECK-ограничение схемы и условные UPDATE.
// Найденные нарушения (ручная правка данных, миграция) уходят в лог
// ошибок и метрики; счетчики сверка не переписывает
type Reconciler struct {
	slotRepo SlotRepository
	logger   Logger
	metrics  Metrics // может быть nil, если метрики выключены

	cron *cron.Cron
}

// New создает сверку с указанным cron-расписанием
func New(slotRepo SlotRepository, schedule string, logger Logger, metrics Metrics) (*Reconciler, error) {
	r := &Reconciler{
		slotRepo: slotRepo,
		logger:   logger,
		metrics:  metrics,
		cron:     cron.New(),
	}

	if _, err := r.cron.AddFunc(schedule, r.runOnce); err != nil {
		return nil, err
	}

	return r, nil
}

// Start запускает планировщик
func (r *Reconciler) Start() {
	r.cron.Start()
	r.logger.Info("reconciler: started")
}

// Stop останавливает планировщик и дожидается завершения текущего прохода
func (r *Reconciler) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.logger.Info("reconciler: stopped")
}

func (r *Reconciler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	slots, err := r.slotRepo.ListOutOfBounds(ctx)
	if err != nil {
		r.logger.Error("reconciler: failed to list out-of-bounds slots: %v", err)
		return
	}

	if len(slots) == 0 {
		r.logger.Info("reconciler: all slots within capacity bounds")
		return
	}

	for _, s := range slots {
		r.logger.Error("reconciler: slot id=%d violates capacity invariant: available=%d, total=%d",
			s.ID, s.AvailableCount, s.TotalCapacity)
		if r.metrics != nil {
			r.metrics.ObserveInvariantViolation()
		}
	}
}
