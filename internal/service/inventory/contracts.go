package inventory

import (
	"context"
	"time"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/types"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error)
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Slot, error)
	DecrementAvailable(ctx context.Context, id int64, count int) (newCount int, experienceID int64, err error)
	IncrementAvailableCapped(ctx context.Context, id int64, count int) (newCount int, prevCount int, experienceID int64, err error)
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс проверки существования бронирований
type BookingRepository interface {
	ExistsActiveForSlot(ctx context.Context, experienceID int64, date time.Time, startTime types.TimeString) (bool, error)
}

// AuditRecorder интерфейс асинхронного audit-журнала
// Вызов не блокируется и не возвращает ошибку: неудача записи журнала
// не является неудачей мутации инвентаря
type AuditRecorder interface {
	Record(entry *domain.AuditLogEntry)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс метрик мутаций инвентаря
type Metrics interface {
	ObserveInventoryMutation(operation, result string)
}
