package audit

import (
	"context"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
)

// AuditRepository интерфейс append-only хранилища audit-журнала
type AuditRepository interface {
	Append(ctx context.Context, entry *domain.AuditLogEntry) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс метрик audit-журнала
type Metrics interface {
	ObserveAuditWrite(result string)
	ObserveAuditDropped()
}
