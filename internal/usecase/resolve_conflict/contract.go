package resolve_conflict

import (
	"context"
	"time"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
	"github.com/5n10sndkts-eng/Pulau-sub002/internal/integrations/experiencecatalog"
)

// TripItemRepository интерфейс репозитория позиций маршрута
type TripItemRepository interface {
	GetByTripAndDate(ctx context.Context, tripID int64, date time.Time) ([]*domain.TripItem, error)
}

// ExperienceCatalogClient интерфейс клиента каталога впечатлений
type ExperienceCatalogClient interface {
	GetExperience(ctx context.Context, experienceID int64) (*experiencecatalog.Experience, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
