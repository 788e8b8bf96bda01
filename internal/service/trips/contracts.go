package trips

import (
	"context"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
	"github.com/5n10sndkts-eng/Pulau-sub002/internal/integrations/experiencecatalog"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/types"
)

// TripItemRepository интерфейс репозитория позиций маршрута
type TripItemRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TripItem, error)
	UpdateStartTime(ctx context.Context, id int64, startTime types.TimeString) error
	Delete(ctx context.Context, id int64) error
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
