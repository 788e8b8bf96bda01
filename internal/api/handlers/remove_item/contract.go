package remove_item

import (
	"context"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/service/trips/models"
)

type TripsService interface {
	RemoveItem(ctx context.Context, req *models.RemoveRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
