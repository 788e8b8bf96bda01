package decrement_inventory

import (
	"context"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/service/inventory/models"
)

type InventoryService interface {
	DecrementAvailability(ctx context.Context, req *models.MutationRequest) (*models.DecrementResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
