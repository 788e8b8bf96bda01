package decrement_inventory_locked

import (
	"context"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/service/inventory/models"
)

type InventoryService interface {
	DecrementAvailabilityWithLock(ctx context.Context, req *models.MutationRequest) (*models.DecrementWithSlotResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
