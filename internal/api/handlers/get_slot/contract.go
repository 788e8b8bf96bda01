package get_slot

import (
	"context"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/service/inventory/models"
)

type InventoryService interface {
	GetSlot(ctx context.Context, slotID int64) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
