package create_slot

import (
	"context"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/service/inventory/models"
)

type InventoryService interface {
	CreateSlot(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
