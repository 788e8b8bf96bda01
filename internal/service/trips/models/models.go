package models

import (
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/types"
)

// RescheduleRequest запрос на перенос позиции маршрута на новое время
type RescheduleRequest struct {
	TripID       int64            // Маршрут, которому должна принадлежать позиция
	ItemID       int64            // Переносимая позиция
	NewStartTime types.TimeString // Новое время начала
}

// RemoveRequest запрос на удаление позиции из маршрута
type RemoveRequest struct {
	TripID int64 // Маршрут, которому должна принадлежать позиция
	ItemID int64 // Удаляемая позиция
}
