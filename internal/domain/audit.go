package domain

import "time"

// AuditLogEntry immutable record of one inventory mutation
// Создается ровно один раз на успешную мутацию, никогда не изменяется и не удаляется
type AuditLogEntry struct {
	ID                      int64
	SlotID                  int64
	ExperienceID            int64
	Delta                   int // Фактически примененное изменение (может быть меньше запрошенного при капе)
	ResultingAvailableCount int
	Actor                   string
	Reason                  string
	CreatedAt               time.Time
}

// Причины мутаций инвентаря для audit-записей
const (
	AuditReasonCheckout    = "checkout_decrement"
	AuditReasonRestore     = "inventory_restore"
	AuditReasonSlotCreated = "slot_created"
	AuditReasonSlotDeleted = "slot_deleted"
)
