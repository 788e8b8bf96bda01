package audit

import (
	"context"
	"fmt"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/dbmetrics"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/psqlbuilder"
)

// Repository append-only репозиторий audit-журнала мутаций инвентаря
// Записи никогда не изменяются и не удаляются этим сервисом
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория audit-журнала
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет одну запись в журнал
// Вызывается из фонового писателя, не из транзакции мутации инвентаря:
// неудача записи не должна откатывать успешную мутацию
func (r *Repository) Append(ctx context.Context, entry *domain.AuditLogEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("audit_log").
		Columns(
			"slot_id",
			"experience_id",
			"delta",
			"resulting_available_count",
			"actor",
			"reason",
		).
		Values(
			entry.SlotID,
			entry.ExperienceID,
			entry.Delta,
			entry.ResultingAvailableCount,
			entry.Actor,
			entry.Reason,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
