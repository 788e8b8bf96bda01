package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/dbmetrics"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/psqlbuilder"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/types"
)

// Repository read-only репозиторий бронирований
// Сервису инвентаря нужна единственная проверка: есть ли активные бронирования,
// ссылающиеся на слот (по корреляции experience + date + time)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ExistsActiveForSlot возвращает true, если есть хотя бы одно confirmed или
// pending бронирование на указанные experience + date + time
// Используется как guard перед удалением слота
func (r *Repository) ExistsActiveForSlot(ctx context.Context, experienceID int64, date time.Time, startTime types.TimeString) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{"experience_id": experienceID}).
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.Eq{"start_time": startTime}).
		Where(squirrel.Eq{"status": activeStatusStrings}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsActiveForSlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: ExistsActiveForSlot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	exists := rows.Next()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("%w: ExistsActiveForSlot - rows error: %v", ErrScanRow, err)
	}

	return exists, nil
}
