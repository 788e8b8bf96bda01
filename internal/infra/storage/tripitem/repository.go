package tripitem

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/dbmetrics"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/psqlbuilder"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/types"
)

// Repository репозиторий для работы с позициями маршрута
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория позиций маршрута
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var itemColumns = []string{
	"id",
	"trip_id",
	"experience_id",
	"item_date",
	"start_time",
	"guests",
	"total_price",
	"created_at",
	"updated_at",
}

// Create создает новую позицию маршрута
func (r *Repository) Create(ctx context.Context, item *domain.TripItem) (*domain.TripItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("trip_items").
		Columns(
			"trip_id",
			"experience_id",
			"item_date",
			"start_time",
			"guests",
			"total_price",
		).
		Values(
			item.TripID,
			item.ExperienceID,
			item.ItemDate,
			item.StartTime,
			item.Guests,
			item.TotalPrice,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&item.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time

	return item, nil
}

// GetByID получает позицию маршрута по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TripItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(itemColumns...).
		From("trip_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	item, err := r.scanItem(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan item: %v", ErrScanRow, err)
	}

	return item, nil
}

// GetByTripAndDate получает все позиции маршрута на указанную дату,
// отсортированные по времени начала (позиции без времени - в конце)
func (r *Repository) GetByTripAndDate(ctx context.Context, tripID int64, date time.Time) ([]*domain.TripItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(itemColumns...).
		From("trip_items").
		Where(squirrel.Eq{"trip_id": tripID}).
		Where(squirrel.Eq{"item_date": date}).
		OrderBy("start_time ASC NULLS LAST, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTripAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTripAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.TripItem, 0)
	for rows.Next() {
		item, err := r.scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByTripAndDate - scan row: %v", ErrScanRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByTripAndDate - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// UpdateStartTime переписывает время начала позиции маршрута
// Используется при применении решения конфликта ("передвинуть позицию")
func (r *Repository) UpdateStartTime(ctx context.Context, id int64, startTime types.TimeString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("trip_items").
		Set("start_time", startTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStartTime - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStartTime - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStartTime - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// Delete удаляет позицию маршрута
// Используется при применении решения конфликта ("убрать позицию")
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("trip_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanItem сканирует одну строку в domain.TripItem
func (r *Repository) scanItem(row rowScanner) (*domain.TripItem, error) {
	var item domain.TripItem
	var startTime sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&item.ID,
		&item.TripID,
		&item.ExperienceID,
		&item.ItemDate,
		&startTime,
		&item.Guests,
		&item.TotalPrice,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if startTime.Valid {
		ts := types.TimeString(startTime.String)
		item.StartTime = &ts
	}

	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time

	return &item, nil
}
