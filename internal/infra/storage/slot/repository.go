package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/5n10sndkts-eng/Pulau-sub002/internal/domain"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/dbmetrics"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/psqlbuilder"
)

// Repository репозиторий для работы со слотами инвентаря
// Единственная точка изменения available_count в системе
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var slotColumns = []string{
	"id",
	"experience_id",
	"slot_date",
	"start_time",
	"total_capacity",
	"available_count",
	"created_at",
	"updated_at",
}

// Create создает новый слот
// available_count при создании равен total_capacity
func (r *Repository) Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slots").
		Columns(
			"experience_id",
			"slot_date",
			"start_time",
			"total_capacity",
			"available_count",
		).
		Values(
			s.ExperienceID,
			s.SlotDate,
			s.StartTime,
			s.TotalCapacity,
			s.TotalCapacity,
		).
		Suffix("RETURNING id, available_count, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.AvailableCount,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate получает слот по ID под блокировкой строки (FOR UPDATE)
// Используется внутри транзакции на критическом пути чекаута, когда помимо
// декремента нужны метаданные слота. Блокировка - способ получить согласованные
// метаданные, а не замена атомарному декременту
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Slot, error) {
	return r.get(ctx, id, true)
}

func (r *Repository) get(ctx context.Context, id int64, forUpdate bool) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"id": id})

	if forUpdate && dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.ExperienceID,
		&s.SlotDate,
		&s.StartTime,
		&s.TotalCapacity,
		&s.AvailableCount,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// DecrementAvailable атомарно уменьшает available_count на count
//
// Выполняется единственным условным UPDATE:
//
//	UPDATE slots SET available_count = available_count - $2
//	WHERE id = $1 AND available_count >= $2
//
// Предикат available_count >= count проверяется СУБД в том же неделимом шаге,
// что и запись, поэтому два конкурентных вызова не могут забрать одни и те же
// единицы вместимости. Чтение-проверка-запись на стороне приложения здесь
// запрещены
func (r *Repository) DecrementAvailable(ctx context.Context, id int64, count int) (newCount int, experienceID int64, err error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("available_count", squirrel.Expr("available_count - ?", count)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.GtOrEq{"available_count": count}).
		Suffix("RETURNING available_count, experience_id").
		ToSql()

	if err != nil {
		return 0, 0, fmt.Errorf("%w: DecrementAvailable - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&newCount, &experienceID)

	if errors.Is(err, sql.ErrNoRows) {
		// Предикат не прошел: либо слота нет, либо не хватает вместимости
		// Уточняем причину отдельным чтением текущего состояния
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			if errors.Is(getErr, ErrSlotNotFound) {
				return 0, 0, ErrSlotNotFound
			}
			return 0, 0, fmt.Errorf("%w: DecrementAvailable - resolve failed predicate: %v", ErrExecQuery, getErr)
		}
		return 0, 0, ErrInsufficientCapacity
	}
	if err != nil {
		return 0, 0, fmt.Errorf("%w: DecrementAvailable - execute update: %v", ErrExecQuery, err)
	}

	return newCount, experienceID, nil
}

// IncrementAvailableCapped атомарно увеличивает available_count на count,
// но не выше total_capacity. Возвращает новое и предыдущее значения, чтобы
// вызывающий мог вычислить фактически примененную дельту
//
// Предыдущее значение берется через self-join на старую версию строки:
//
//	UPDATE slots AS s
//	SET available_count = LEAST(s.total_capacity, s.available_count + $2)
//	FROM slots AS prev
//	WHERE s.id = $1 AND prev.id = s.id
//	RETURNING s.available_count, prev.available_count, s.experience_id
func (r *Repository) IncrementAvailableCapped(ctx context.Context, id int64, count int) (newCount int, prevCount int, experienceID int64, err error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots AS s").
		Set("available_count", squirrel.Expr("LEAST(s.total_capacity, s.available_count + ?)", count)).
		Set("updated_at", squirrel.Expr("NOW()")).
		From("slots AS prev").
		Where(squirrel.Expr("prev.id = s.id")).
		Where(squirrel.Eq{"s.id": id}).
		Suffix("RETURNING s.available_count, prev.available_count, s.experience_id").
		ToSql()

	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: IncrementAvailableCapped - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&newCount, &prevCount, &experienceID)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, 0, ErrSlotNotFound
	}
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: IncrementAvailableCapped - execute update: %v", ErrExecQuery, err)
	}

	return newCount, prevCount, experienceID, nil
}

// Delete удаляет слот
// Проверка отсутствия бронирований выполняется на уровне сервиса до вызова
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slots").
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
		return ErrSlotNotFound
	}

	return nil
}

// ListOutOfBounds возвращает слоты с нарушенным инвариантом вместимости
// (available_count вне [0, total_capacity]). При включенных CHECK-ограничениях
// схемы список должен быть пустым; используется фоновой сверкой
func (r *Repository) ListOutOfBounds(ctx context.Context) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Or{
			squirrel.Expr("available_count < 0"),
			squirrel.Expr("available_count > total_capacity"),
		}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListOutOfBounds - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOutOfBounds - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		var s domain.Slot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.ExperienceID,
			&s.SlotDate,
			&s.StartTime,
			&s.TotalCapacity,
			&s.AvailableCount,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListOutOfBounds - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time
		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOutOfBounds - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
