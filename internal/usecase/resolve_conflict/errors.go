package resolve_conflict

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("resolve_conflict: invalid input data")

	// ErrItemNotFound возвращается, когда позиция не найдена среди позиций
	// маршрута на указанную дату
	ErrItemNotFound = errors.New("resolve_conflict: trip item not found on this date")

	// ErrItemNotScheduled возвращается, когда у позиции нет назначенного времени
	ErrItemNotScheduled = errors.New("resolve_conflict: trip item has no scheduled time")

	// ErrExperienceNotFound возвращается, когда впечатление позиции
	// отсутствует в каталоге
	ErrExperienceNotFound = errors.New("resolve_conflict: experience not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("resolve_conflict: internal error")
)
