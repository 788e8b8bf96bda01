package trips

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("trips: invalid input data")

	// ErrItemNotFound возвращается, когда позиция не найдена или не
	// принадлежит указанному маршруту
	ErrItemNotFound = errors.New("trips: trip item not found")

	// ErrOutsideDayWindow возвращается, когда новое время не помещает
	// позицию целиком в окно дня
	ErrOutsideDayWindow = errors.New("trips: item does not fit into the day window")

	// ErrExperienceNotFound возвращается, когда впечатление позиции
	// отсутствует в каталоге
	ErrExperienceNotFound = errors.New("trips: experience not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("trips: internal error")
)
