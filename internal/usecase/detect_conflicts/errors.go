package detect_conflicts

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("detect_conflicts: invalid input data")

	// ErrExperienceNotFound возвращается, когда впечатление позиции
	// отсутствует в каталоге
	ErrExperienceNotFound = errors.New("detect_conflicts: experience not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("detect_conflicts: internal error")
)
