package experiencecatalog

import "errors"

var (
	// ErrExperienceNotFound возвращается, когда впечатление не найдено в каталоге
	ErrExperienceNotFound = errors.New("experience not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("experiencecatalog client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от каталога
	ErrInvalidResponse = errors.New("experiencecatalog client: invalid response")
)
