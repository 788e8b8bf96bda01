package tripitem

import "errors"

var (
	// ErrItemNotFound возвращается, когда позиция маршрута не найдена
	ErrItemNotFound = errors.New("tripitem.repository: trip item not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tripitem.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tripitem.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tripitem.repository: failed to scan row")
)
