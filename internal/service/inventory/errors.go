package inventory

import "errors"

var (
	// ErrInvalidCount возвращается при неположительном count
	ErrInvalidCount = errors.New("inventory: count must be a positive integer")

	// ErrInvalidCapacity возвращается при отрицательной вместимости создаваемого слота
	ErrInvalidCapacity = errors.New("inventory: total capacity must be non-negative")

	// ErrInsufficientInventory возвращается, когда декремент опустил бы
	// available_count ниже нуля. Терминальная ошибка для запроса - повтор не поможет
	ErrInsufficientInventory = errors.New("inventory: insufficient available inventory")

	// ErrSlotNotFound возвращается, когда слот не существует
	ErrSlotNotFound = errors.New("inventory: slot not found")

	// ErrHasExistingBookings возвращается при попытке удалить слот,
	// на который ссылаются confirmed/pending бронирования
	ErrHasExistingBookings = errors.New("inventory: slot has existing bookings")

	// ErrInternal возвращается при ошибках хранилища
	// Единственный класс, при котором вызывающему имеет смысл повторить запрос:
	// атомарный предикат заново проверит текущее состояние
	ErrInternal = errors.New("inventory: internal error")
)
