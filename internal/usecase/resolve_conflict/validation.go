package resolve_conflict

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TripID <= 0 {
		return fmt.Errorf("%w: tripID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ItemID1 <= 0 || req.ItemID2 <= 0 {
		return fmt.Errorf("%w: item IDs must be positive", ErrInvalidInput)
	}

	if req.ItemID1 == req.ItemID2 {
		return fmt.Errorf("%w: item IDs must differ", ErrInvalidInput)
	}

	return nil
}
