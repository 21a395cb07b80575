package book_appointment

import "fmt"

// validateRequest валидирует входные данные запроса
// Ошибки валидации возвращаются до любого внешнего вызова
func validateRequest(req *Request) error {
	if req.CustomerPhone == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrMissingFields)
	}

	if req.RequestedStart.IsZero() {
		return fmt.Errorf("%w: requestedStart is required", ErrMissingFields)
	}

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrMissingFields)
	}

	return nil
}
