package find_slots

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SlotDurationMinutes < 0 {
		return fmt.Errorf("%w: slotDurationMin must be positive", ErrInvalidInput)
	}

	if req.Start != nil && req.End != nil && !req.End.After(*req.Start) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}

	return nil
}
