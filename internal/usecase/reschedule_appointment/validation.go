package reschedule_appointment

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AppointmentID == "" {
		return fmt.Errorf("%w: appointmentId is required", ErrMissingFields)
	}

	if req.NewStart.IsZero() {
		return fmt.Errorf("%w: newStartDateTimeISO is required", ErrMissingFields)
	}

	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration_minutes must be positive", ErrMissingFields)
	}

	return nil
}
