package reschedule_appointment

// RescheduleRequest тело запроса POST /vapi/reschedule
type RescheduleRequest struct {
	AppointmentID       string `json:"appointmentId"`
	NewStartDateTimeISO string `json:"newStartDateTimeISO"`
	DurationMin         int    `json:"duration_minutes,omitempty"`
	Notes               string `json:"notes,omitempty"`
}

// RescheduleResponse тело успешного ответа
type RescheduleResponse struct {
	Success   bool   `json:"success"`
	EventID   string `json:"event_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Timezone  string `json:"timezone"`
}
