package cancel_appointment

// CancelRequest тело запроса POST /vapi/cancel
type CancelRequest struct {
	AppointmentID string `json:"appointmentId"`
	Reason        string `json:"reason,omitempty"`
}

// CancelResponse тело успешного ответа
type CancelResponse struct {
	Success bool `json:"success"`
}
