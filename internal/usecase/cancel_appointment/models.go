package cancel_appointment

// Request модель запроса на отмену записи
type Request struct {
	AppointmentID string
	Reason        string // Опционально, попадает в SMS владельцу
}
