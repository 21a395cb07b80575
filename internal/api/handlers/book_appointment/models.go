package book_appointment

// BookRequest тело запроса POST /vapi/book
type BookRequest struct {
	CustomerName     string `json:"customerName,omitempty"`
	CustomerPhone    string `json:"customerPhone"`
	CustomerEmail    string `json:"customerEmail,omitempty"`
	Service          string `json:"service,omitempty"`
	StartDateTimeISO string `json:"startDateTimeISO"`
	DurationMin      int    `json:"duration_minutes,omitempty"`
	Notes            string `json:"notes,omitempty"`
}

// BookResponse тело успешного ответа
type BookResponse struct {
	Success   bool   `json:"success"`
	EventID   string `json:"event_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Timezone  string `json:"timezone"`
}
