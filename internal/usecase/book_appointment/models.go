package book_appointment

import "time"

// Request модель запроса на создание записи
// CustomerPhone и RequestedStart обязательны; пустая строка в опциональных
// полях означает отсутствие значения
type Request struct {
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	Service         string
	RequestedStart  time.Time
	DurationMinutes int
	Notes           string
}

// Response модель ответа с созданной записью
// Идентификатор присвоен календарём; сервис не хранит собственной копии
type Response struct {
	EventID   string
	StartTime time.Time
	EndTime   time.Time
	Timezone  string
}
