package googlecalendar

import "time"

// freeBusyRequest тело запроса freeBusy.query
type freeBusyRequest struct {
	TimeMin string             `json:"timeMin"`
	TimeMax string             `json:"timeMax"`
	Items   []freeBusyCalendar `json:"items"`
}

type freeBusyCalendar struct {
	ID string `json:"id"`
}

// freeBusyResponse ответ freeBusy.query
type freeBusyResponse struct {
	Calendars map[string]freeBusyCalendarInfo `json:"calendars"`
}

type freeBusyCalendarInfo struct {
	Busy   []timePeriodJSON `json:"busy"`
	Errors []apiError       `json:"errors,omitempty"`
}

type timePeriodJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type apiError struct {
	Domain string `json:"domain"`
	Reason string `json:"reason"`
}

// TimePeriod занятый интервал календаря
type TimePeriod struct {
	Start time.Time
	End   time.Time
}

// Event событие Google Calendar (подмножество полей, используемое сервисом)
type Event struct {
	ID          string         `json:"id,omitempty"`
	Summary     string         `json:"summary,omitempty"`
	Description string         `json:"description,omitempty"`
	Start       *EventDateTime `json:"start,omitempty"`
	End         *EventDateTime `json:"end,omitempty"`
	Attendees   []Attendee     `json:"attendees,omitempty"`
}

// EventDateTime время начала/окончания события
type EventDateTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone,omitempty"`
}

// Attendee участник события
type Attendee struct {
	Email string `json:"email"`
}

// ErrorResponse модель ошибки Calendar API
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
