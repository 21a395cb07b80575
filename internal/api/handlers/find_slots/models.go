package find_slots

// FindSlotsRequest тело запроса POST /vapi/find-slots
// Все поля опциональны: по умолчанию используется окно в две недели от текущего момента
type FindSlotsRequest struct {
	StartDateTimeISO string `json:"startDateTimeISO,omitempty"`
	EndDateTimeISO   string `json:"endDateTimeISO,omitempty"`
	SlotDurationMin  int    `json:"slotDurationMin,omitempty"`
}

// SlotView слот в ответе, время в таймзоне бизнеса
type SlotView struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FindSlotsResponse тело успешного ответа
type FindSlotsResponse struct {
	Success  bool       `json:"success"`
	Slots    []SlotView `json:"slots"`
	Timezone string     `json:"timezone"`
}
