package send_message

// SendMessageRequest тело запроса POST /vapi/send-message
type SendMessageRequest struct {
	Channel string `json:"channel"`
	To      string `json:"to"`
	Message string `json:"message"`
	Subject string `json:"subject,omitempty"`
}

// SendMessageResponse тело успешного ответа
type SendMessageResponse struct {
	Success bool `json:"success"`
}
