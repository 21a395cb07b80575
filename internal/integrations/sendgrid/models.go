package sendgrid

// Message письмо для отправки
type Message struct {
	To         string
	Subject    string
	Body       string
	Attachment *Attachment
}

// Attachment вложение письма
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// mailSendRequest тело запроса v3 /mail/send
type mailSendRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             emailAddress      `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
	Attachments      []attachment      `json:"attachments,omitempty"`
}

type personalization struct {
	To []emailAddress `json:"to"`
}

type emailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type attachment struct {
	Content     string `json:"content"` // base64
	Type        string `json:"type"`
	Filename    string `json:"filename"`
	Disposition string `json:"disposition"`
}
