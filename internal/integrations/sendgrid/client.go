package sendgrid

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.sendgrid.com/v3"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент SendGrid Mail Send API
type Client struct {
	baseURL    string
	apiKey     string
	fromEmail  string
	fromName   string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента SendGrid
func NewClient(apiKey, fromEmail, fromName string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   defaultBaseURL,
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendEmail отправляет письмо, опционально с вложением
func (c *Client) SendEmail(ctx context.Context, msg *Message) error {
	payload := mailSendRequest{
		Personalizations: []personalization{
			{To: []emailAddress{{Email: msg.To}}},
		},
		From: emailAddress{
			Email: c.fromEmail,
			Name:  c.fromName,
		},
		Subject: msg.Subject,
		Content: []content{
			{Type: "text/plain", Value: msg.Body},
		},
	}

	if msg.Attachment != nil {
		payload.Attachments = []attachment{
			{
				Content:     base64.StdEncoding.EncodeToString(msg.Attachment.Content),
				Type:        msg.Attachment.ContentType,
				Filename:    msg.Attachment.Filename,
				Disposition: "attachment",
			},
		}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/mail/send", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusAccepted, http.StatusOK:
		c.log.Info("sendgrid: mail accepted, to=%s, subject=%q", msg.To, msg.Subject)
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrSendFailed, resp.StatusCode, string(raw))
	}
}
