package sendgrid

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(serverURL string) *Client {
	c := NewClient("key", "no-reply@glow.example", "Glow Salon", 5*time.Second, nopLogger{})
	c.baseURL = serverURL
	return c
}

func TestSendEmail_Success(t *testing.T) {
	var got mailSendRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/mail/send", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).SendEmail(context.Background(), &Message{
		To:      "jane@example.com",
		Subject: "Appointment confirmation",
		Body:    "See you Monday.",
	})

	require.NoError(t, err)
	require.Len(t, got.Personalizations, 1)
	assert.Equal(t, "jane@example.com", got.Personalizations[0].To[0].Email)
	assert.Equal(t, "no-reply@glow.example", got.From.Email)
	assert.Equal(t, "Glow Salon", got.From.Name)
	assert.Equal(t, "Appointment confirmation", got.Subject)
	require.Len(t, got.Content, 1)
	assert.Equal(t, "text/plain", got.Content[0].Type)
	assert.Empty(t, got.Attachments)
}

func TestSendEmail_AttachmentIsBase64(t *testing.T) {
	var got mailSendRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	invite := []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")
	err := newTestClient(srv.URL).SendEmail(context.Background(), &Message{
		To:      "jane@example.com",
		Subject: "Confirmation",
		Body:    "body",
		Attachment: &Attachment{
			Filename:    "invite.ics",
			ContentType: "text/calendar",
			Content:     invite,
		},
	})

	require.NoError(t, err)
	require.Len(t, got.Attachments, 1)
	assert.Equal(t, "invite.ics", got.Attachments[0].Filename)
	assert.Equal(t, "text/calendar", got.Attachments[0].Type)
	assert.Equal(t, "attachment", got.Attachments[0].Disposition)
	assert.Equal(t, base64.StdEncoding.EncodeToString(invite), got.Attachments[0].Content)
}

func TestSendEmail_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).SendEmail(context.Background(), &Message{To: "jane@example.com"})

	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestSendEmail_BadRequestIsSendFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors": [{"message": "does not contain a valid address"}]}`))
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).SendEmail(context.Background(), &Message{To: "bogus"})

	require.ErrorIs(t, err, ErrSendFailed)
}
