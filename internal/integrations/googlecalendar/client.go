package googlecalendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://www.googleapis.com/calendar/v3"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Google Calendar API
// Вызывает REST API напрямую с Bearer-токеном; access token передается
// в каждый метод, обновлением токенов занимается oauth-сервис
type Client struct {
	baseURL    string
	calendarID string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Calendar API
func NewClient(calendarID string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		calendarID: calendarID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FreeBusy возвращает занятые интервалы календаря в диапазоне [timeMin, timeMax)
// Интервалы непрозрачны и могут пересекаться между собой
func (c *Client) FreeBusy(ctx context.Context, accessToken string, timeMin, timeMax time.Time) ([]TimePeriod, error) {
	reqBody := freeBusyRequest{
		TimeMin: timeMin.Format(time.RFC3339),
		TimeMax: timeMax.Format(time.RFC3339),
		Items:   []freeBusyCalendar{{ID: c.calendarID}},
	}

	var resp freeBusyResponse
	if err := c.do(ctx, accessToken, http.MethodPost, c.baseURL+"/freeBusy", reqBody, &resp); err != nil {
		return nil, err
	}

	info, ok := resp.Calendars[c.calendarID]
	if !ok {
		return nil, fmt.Errorf("%w: calendar %q missing from freeBusy response", ErrInvalidResponse, c.calendarID)
	}
	if len(info.Errors) > 0 {
		return nil, fmt.Errorf("%w: freeBusy reported %s/%s", ErrInvalidResponse, info.Errors[0].Domain, info.Errors[0].Reason)
	}

	periods := make([]TimePeriod, 0, len(info.Busy))
	for _, p := range info.Busy {
		start, err := time.Parse(time.RFC3339, p.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: bad busy start %q: %v", ErrInvalidResponse, p.Start, err)
		}
		end, err := time.Parse(time.RFC3339, p.End)
		if err != nil {
			return nil, fmt.Errorf("%w: bad busy end %q: %v", ErrInvalidResponse, p.End, err)
		}
		periods = append(periods, TimePeriod{Start: start, End: end})
	}

	return periods, nil
}

// InsertEvent создает событие в календаре и возвращает его с присвоенным ID
func (c *Client) InsertEvent(ctx context.Context, accessToken string, event *Event) (*Event, error) {
	endpoint := fmt.Sprintf("%s/calendars/%s/events", c.baseURL, url.PathEscape(c.calendarID))

	var created Event
	if err := c.do(ctx, accessToken, http.MethodPost, endpoint, event, &created); err != nil {
		return nil, err
	}

	if created.ID == "" {
		return nil, fmt.Errorf("%w: insert response has no event id", ErrInvalidResponse)
	}

	return &created, nil
}

// PatchEvent частично обновляет событие, ID события сохраняется
func (c *Client) PatchEvent(ctx context.Context, accessToken, eventID string, patch *Event) (*Event, error) {
	endpoint := fmt.Sprintf("%s/calendars/%s/events/%s",
		c.baseURL, url.PathEscape(c.calendarID), url.PathEscape(eventID))

	var updated Event
	if err := c.do(ctx, accessToken, http.MethodPatch, endpoint, patch, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteEvent удаляет событие из календаря
func (c *Client) DeleteEvent(ctx context.Context, accessToken, eventID string) error {
	endpoint := fmt.Sprintf("%s/calendars/%s/events/%s",
		c.baseURL, url.PathEscape(c.calendarID), url.PathEscape(eventID))

	return c.do(ctx, accessToken, http.MethodDelete, endpoint, nil, nil)
}

// do выполняет один запрос к Calendar API и декодирует ответ в out (если не nil)
func (c *Client) do(ctx context.Context, accessToken, method, endpoint string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound, http.StatusGone:
		return ErrEventNotFound
	default:
		raw, _ := io.ReadAll(resp.Body)
		var apiErr ErrorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, apiErr.Error.Message)
		}
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
