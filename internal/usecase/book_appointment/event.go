package book_appointment

import (
	"fmt"
	"strings"

	"github.com/echoassist/scheduling-service/pkg/phone"
)

// descriptionPreamble первая строка описания события
const descriptionPreamble = "Booked via Echo voice assistant"

// buildSummary собирает заголовок события: услуга, опционально с именем клиента
func buildSummary(req *Request) string {
	if req.CustomerName == "" {
		return req.Service
	}
	return fmt.Sprintf("%s - %s", req.Service, req.CustomerName)
}

// buildDescription собирает описание события из метаданных записи
// Строки идут в фиксированном порядке, каждая присутствует только при
// непустом исходном поле
func buildDescription(req *Request) string {
	lines := []string{descriptionPreamble}

	if req.CustomerName != "" {
		lines = append(lines, "Name: "+req.CustomerName)
	}
	if req.CustomerPhone != "" {
		lines = append(lines, "Phone: "+phone.Normalize(req.CustomerPhone))
	}
	if req.CustomerEmail != "" {
		lines = append(lines, "Email: "+req.CustomerEmail)
	}
	if req.Notes != "" {
		lines = append(lines, "Notes: "+req.Notes)
	}

	return strings.Join(lines, "\n")
}
