// Package ics собирает iCalendar-документ (RFC 5545) для одного события.
// Используется как вложение к письму с подтверждением записи.
package ics

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	prodID = "-//Echo Scheduling//Appointment//EN"

	// Формат даты-времени в UTC по RFC 5545
	dateTimeFormat = "20060102T150405Z"
)

// Event одно событие календаря
type Event struct {
	UID         string
	CreatedAt   time.Time
	Start       time.Time
	End         time.Time
	Summary     string
	Location    string
	Description string
}

// NewUID генерирует уникальный идентификатор события
func NewUID() string {
	return uuid.NewString() + "@echo-scheduling"
}

// Build сериализует событие в текст iCalendar
// Строки разделяются CRLF, значения текстовых свойств экранируются по RFC 5545
func Build(ev Event) []byte {
	var b strings.Builder

	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:"+prodID)
	writeLine(&b, "CALSCALE:GREGORIAN")
	writeLine(&b, "METHOD:REQUEST")
	writeLine(&b, "BEGIN:VEVENT")
	writeLine(&b, "UID:"+ev.UID)
	writeLine(&b, "DTSTAMP:"+ev.CreatedAt.UTC().Format(dateTimeFormat))
	writeLine(&b, "DTSTART:"+ev.Start.UTC().Format(dateTimeFormat))
	writeLine(&b, "DTEND:"+ev.End.UTC().Format(dateTimeFormat))
	writeLine(&b, "SUMMARY:"+EscapeText(ev.Summary))
	if ev.Location != "" {
		writeLine(&b, "LOCATION:"+EscapeText(ev.Location))
	}
	if ev.Description != "" {
		writeLine(&b, "DESCRIPTION:"+EscapeText(ev.Description))
	}
	writeLine(&b, "END:VEVENT")
	writeLine(&b, "END:VCALENDAR")

	return []byte(b.String())
}

// EscapeText экранирует спецсимволы текстового значения по RFC 5545:
// обратный слеш, точка с запятой, запятая и перевод строки
func EscapeText(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\r\n", `\n`,
		"\n", `\n`,
	)
	return r.Replace(s)
}

func writeLine(b *strings.Builder, line string) {
	b.WriteString(line)
	b.WriteString("\r\n")
}
