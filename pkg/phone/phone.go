package phone

import "strings"

// Normalize приводит телефонный номер к формату E.164 для северо-американского
// плана нумерации (NANP). Все нецифровые символы отбрасываются; если оставшиеся
// цифры начинаются с кода страны "1", добавляется префикс "+", иначе "+1".
//
// Это осознанное ограничение: сервис работает только с номерами США/Канады.
func Normalize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if digits == "" {
		return ""
	}

	if strings.HasPrefix(digits, "1") {
		return "+" + digits
	}
	return "+1" + digits
}
