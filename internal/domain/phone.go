package domain

import "strings"

// NormalizePhone приводит номер телефона к виду +<код страны><номер>.
// Удаляются все символы кроме цифр и '+', ведущая 8 у 11-значного номера
// заменяется на +7, 10-значный номер получает префикс +7, 11-значный номер
// с ведущей 7 получает префикс +.
func NormalizePhone(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	s := b.String()

	hasPlus := strings.HasPrefix(s, "+")
	digits := strings.TrimPrefix(s, "+")
	if strings.Contains(digits, "+") {
		return "", ErrInvalidPhone
	}

	if !hasPlus {
		switch {
		case len(digits) == 11 && digits[0] == '8':
			digits = "7" + digits[1:]
		case len(digits) == 10:
			digits = "7" + digits
		}
	}

	if len(digits) < 11 || len(digits) > 15 {
		return "", ErrInvalidPhone
	}

	return "+" + digits, nil
}
