package util

import "strings"

// NormalizePhone converts a locally formatted number into E.164-like form.
// Numbers already carrying a leading + pass through unchanged; otherwise
// leading zeros are stripped and the country calling code is prepended.
func NormalizePhone(phone, countryCode string) string {
	trimmed := strings.TrimSpace(phone)
	if strings.HasPrefix(trimmed, "+") {
		return trimmed
	}
	return countryCode + strings.TrimLeft(trimmed, "0")
}

// NormalizeEmail lowercases and trims an email address so lookups and stored
// records agree on one canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
