// Package validation sanitizes untrusted text before it is embedded in an
// error message or log line. Share strings and secret text arrive from
// whatever transport the caller chose (file, pasted input, database row)
// and are never trusted to be printable.
package validation

import "strings"

// SanitizeForLog strips control characters and null bytes from s and caps
// its length, so that a malformed share string embedded in an error or log
// line cannot inject terminal escapes or newlines into the log stream.
func SanitizeForLog(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, s)

	const maxLen = 256
	if len(s) > maxLen {
		s = s[:maxLen] + "...[truncated]"
	}

	return s
}
