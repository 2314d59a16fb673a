package auth

import "strings"

// UserMessage maps an authentication error to a user-facing message by
// matching known error substrings, with the raw message as fallback.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "Invalid login credentials"):
		return "Invalid email or password"
	case strings.Contains(msg, "Email not confirmed"):
		return "Please confirm your email before logging in"
	case strings.Contains(msg, "already registered"):
		return "This email is already registered. Try logging in instead."
	default:
		return msg
	}
}
