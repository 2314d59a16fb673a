// Package forms holds the per-entity input schemas. Each form validates
// its fields on submit and produces a normalized payload; violations are
// reported per field and never reach the store.
package forms

import (
	"sort"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// FieldErrors maps field names to validation messages
type FieldErrors map[string]string

// Error implements the error interface
func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

// parseDate validates a date-only string in YYYY-MM-DD form
func parseDate(value string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, value)
	return t, err == nil
}

// validEmail is a deliberately small structural check: one @ with a
// dotted domain. Deliverability is not a client-side concern.
func validEmail(value string) bool {
	at := strings.Index(value, "@")
	if at <= 0 || at == len(value)-1 {
		return false
	}
	domain := value[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1 && !strings.Contains(domain, "@")
}

func optional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
