package view

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate reads an ISO-8601-like timestamp. Strings without a zone are
// taken as UTC. The second result is false for anything unparseable.
func ParseDate(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	defer func() {
		if r := recover(); r != nil {
			t, ok = time.Time{}, false
		}
	}()

	parsed, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
