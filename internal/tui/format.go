package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/thomaskoefod/devarticles/internal/view"
)

var germanMonths = [...]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// Initials returns the upper-cased first letters of the first two words of name.
func Initials(name string) string {
	var b strings.Builder
	for i, word := range strings.Fields(name) {
		if i == 2 {
			break
		}
		r := []rune(word)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// FormatDate renders s as a long German date ("15. Januar 2025") in loc.
// Unparseable input yields invalid.
func FormatDate(s string, loc *time.Location, invalid string) string {
	t, ok := view.ParseDate(s)
	if !ok {
		return invalid
	}
	if loc != nil {
		t = t.In(loc)
	}
	return fmt.Sprintf("%d. %s %d", t.Day(), germanMonths[t.Month()-1], t.Year())
}
