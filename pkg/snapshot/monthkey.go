package snapshot

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/tenantops/dugrow/pkg/errors"
)

// MonthKey identifies one calendar month. It namespaces snapshot
// files and report periods as "YYYY-MM".
type MonthKey struct {
	Year  int
	Month time.Month
}

var monthKeyPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// KeyFor returns the MonthKey of the calendar month containing t.
func KeyFor(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// ParseMonthKey parses a "YYYY-MM" string.
func ParseMonthKey(s string) (MonthKey, error) {
	m := monthKeyPattern.FindStringSubmatch(s)
	if m == nil {
		return MonthKey{}, errors.Newf(errors.ErrInvalidInput, "invalid month key %q, expected YYYY-MM", s)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return MonthKey{}, errors.Newf(errors.ErrInvalidInput, "invalid month %02d in month key %q", month, s)
	}
	return MonthKey{Year: year, Month: time.Month(month)}, nil
}

// String renders the key as "YYYY-MM".
func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

// Prev returns the key exactly one calendar month earlier. January
// rolls over to December of the prior year; this is calendar
// arithmetic, not "30 days ago".
func (k MonthKey) Prev() MonthKey {
	if k.Month == time.January {
		return MonthKey{Year: k.Year - 1, Month: time.December}
	}
	return MonthKey{Year: k.Year, Month: k.Month - 1}
}

// IsZero reports whether the key is the zero value.
func (k MonthKey) IsZero() bool {
	return k.Year == 0 && k.Month == 0
}
