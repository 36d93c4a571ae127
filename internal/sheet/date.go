package sheet

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// euDate matches the sheet's day-first convention: d.m.yyyy, d/m/yy,
// d-m-yyyy, each with an optional hh:mm.
var euDate = regexp.MustCompile(`^(\d{1,2})[.\-/](\d{1,2})[.\-/](\d{2,4})(?:\s+(\d{1,2}):(\d{2}))?`)

// ParseDate parses a sheet date cell. ISO dates (2026-03-01, optionally with
// a time) and European day-first dates are accepted; two-digit years are
// 2000-based. Returns false for anything else.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if len(s) >= 10 && s[4] == '-' && s[7] == '-' {
		for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02 15:04", "2006-01-02"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		// Fall back to the date part alone.
		if t, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return t, true
		}
		return time.Time{}, false
	}

	m := euDate.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if year < 100 {
		year += 2000
	}
	hour, minute := 0, 0
	if m[4] != "" {
		hour, _ = strconv.Atoi(m[4])
		minute, _ = strconv.Atoi(m[5])
	}
	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC), true
}
