package sheet

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2026-03-01", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"2026-03-01 18:30", time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC), true},
		{"2026-03-01 18:30:45", time.Date(2026, 3, 1, 18, 30, 45, 0, time.UTC), true},
		{"01.03.2026", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"1.3.2026", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"01/03/2026", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"01-03-2026", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"1.3.26", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), true}, // 2-digit year
		{"01.03.2026 18:30", time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC), true},
		{"", time.Time{}, false},
		{"Match 4", time.Time{}, false},
		{"32.01.2026", time.Time{}, false}, // day out of range
		{"01.13.2026", time.Time{}, false}, // month out of range
		{"01.03.2026 25:00", time.Time{}, false},
	}
	for _, c := range cases {
		got, ok := ParseDate(c.in)
		if ok != c.ok {
			t.Errorf("ParseDate(%q): ok=%v, want %v", c.in, ok, c.ok)
			continue
		}
		if ok && !got.Equal(c.want) {
			t.Errorf("ParseDate(%q): got %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseDateOrdering(t *testing.T) {
	// Mixed formats still order correctly.
	a, _ := ParseDate("01.03.2026")
	b, _ := ParseDate("2026-03-02")
	if !b.After(a) {
		t.Errorf("want %v after %v", b, a)
	}
}
