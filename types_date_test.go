package tradebook

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2025-07-03", NewDate(2025, time.July, 3), false},
		{"2025-7-3", NewDate(2025, time.July, 3), false},
		// Older exports stored dates with a time part; only the day matters.
		{"2025-07-03T14:30", NewDate(2025, time.July, 3), false},
		{"2025-07-03T14:30:00.000Z", NewDate(2025, time.July, 3), false},
		{" 2025-07-03 ", NewDate(2025, time.July, 3), false},
		{"", Date{}, true},
		{"T14:30", Date{}, true},
		{"03/07/2025", Date{}, true},
		{"2025-13-01", Date{}, true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) expected an error, got %s", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDate_StartOfEndOf(t *testing.T) {
	d := NewDate(2025, time.August, 20) // a Wednesday

	testCases := []struct {
		period    Period
		wantStart Date
		wantEnd   Date
	}{
		{Daily, d, d},
		{Weekly, NewDate(2025, time.August, 18), NewDate(2025, time.August, 24)},
		{Monthly, NewDate(2025, time.August, 1), NewDate(2025, time.August, 31)},
		{Quarterly, NewDate(2025, time.July, 1), NewDate(2025, time.September, 30)},
		{Yearly, NewDate(2025, time.January, 1), NewDate(2025, time.December, 31)},
	}
	for _, tc := range testCases {
		if got := d.StartOf(tc.period); got != tc.wantStart {
			t.Errorf("StartOf(%s) = %s, want %s", tc.period, got, tc.wantStart)
		}
		if got := d.EndOf(tc.period); got != tc.wantEnd {
			t.Errorf("EndOf(%s) = %s, want %s", tc.period, got, tc.wantEnd)
		}
	}
}

func TestDate_AddNormalizes(t *testing.T) {
	d := NewDate(2025, time.January, 31)
	if got := d.Add(1); got != NewDate(2025, time.February, 1) {
		t.Errorf("Add(1) = %s", got)
	}
	if got := d.Add(-31); got != NewDate(2024, time.December, 31) {
		t.Errorf("Add(-31) = %s", got)
	}
}

func TestRange_Contains(t *testing.T) {
	from := NewDate(2025, time.February, 1)
	to := NewDate(2025, time.February, 28)
	r := NewRange(from, to)

	if !r.Contains(from) || !r.Contains(to) {
		t.Errorf("range bounds should be inclusive")
	}
	if !r.Contains(NewDate(2025, time.February, 14)) {
		t.Errorf("mid-range date should be contained")
	}
	if r.Contains(NewDate(2025, time.January, 31)) || r.Contains(NewDate(2025, time.March, 1)) {
		t.Errorf("dates outside the range should not be contained")
	}

	// Zero bounds leave the range open on that side.
	open := Range{To: to}
	if !open.Contains(NewDate(2000, time.January, 1)) {
		t.Errorf("open start should contain any earlier date")
	}
}

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{"day", Daily, false},
		{"week", Weekly, false},
		{"month", Monthly, false},
		{"quarter", Quarterly, false},
		{"year", Yearly, false},
		{"fortnight", 0, true},
	}
	for _, tc := range testCases {
		got, err := ParsePeriod(tc.in)
		if tc.wantErr != (err != nil) {
			t.Errorf("ParsePeriod(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
