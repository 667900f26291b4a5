package digest

import (
	"testing"
	"time"
)

func TestSubject_Weekdays(t *testing.T) {
	tests := []struct {
		day  time.Weekday
		want string
	}{
		{time.Monday, "GS-1 (History / Geography / Indian Society / Art & Culture)"},
		{time.Tuesday, "GS-2 (Polity / Governance / Social Justice / International Relations)"},
		{time.Wednesday, "GS-3 (Economy / S&T / Environment / DM / Security)"},
		{time.Thursday, "GS-4 (Ethics / Integrity / Aptitude / Case Studies)"},
	}

	for _, tt := range tests {
		t.Run(tt.day.String(), func(t *testing.T) {
			got, ok := Subject(tt.day)
			if !ok {
				t.Fatalf("Subject(%s) returned no subject", tt.day)
			}
			if got != tt.want {
				t.Errorf("Subject(%s) = %q, want %q", tt.day, got, tt.want)
			}
		})
	}
}

func TestSubject_NoRunDays(t *testing.T) {
	for _, day := range []time.Weekday{time.Friday, time.Saturday, time.Sunday} {
		if got, ok := Subject(day); ok {
			t.Errorf("Subject(%s) = %q, want no subject", day, got)
		}
	}
}

func TestQuote_DayOfMonthModFour(t *testing.T) {
	for day := 1; day <= 31; day++ {
		d := time.Date(2026, time.January, day, 12, 0, 0, 0, time.UTC)
		if got, want := Quote(d), quotes[day%4]; got != want {
			t.Errorf("Quote(day %d) = %q, want %q", day, got, want)
		}
	}
}

func TestQuote_IndependentOfMonthAndYear(t *testing.T) {
	a := Quote(time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC))
	b := Quote(time.Date(2031, time.November, 14, 23, 0, 0, 0, time.UTC))
	if a != b {
		t.Errorf("same day of month gave different quotes: %q vs %q", a, b)
	}
}

func TestHeader(t *testing.T) {
	d := time.Date(2026, time.October, 21, 9, 0, 0, 0, time.UTC)
	want := "🎯 *UPSC MAINS DAILY ANSWER WRITING*\n📅 Wednesday, 21 October 2026\n💡 _" + quotes[1] + "_\n\n"
	if got := Header(d); got != want {
		t.Errorf("Header() = %q, want %q", got, want)
	}
}
