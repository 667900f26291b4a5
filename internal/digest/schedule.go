package digest

import "time"

// subjects is the weekly rotation of General Studies papers. Friday through
// Sunday are absent: no post on those days.
var subjects = map[time.Weekday]string{
	time.Monday:    "GS-1 (History / Geography / Indian Society / Art & Culture)",
	time.Tuesday:   "GS-2 (Polity / Governance / Social Justice / International Relations)",
	time.Wednesday: "GS-3 (Economy / S&T / Environment / DM / Security)",
	time.Thursday:  "GS-4 (Ethics / Integrity / Aptitude / Case Studies)",
}

// Subject returns the paper scheduled for day, or false when nothing runs.
func Subject(day time.Weekday) (string, bool) {
	s, ok := subjects[day]
	return s, ok
}
