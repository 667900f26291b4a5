package digest

import "time"

var quotes = [...]string{
	"Success is the sum of small efforts, repeated day in and day out.",
	"Discipline is choosing between what you want now and what you want most.",
	"The expert in anything was once a beginner.",
	"Write every day. Answers get better only by writing them.",
}

// Quote picks the quote for t's day of month. Month and year do not matter.
func Quote(t time.Time) string {
	return quotes[t.Day()%len(quotes)]
}
