// Package headlines collects short topical headlines that seed the day's
// prompt. Every failure collapses into a fixed fallback string, so callers
// always get usable context.
package headlines

import (
	"context"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"
)

// maxTopics is how many headlines make it into the context string.
const maxTopics = 3

type Fetcher interface {
	// Fetch returns up to three headlines joined by ", ", or Fallback(subject).
	Fetch(ctx context.Context, subject string) string
}

type SourceConfig struct {
	UserAgent string        // sent on every request; some sites block Go's default
	Timeout   time.Duration // whole-request deadline
	MinLength int           // headlines must be longer than this many characters
	Client    *http.Client
}

func DefaultSourceConfig() SourceConfig {
	timeout := 15 * time.Second
	return SourceConfig{
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36",
		Timeout:   timeout,
		MinLength: 20,
		Client:    &http.Client{Timeout: timeout},
	}
}

// Fallback is the context used whenever no headline could be collected.
// Timeouts, HTTP errors and empty pages all map here.
func Fallback(subject string) string {
	return "Recent issues in " + subject
}

// keep filters candidate texts in order, returning at most maxTopics whose
// trimmed length exceeds minLength.
func keep(texts []string, minLength int) []string {
	var out []string
	for _, t := range texts {
		t = strings.TrimSpace(t)
		if utf8.RuneCountInString(t) <= minLength {
			continue
		}
		out = append(out, t)
		if len(out) == maxTopics {
			break
		}
	}
	return out
}

func join(topics []string, subject string) string {
	if len(topics) == 0 {
		return Fallback(subject)
	}
	return strings.Join(topics, ", ")
}
