// Package digest builds the daily post: which paper runs today, the header
// block, and the model-written question and answer.
package digest

import (
	"context"
	"log"
	"time"

	"github.com/chris/mainsbot/internal/headlines"
	"github.com/chris/mainsbot/internal/llm"
)

type Generator struct {
	fetcher headlines.Fetcher
	client  llm.Client
	now     func() time.Time
}

func NewGenerator(fetcher headlines.Fetcher, client llm.Client, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{fetcher: fetcher, client: client, now: now}
}

// Generate returns the full post for today, or false when today has no
// scheduled paper or the model call failed. Failures are logged, never
// returned.
func (g *Generator) Generate(ctx context.Context) (string, bool) {
	now := g.now()
	subject, ok := Subject(now.Weekday())
	if !ok {
		log.Printf("generator: nothing scheduled on %s", now.Weekday())
		return "", false
	}

	topicContext := g.fetcher.Fetch(ctx, subject)
	req := llm.Request{
		System: Persona,
		User:   UserPrompt(subject, topicContext),
	}
	log.Printf("generator: %s, prompt ~%d tokens", subject, llm.EstimateRequestTokens(req))

	out, err := g.client.Complete(ctx, req)
	if err != nil {
		log.Printf("generator: completion failed: %v", err)
		return "", false
	}
	return Header(now) + out, true
}
