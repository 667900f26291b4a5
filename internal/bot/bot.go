// Package bot runs one pass of the daily pipeline: a one-time welcome,
// then generation, then publishing.
package bot

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/chris/mainsbot/internal/marker"
)

const WelcomeMessage = `👋 *Welcome to UPSC Mains Daily Answer Writing!*

From Monday to Thursday you will get one Mains question with a model answer here:
• *Monday*: GS-1 (History, Geography, Society)
• *Tuesday*: GS-2 (Polity, Governance, IR)
• *Wednesday*: GS-3 (Economy, S&T, Environment, Security)
• *Thursday*: GS-4 (Ethics case studies)

Questions are linked to the day's current affairs. Write your own answer first, then compare.`

type Generator interface {
	Generate(ctx context.Context) (string, bool)
}

type Publisher interface {
	Publish(ctx context.Context, text string)
}

type Bot struct {
	marker    marker.Store
	generator Generator
	publisher Publisher
}

func New(store marker.Store, gen Generator, pub Publisher) *Bot {
	return &Bot{marker: store, generator: gen, publisher: pub}
}

// Welcome publishes the introductory message the first time it is called
// against a store, then marks the store. If the marker cannot be read the
// welcome is skipped.
func (b *Bot) Welcome(ctx context.Context) {
	done, err := b.marker.Initialized(ctx)
	if err != nil {
		log.Printf("welcome: checking marker: %v", err)
		return
	}
	if done {
		return
	}

	b.publisher.Publish(ctx, WelcomeMessage)
	if err := b.marker.MarkInitialized(ctx); err != nil {
		log.Printf("welcome: writing marker: %v", err)
		return
	}
	log.Println("welcome: sent")
}

// Run is one scheduled invocation.
func (b *Bot) Run(ctx context.Context) {
	runID := uuid.NewString()[:8]
	log.Printf("run[%s]: starting", runID)

	b.Welcome(ctx)

	post, ok := b.generator.Generate(ctx)
	if !ok {
		log.Printf("run[%s]: nothing to publish", runID)
		return
	}
	b.publisher.Publish(ctx, post)
	log.Printf("run[%s]: completed", runID)
}
