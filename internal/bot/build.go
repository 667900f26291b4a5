package bot

import (
	"fmt"
	"time"
	_ "time/tzdata" // Lambda and scratch images ship without zoneinfo

	"github.com/chris/mainsbot/config"
	"github.com/chris/mainsbot/internal/db"
	"github.com/chris/mainsbot/internal/digest"
	"github.com/chris/mainsbot/internal/headlines"
	"github.com/chris/mainsbot/internal/llm"
	"github.com/chris/mainsbot/internal/marker"
	"github.com/chris/mainsbot/internal/publish"
)

// Build wires a Bot from configuration. The returned close function
// releases the database when the sqlite marker store is used.
func Build(cfg *config.Config) (*Bot, func() error, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, nil, fmt.Errorf("loading timezone %q: %w", cfg.Timezone, err)
	}
	now := func() time.Time { return time.Now().In(loc) }

	apiKey := cfg.OpenAIKey
	if cfg.LLMProvider == "anthropic" {
		apiKey = cfg.AnthropicKey
	}
	client, err := llm.NewClient(llm.ProviderConfig{
		Provider:        cfg.LLMProvider,
		APIKey:          apiKey,
		Model:           cfg.LLMModel,
		BaseURL:         cfg.OllamaBaseURL,
		ReasoningEffort: cfg.ReasoningEffort,
		Verbosity:       cfg.Verbosity,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating LLM client: %w", err)
	}

	pub, err := publish.NewPublisher(publish.PlatformConfig{
		Platform:         cfg.ChatPlatform,
		TelegramToken:    cfg.TelegramToken,
		ChatID:           cfg.ChatID,
		DiscordToken:     cfg.DiscordToken,
		DiscordChannelID: cfg.DiscordChannelID,
		DiscordWebhook:   cfg.DiscordWebhook,
		SlackToken:       cfg.SlackToken,
		SlackChannelID:   cfg.SlackChannelID,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating publisher: %w", err)
	}

	store, closeStore, err := openMarker(cfg)
	if err != nil {
		return nil, nil, err
	}

	gen := digest.NewGenerator(newFetcher(cfg, now), client, now)
	return New(store, gen, pub), closeStore, nil
}

func newFetcher(cfg *config.Config, now func() time.Time) headlines.Fetcher {
	src := headlines.DefaultSourceConfig()
	src.MinLength = cfg.HeadlineMinLength
	if cfg.HeadlineFeedURL != "" {
		return headlines.NewFeedFetcher(cfg.HeadlineFeedURL, src)
	}
	return headlines.NewPageFetcher(cfg.HeadlineURL, src, now)
}

func openMarker(cfg *config.Config) (marker.Store, func() error, error) {
	switch cfg.MarkerStore {
	case "file":
		return marker.NewFileStore(cfg.MarkerPath), func() error { return nil }, nil
	case "sqlite":
		database, err := db.Open(cfg.DatabasePath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening marker database: %w", err)
		}
		return marker.NewSQLiteStore(database), database.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown marker store: %s", cfg.MarkerStore)
	}
}
