package publish

import "fmt"

type PlatformConfig struct {
	Platform         string // telegram, discord, slack
	TelegramToken    string
	ChatID           string
	DiscordToken     string
	DiscordChannelID string
	DiscordWebhook   string
	SlackToken       string
	SlackChannelID   string
}

// NewPublisher builds the publisher for the configured chat platform.
// Credentials are not validated here; a bad one shows up as a logged send
// failure.
func NewPublisher(cfg PlatformConfig) (*Publisher, error) {
	switch cfg.Platform {
	case "telegram":
		return New(NewTelegramSender(cfg.TelegramToken, cfg.ChatID), DefaultChunkSize), nil
	case "discord":
		// Prefer the webhook when one is configured; it needs no bot.
		if cfg.DiscordWebhook != "" {
			return New(NewWebhookSender(cfg.DiscordWebhook), DiscordChunkSize), nil
		}
		s, err := NewDiscordSender(cfg.DiscordToken, cfg.DiscordChannelID)
		if err != nil {
			return nil, err
		}
		return New(s, DiscordChunkSize), nil
	case "slack":
		return New(NewSlackSender(cfg.SlackToken, cfg.SlackChannelID), DefaultChunkSize), nil
	default:
		return nil, fmt.Errorf("unknown chat platform: %s", cfg.Platform)
	}
}
