package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
)

// DiscordChunkSize is Discord's per-message character limit.
const DiscordChunkSize = 2000

// DiscordSender posts to a channel as a bot over the REST API. No gateway
// connection is opened.
type DiscordSender struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordSender(token, channelID string) (*DiscordSender, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("creating Discord session: %w", err)
	}
	return &DiscordSender{session: s, channelID: channelID}, nil
}

func (d *DiscordSender) Send(ctx context.Context, text string) error {
	if _, err := d.session.ChannelMessageSend(d.channelID, text, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("discord send: %w", err)
	}
	return nil
}

// WebhookSender posts to a Discord-style incoming webhook.
type WebhookSender struct {
	url  string
	http *http.Client
}

func NewWebhookSender(url string) *WebhookSender {
	return &WebhookSender{url: url, http: &http.Client{Timeout: 30 * time.Second}}
}

func (w *WebhookSender) Send(ctx context.Context, text string) error {
	body, _ := json.Marshal(map[string]string{"content": text})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", redactURL(err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.http.Do(req)
	if err != nil {
		return fmt.Errorf("posting webhook: %w", redactURL(err))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
