package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const telegramAPI = "https://api.telegram.org"

type TelegramSender struct {
	baseURL string
	token   string
	chatID  string
	http    *http.Client
}

func NewTelegramSender(token, chatID string) *TelegramSender {
	return &TelegramSender{
		baseURL: telegramAPI,
		token:   token,
		chatID:  chatID,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// Send posts to sendMessage. The response is drained but not inspected, so
// only transport failures are reported.
func (s *TelegramSender) Send(ctx context.Context, text string) error {
	body, err := json.Marshal(telegramMessage{ChatID: s.chatID, Text: text, ParseMode: "Markdown"})
	if err != nil {
		return fmt.Errorf("marshaling message: %w", err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", redactURL(err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("posting to telegram: %w", redactURL(err))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// redactURL strips the request URL from err; the bot token is part of the path.
func redactURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}
