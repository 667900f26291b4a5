package publish

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

type SlackSender struct {
	api       *slack.Client
	channelID string
}

func NewSlackSender(token, channelID string, opts ...slack.Option) *SlackSender {
	return &SlackSender{api: slack.New(token, opts...), channelID: channelID}
}

func (s *SlackSender) Send(ctx context.Context, text string) error {
	if _, _, err := s.api.PostMessageContext(ctx, s.channelID, slack.MsgOptionText(text, false)); err != nil {
		return fmt.Errorf("slack post: %w", err)
	}
	return nil
}
