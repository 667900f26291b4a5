// Package publish delivers text to a chat destination. Long posts are cut
// into fixed-size pieces and sent in order. Delivery is fire-and-forget:
// failures are logged and never retried.
package publish

import (
	"context"
	"log"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

// DefaultChunkSize stays under Telegram's 4096-character message limit.
const DefaultChunkSize = 4000

// Sender posts a single message.
type Sender interface {
	Send(ctx context.Context, text string) error
}

type Publisher struct {
	sender    Sender
	chunkSize int
}

func New(sender Sender, chunkSize int) *Publisher {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Publisher{sender: sender, chunkSize: chunkSize}
}

func (p *Publisher) Publish(ctx context.Context, text string) {
	chunks := Split(text, p.chunkSize)
	log.Printf("publish: sending %s in %d message(s)", humanize.Bytes(uint64(len(text))), len(chunks))
	for i, chunk := range chunks {
		if err := p.sender.Send(ctx, chunk); err != nil {
			log.Printf("publish: message %d/%d: %v", i+1, len(chunks), err)
		}
	}
}

// Split cuts s into consecutive pieces of at most size characters. Cuts
// fall on character boundaries only; content is not considered.
func Split(s string, size int) []string {
	if size <= 0 || utf8.RuneCountInString(s) <= size {
		return []string{s}
	}

	var chunks []string
	for len(s) > 0 {
		end, n := 0, 0
		for end < len(s) && n < size {
			_, w := utf8.DecodeRuneInString(s[end:])
			end += w
			n++
		}
		chunks = append(chunks, s[:end])
		s = s[end:]
	}
	return chunks
}
