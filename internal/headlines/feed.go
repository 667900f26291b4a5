package headlines

import (
	"context"
	"log"

	"github.com/mmcdole/gofeed"
)

// FeedFetcher takes headlines from an RSS or Atom feed instead of scraping
// a page. Item titles go through the same length filter.
type FeedFetcher struct {
	url    string
	cfg    SourceConfig
	parser *gofeed.Parser
}

func NewFeedFetcher(url string, cfg SourceConfig) *FeedFetcher {
	fp := gofeed.NewParser()
	fp.UserAgent = cfg.UserAgent
	if cfg.Client != nil {
		fp.Client = cfg.Client
	}
	return &FeedFetcher{url: url, cfg: cfg, parser: fp}
}

func (f *FeedFetcher) Fetch(ctx context.Context, subject string) string {
	if f.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.cfg.Timeout)
		defer cancel()
	}

	feed, err := f.parser.ParseURLWithContext(f.url, ctx)
	if err != nil {
		log.Printf("headlines: feed error: %v", err)
		return Fallback(subject)
	}

	titles := make([]string, 0, len(feed.Items))
	for _, item := range feed.Items {
		titles = append(titles, item.Title)
	}
	return join(keep(titles, f.cfg.MinLength), subject)
}
