package headlines

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// candidateSelector covers section headings and the table cells some
// current-affairs pages use for their topic index.
const candidateSelector = "h2, h3, td"

// PageFetcher scrapes a dated current-affairs page.
type PageFetcher struct {
	urlTemplate string // one %s, replaced by DD-MM-YYYY
	cfg         SourceConfig
	now         func() time.Time
}

func NewPageFetcher(urlTemplate string, cfg SourceConfig, now func() time.Time) *PageFetcher {
	if cfg.Client == nil {
		cfg.Client = &http.Client{Timeout: cfg.Timeout}
	}
	if now == nil {
		now = time.Now
	}
	return &PageFetcher{urlTemplate: urlTemplate, cfg: cfg, now: now}
}

// URL returns the page address for the current date.
func (f *PageFetcher) URL() string {
	return fmt.Sprintf(f.urlTemplate, f.now().Format("02-01-2006"))
}

func (f *PageFetcher) Fetch(ctx context.Context, subject string) string {
	doc, err := f.fetchDocument(ctx)
	if err != nil {
		log.Printf("headlines: scrape error: %v", err)
		return Fallback(subject)
	}
	return join(Extract(doc, f.cfg.MinLength), subject)
}

func (f *PageFetcher) fetchDocument(ctx context.Context) (*goquery.Document, error) {
	if f.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.cfg.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)

	resp, err := f.cfg.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}

// Extract returns the first three heading candidates in document order whose
// trimmed text is longer than minLength. A cell that only wraps headings is
// skipped; the headings themselves are collected.
func Extract(doc *goquery.Document, minLength int) []string {
	var texts []string
	doc.Find(candidateSelector).Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) == "td" && onlyHeadings(s) {
			return
		}
		texts = append(texts, s.Text())
	})
	return keep(texts, minLength)
}

func onlyHeadings(cell *goquery.Selection) bool {
	headings := cell.Find("h2, h3")
	if headings.Length() == 0 {
		return false
	}
	var inner strings.Builder
	headings.Each(func(_ int, h *goquery.Selection) {
		inner.WriteString(strings.TrimSpace(h.Text()))
	})
	return strings.Join(strings.Fields(cell.Text()), "") == strings.Join(strings.Fields(inner.String()), "")
}
