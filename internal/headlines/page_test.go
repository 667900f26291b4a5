package headlines

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const subject = "GS-3 (Economy / S&T / Environment / DM / Security)"

func fixedNow() time.Time {
	return time.Date(2026, 10, 21, 9, 0, 0, 0, time.UTC)
}

func testConfig(timeout time.Duration) SourceConfig {
	cfg := DefaultSourceConfig()
	cfg.Timeout = timeout
	cfg.Client = &http.Client{Timeout: timeout}
	return cfg
}

func docFromString(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

// TestExtract_FiveHeadings verifies the length filter, the limit of three
// and document order.
func TestExtract_FiveHeadings(t *testing.T) {
	doc := docFromString(t, `<html><body>
		<h2>Daily digest</h2>
		<h3>  Monetary policy committee holds repo rate  </h3>
		<table><tr><td>India signs trade pact with four EFTA nations</td></tr></table>
		<h3>Cabinet approves critical minerals mission</h3>
		<h2>Ignored: fourth headline past the limit</h2>
	</body></html>`)

	got := Extract(doc, 20)

	assert.Equal(t, []string{
		"Monetary policy committee holds repo rate",
		"India signs trade pact with four EFTA nations",
		"Cabinet approves critical minerals mission",
	}, got)
}

func TestExtract_ThresholdIsExclusive(t *testing.T) {
	doc := docFromString(t, `<h2>12345678901234567890</h2><h3>123456789012345678901</h3>`)

	got := Extract(doc, 20)

	assert.Equal(t, []string{"123456789012345678901"}, got)
}

func TestExtract_CellWrappingHeadingCountsOnce(t *testing.T) {
	doc := docFromString(t, `<table><tr>
		<td><h3>Monetary policy committee holds repo rate</h3></td>
		<td>India signs trade pact with four EFTA nations</td>
		<td><h3>Cabinet approves critical minerals mission</h3> plus a note</td>
	</tr></table>`)

	got := Extract(doc, 20)

	assert.Equal(t, []string{
		"Monetary policy committee holds repo rate",
		"India signs trade pact with four EFTA nations",
		"Cabinet approves critical minerals mission plus a note",
	}, got)
}

func TestExtract_IgnoresOtherElements(t *testing.T) {
	doc := docFromString(t, `<h1>A top level title that is long enough</h1><p>A paragraph that is also long enough</p>`)

	assert.Empty(t, Extract(doc, 20))
}

func TestPageFetcher_URLUsesDayMonthYear(t *testing.T) {
	f := NewPageFetcher("https://example.com/ca/%s", DefaultSourceConfig(), fixedNow)

	assert.Equal(t, "https://example.com/ca/21-10-2026", f.URL())
}

func TestPageFetcher_Fetch(t *testing.T) {
	var gotPath, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, `<h2>Supreme Court ruling on electoral bonds</h2><h3>short</h3><h3>Heatwave action plans across states</h3>`)
	}))
	defer srv.Close()

	cfg := testConfig(time.Second)
	f := NewPageFetcher(srv.URL+"/ca/current-affairs/%s", cfg, fixedNow)

	got := f.Fetch(context.Background(), subject)

	assert.Equal(t, "Supreme Court ruling on electoral bonds, Heatwave action plans across states", got)
	assert.Equal(t, "/ca/current-affairs/21-10-2026", gotPath)
	assert.Equal(t, cfg.UserAgent, gotUA)
}

func TestPageFetcher_FallbackOnEmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><p>Nothing here</p></body></html>`)
	}))
	defer srv.Close()

	f := NewPageFetcher(srv.URL+"/%s", testConfig(time.Second), fixedNow)

	assert.Equal(t, Fallback(subject), f.Fetch(context.Background(), subject))
}

func TestPageFetcher_FallbackOnHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `<h2>This page has a long enough heading</h2>`)
	}))
	defer srv.Close()

	f := NewPageFetcher(srv.URL+"/%s", testConfig(time.Second), fixedNow)

	assert.Equal(t, Fallback(subject), f.Fetch(context.Background(), subject))
}

func TestPageFetcher_FallbackOnTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	f := NewPageFetcher(srv.URL+"/%s", testConfig(50*time.Millisecond), fixedNow)

	start := time.Now()
	got := f.Fetch(context.Background(), subject)

	assert.Equal(t, Fallback(subject), got)
	assert.Less(t, time.Since(start), time.Second)
}

func TestPageFetcher_FallbackOnUnresolvableHost(t *testing.T) {
	f := NewPageFetcher("http://headlines.invalid/%s", testConfig(2*time.Second), fixedNow)

	assert.Equal(t, Fallback(subject), f.Fetch(context.Background(), subject))
}

func TestFallback(t *testing.T) {
	assert.Equal(t, "Recent issues in "+subject, Fallback(subject))
}
