package crawler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() Config {
	return Config{
		MaxDepth:         1,
		MaxPages:         4,
		MaxConcurrency:   2,
		RequestTimeout:   5 * time.Second,
		PriorityKeywords: []string{"contact", "attorney"},
	}
}

// recordingMux serves canned pages and remembers which paths were hit.
type recordingMux struct {
	mu    sync.Mutex
	pages map[string]string
	codes map[string]int
	hits  map[string]int
}

func newRecordingMux() *recordingMux {
	return &recordingMux{
		pages: make(map[string]string),
		codes: make(map[string]int),
		hits:  make(map[string]int),
	}
}

func (m *recordingMux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.hits[r.URL.Path]++
	body, ok := m.pages[r.URL.Path]
	code := m.codes[r.URL.Path]
	m.mu.Unlock()

	if code != 0 {
		w.WriteHeader(code)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	fmt.Fprint(w, body)
}

func (m *recordingMux) hitCount(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits[path]
}

func TestCrawlSinglePage(t *testing.T) {
	mux := newRecordingMux()
	mux.pages["/"] = `<html><head><script>var x = "hidden@script.com";</script></head>
		<body><p>Welcome to Acme Law.</p>
		<a href="mailto:office@acme.law">Email us</a></body></html>`
	server := httptest.NewServer(mux)
	defer server.Close()

	cfg := testConfig()
	cfg.MaxPages = 1
	c := NewSiteCrawler(cfg, zap.NewNop())

	text, err := c.Crawl(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Contains(t, text, "Welcome to Acme Law")
	assert.Contains(t, text, "mailto:office@acme.law")
	assert.NotContains(t, text, "hidden@script.com")
}

func TestCrawlFollowsHighestRankedLinks(t *testing.T) {
	mux := newRecordingMux()
	mux.pages["/"] = `<html><body>
		<a href="/blog">Blog</a>
		<a href="/contact">Contact our team</a>
		<a href="/privacy">Privacy</a>
		</body></html>`
	mux.pages["/contact"] = `<html><body>contact page marker</body></html>`
	mux.pages["/blog"] = `<html><body>blog page marker</body></html>`
	mux.pages["/privacy"] = `<html><body>privacy page marker</body></html>`
	server := httptest.NewServer(mux)
	defer server.Close()

	cfg := testConfig()
	cfg.MaxPages = 2
	c := NewSiteCrawler(cfg, zap.NewNop())

	text, err := c.Crawl(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Contains(t, text, "contact page marker")
	assert.NotContains(t, text, "blog page marker")
	assert.NotContains(t, text, "privacy page marker")
	assert.Equal(t, 0, mux.hitCount("/blog"))
	assert.Equal(t, 0, mux.hitCount("/privacy"))
}

func TestCrawlRespectsPageBudget(t *testing.T) {
	mux := newRecordingMux()
	mux.pages["/"] = `<html><body>
		<a href="/a">one</a><a href="/b">two</a><a href="/c">three</a>
		</body></html>`
	for _, path := range []string{"/a", "/b", "/c"} {
		mux.pages[path] = "<html><body>page " + path + "</body></html>"
	}
	server := httptest.NewServer(mux)
	defer server.Close()

	cfg := testConfig()
	cfg.MaxPages = 3
	c := NewSiteCrawler(cfg, zap.NewNop())

	_, err := c.Crawl(context.Background(), server.URL)

	require.NoError(t, err)
	fetched := mux.hitCount("/a") + mux.hitCount("/b") + mux.hitCount("/c")
	assert.Equal(t, 2, fetched)
}

func TestCrawlSkipsFailedSubpage(t *testing.T) {
	mux := newRecordingMux()
	mux.pages["/"] = `<html><body>root marker
		<a href="/contact">Contact</a></body></html>`
	mux.codes["/contact"] = http.StatusInternalServerError
	server := httptest.NewServer(mux)
	defer server.Close()

	c := NewSiteCrawler(testConfig(), zap.NewNop())

	text, err := c.Crawl(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Contains(t, text, "root marker")
}

func TestCrawlRootFailureIsFatal(t *testing.T) {
	mux := newRecordingMux()
	mux.codes["/"] = http.StatusServiceUnavailable
	server := httptest.NewServer(mux)
	defer server.Close()

	c := NewSiteCrawler(testConfig(), zap.NewNop())

	_, err := c.Crawl(context.Background(), server.URL)
	assert.Error(t, err)
}

func TestCrawlIgnoresExternalAndNonHTTPLinks(t *testing.T) {
	mux := newRecordingMux()
	mux.pages["/"] = `<html><body>
		<a href="https://other.example.net/contact">External contact</a>
		<a href="mailto:info@acme.law">Mail</a>
		<a href="tel:+15551234">Call</a>
		<a href="#top">Top</a>
		</body></html>`
	server := httptest.NewServer(mux)
	defer server.Close()

	c := NewSiteCrawler(testConfig(), zap.NewNop())

	_, err := c.Crawl(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, 1, mux.hitCount("/"))
}

func TestNormalizeURL(t *testing.T) {
	parsed, err := normalizeURL("acme.law/about")
	require.NoError(t, err)
	assert.Equal(t, "https", parsed.Scheme)
	assert.Equal(t, "acme.law", parsed.Host)

	parsed, err = normalizeURL("http://acme.law")
	require.NoError(t, err)
	assert.Equal(t, "http", parsed.Scheme)

	_, err = normalizeURL("")
	assert.Error(t, err)

	_, err = normalizeURL("https://")
	assert.Error(t, err)
}
