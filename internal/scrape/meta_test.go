package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
  <title>Bloom Gardens | Landscaping in Portland</title>
  <meta name="description" content="Garden design and landscaping services, trusted by hundreds of satisfied clients.">
  <meta property="og:image" content="https://bloomgardens.com/og.jpg">
</head>
<body>
  <img src="https://bloomgardens.com/work1.jpg">
  <img src="https://bloomgardens.com/work2.jpg">
  <img src="https://bloomgardens.com/work1.jpg">
  <a href="mailto:hello@bloomgardens.com">Email us</a>
  <a href="tel:+1 (503) 555-0142">Call</a>
  <a href="https://www.instagram.com/bloomgardens">Instagram</a>
  <a href="https://x.com/bloomgardens">X</a>
</body>
</html>`

func TestExtractSignal(t *testing.T) {
	signal := ExtractSignal(samplePage)

	assert.Equal(t, "Bloom Gardens | Landscaping in Portland", signal.Title)
	assert.Equal(t, "Garden design and landscaping services, trusted by hundreds of satisfied clients.", signal.Description)
	assert.Equal(t, "hello@bloomgardens.com", signal.ContactEmail)
	assert.Equal(t, "+1 (503) 555-0142", signal.ContactPhone)

	// og:image first, then distinct <img> sources.
	assert.Equal(t, []string{
		"https://bloomgardens.com/og.jpg",
		"https://bloomgardens.com/work1.jpg",
		"https://bloomgardens.com/work2.jpg",
	}, signal.Images)

	assert.Equal(t, "https://www.instagram.com/bloomgardens", signal.SocialLinks["instagram"])
	assert.Contains(t, signal.SocialLinks, "twitter", "x.com normalizes to twitter")
}

func TestExtractSignal_DescriptionFallsBackToBodyText(t *testing.T) {
	page := `<html><head><title>Acme</title></head>
<body><script>var x = 1;</script><p>We fix roofs across the city.</p></body></html>`

	signal := ExtractSignal(page)
	assert.Contains(t, signal.Description, "We fix roofs across the city.")
	assert.NotContains(t, signal.Description, "var x")
}

func TestExtractSignal_EmptyPage(t *testing.T) {
	signal := ExtractSignal("")
	assert.Empty(t, signal.Title)
	assert.Empty(t, signal.Description)
	assert.Empty(t, signal.Images)
	assert.Nil(t, signal.SocialLinks)
}

func TestExtractSignal_ImageCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < 20; i++ {
		b.WriteString(`<img src="https://acme.com/img-` + string(rune('a'+i)) + `.jpg">`)
	}
	b.WriteString("</body></html>")

	signal := ExtractSignal(b.String())
	assert.Len(t, signal.Images, maxGalleryImages)
}

func TestMetaScraper_Scrape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	scraper := NewMetaScraper(Options{UserAgent: "test-agent", Timeout: 5 * time.Second})
	signal, err := scraper.Scrape(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Bloom Gardens | Landscaping in Portland", signal.Title)
}

func TestMetaScraper_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	scraper := NewMetaScraper(Options{})
	_, err := scraper.Scrape(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 410")
}

func TestMetaScraper_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	scraper := NewMetaScraper(Options{})
	_, err := scraper.Scrape(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty page")
}

func TestMetaScraper_BodyLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><head><title>Big</title></head><body>"))
		w.Write([]byte(strings.Repeat("x", 1<<20)))
	}))
	defer srv.Close()

	scraper := NewMetaScraper(Options{MaxBodyBytes: 1024})
	signal, err := scraper.Scrape(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Big", signal.Title)
}

func TestMetaScraper_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scraper := NewMetaScraper(Options{RatePerSec: 1})
	_, err := scraper.Scrape(ctx, "https://example.com")
	assert.Error(t, err)
}
