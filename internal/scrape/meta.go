package scrape

import (
	"context"
	"io"
	"net"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/sitegen/internal/model"
)

// Options configures the meta scraper.
type Options struct {
	UserAgent string
	Timeout   time.Duration
	// RatePerSec throttles outbound requests. Zero disables throttling.
	RatePerSec float64
	// MaxBodyBytes caps how much of a page is read. Zero means 512 KB.
	MaxBodyBytes int64
}

// MetaScraper fetches HTML via net/http and extracts business metadata with
// regex rules: title, meta/og description, images, social links, and
// mailto/tel contacts. Free, no API calls.
type MetaScraper struct {
	client  *http.Client
	limiter *rate.Limiter
	opts    Options
}

// NewMetaScraper creates a MetaScraper with sensible defaults.
func NewMetaScraper(opts Options) *MetaScraper {
	if opts.UserAgent == "" {
		opts.UserAgent = "Mozilla/5.0 (compatible; SitegenBot/1.0)"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 512 * 1024
	}

	var limiter *rate.Limiter
	if opts.RatePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RatePerSec), 1)
	}

	return &MetaScraper{
		client: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		limiter: limiter,
		opts:    opts,
	}
}

func (m *MetaScraper) Name() string { return "meta_http" }

// Scrape fetches a URL and extracts the raw business signal.
func (m *MetaScraper) Scrape(ctx context.Context, targetURL string) (*model.RawSignal, error) {
	if m.limiter != nil {
		if err := m.limiter.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "meta_http: rate wait")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "meta_http: create request")
	}
	req.Header.Set("User-Agent", m.opts.UserAgent)

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "meta_http: fetch")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, eris.Errorf("meta_http: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, m.opts.MaxBodyBytes))
	if err != nil {
		return nil, eris.Wrap(err, "meta_http: read body")
	}
	if len(body) == 0 {
		return nil, eris.New("meta_http: empty page")
	}

	signal := ExtractSignal(string(body))
	zap.L().Debug("meta_http: scraped page",
		zap.String("url", targetURL),
		zap.String("title", signal.Title),
		zap.Int("images", len(signal.Images)),
	)
	return signal, nil
}

var (
	titleRe       = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	metaDescRe    = regexp.MustCompile(`(?is)<meta[^>]+name=["']description["'][^>]+content=["']([^"']+)["']`)
	ogDescRe      = regexp.MustCompile(`(?is)<meta[^>]+property=["']og:description["'][^>]+content=["']([^"']+)["']`)
	ogImageRe     = regexp.MustCompile(`(?is)<meta[^>]+property=["']og:image["'][^>]+content=["']([^"']+)["']`)
	imgSrcRe      = regexp.MustCompile(`(?is)<img[^>]+src=["'](https?://[^"']+)["']`)
	mailtoRe      = regexp.MustCompile(`(?i)mailto:([\w.+-]+@[\w.-]+\.[a-z]{2,})`)
	telRe         = regexp.MustCompile(`(?i)tel:(\+?[\d\s().-]{7,})["']`)
	socialLinkRe  = regexp.MustCompile(`(?i)https?://(?:www\.)?(facebook|instagram|twitter|x|linkedin|youtube|tiktok)\.com/[\w@/.\-_?=&%]+`)
	tagStripperRe = regexp.MustCompile(`(?is)<(script|style|nav|footer|head)[^>]*>.*?</\w+>|<[^>]+>`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

const maxGalleryImages = 8

// ExtractSignal pulls a RawSignal out of raw HTML. Exported for tests and
// for reuse on cached page bodies.
func ExtractSignal(html string) *model.RawSignal {
	signal := &model.RawSignal{
		Title:       extractFirst(titleRe, html),
		Description: extractDescription(html),
	}

	if m := mailtoRe.FindStringSubmatch(html); len(m) > 1 {
		signal.ContactEmail = m[1]
	}
	if m := telRe.FindStringSubmatch(html); len(m) > 1 {
		signal.ContactPhone = strings.TrimSpace(m[1])
	}

	signal.Images = extractImages(html)
	signal.SocialLinks = extractSocialLinks(html)
	return signal
}

func extractFirst(re *regexp.Regexp, html string) string {
	if m := re.FindStringSubmatch(html); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// extractDescription prefers the meta description, then og:description,
// then the first 300 chars of visible text.
func extractDescription(html string) string {
	if desc := extractFirst(metaDescRe, html); desc != "" {
		return desc
	}
	if desc := extractFirst(ogDescRe, html); desc != "" {
		return desc
	}
	text := whitespaceRe.ReplaceAllString(tagStripperRe.ReplaceAllString(html, " "), " ")
	text = strings.TrimSpace(text)
	if len(text) > 300 {
		text = text[:300]
	}
	return text
}

// extractImages returns og:image first, then distinct <img> sources, capped.
func extractImages(html string) []string {
	var images []string
	seen := make(map[string]bool)

	if og := extractFirst(ogImageRe, html); og != "" {
		images = append(images, og)
		seen[og] = true
	}

	for _, m := range imgSrcRe.FindAllStringSubmatch(html, -1) {
		src := m[1]
		if seen[src] {
			continue
		}
		seen[src] = true
		images = append(images, src)
		if len(images) >= maxGalleryImages {
			break
		}
	}
	return images
}

// extractSocialLinks keeps the first link per network, normalized to a
// lowercase network key.
func extractSocialLinks(html string) map[string]string {
	matches := socialLinkRe.FindAllStringSubmatch(html, -1)
	if len(matches) == 0 {
		return nil
	}
	links := make(map[string]string, len(matches))
	for _, m := range matches {
		network := strings.ToLower(m[1])
		if network == "x" {
			network = "twitter"
		}
		if _, ok := links[network]; !ok {
			links[network] = m[0]
		}
	}
	return links
}
