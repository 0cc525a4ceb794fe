// Package assets resolves image asset URLs for a generated site, validating
// scraped candidates and falling back to per-category stock imagery.
package assets

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/sitegen/internal/model"
)

// Resolver turns candidate image URLs into a usable ImageAssets set.
type Resolver interface {
	Resolve(ctx context.Context, category string, candidates []string) (*model.ImageAssets, error)
}

// stockImages maps a business category to default imagery used when no
// scraped candidate survives validation.
var stockImages = map[string]string{
	"Landscaping":           "https://images.sitegen.dev/stock/landscaping-hero.jpg",
	"Restaurant":            "https://images.sitegen.dev/stock/restaurant-hero.jpg",
	"Beauty":                "https://images.sitegen.dev/stock/beauty-hero.jpg",
	"Construction":          "https://images.sitegen.dev/stock/construction-hero.jpg",
	"Health & Wellness":     "https://images.sitegen.dev/stock/wellness-hero.jpg",
	"Fitness":               "https://images.sitegen.dev/stock/fitness-hero.jpg",
	"Professional Services": "https://images.sitegen.dev/stock/office-hero.jpg",
	"Automotive":            "https://images.sitegen.dev/stock/automotive-hero.jpg",
	"Technology":            "https://images.sitegen.dev/stock/technology-hero.jpg",
	"Real Estate":           "https://images.sitegen.dev/stock/realestate-hero.jpg",
	"Education":             "https://images.sitegen.dev/stock/education-hero.jpg",
	"Events":                "https://images.sitegen.dev/stock/events-hero.jpg",
	"Cleaning":              "https://images.sitegen.dev/stock/cleaning-hero.jpg",
	"Retail":                "https://images.sitegen.dev/stock/retail-hero.jpg",
}

const defaultStockImage = "https://images.sitegen.dev/stock/business-hero.jpg"

// StockImageFor returns the stock hero image for a category.
func StockImageFor(category string) string {
	if url, ok := stockImages[category]; ok {
		return url
	}
	return defaultStockImage
}

// maxValidateConcurrency bounds parallel HEAD requests per job.
const maxValidateConcurrency = 4

// HTTPResolver validates candidate URLs with HEAD requests, drops dead
// ones, and fills gaps with stock imagery.
type HTTPResolver struct {
	client *http.Client
}

// NewHTTPResolver creates an HTTPResolver with the given request timeout.
func NewHTTPResolver(timeout time.Duration) *HTTPResolver {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPResolver{client: &http.Client{Timeout: timeout}}
}

// Resolve validates candidates concurrently, preserving input order among
// survivors. The first survivor becomes the hero; the rest the gallery.
// With no survivors the category's stock image is used. Resolve only fails
// when the context is cancelled, which the orchestrator treats as an
// unrecoverable asset-resolution failure.
func (r *HTTPResolver) Resolve(ctx context.Context, category string, candidates []string) (*model.ImageAssets, error) {
	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "assets: resolve cancelled")
	}

	alive := make([]bool, len(candidates))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxValidateConcurrency)

	var mu sync.Mutex
	for i, url := range candidates {
		i, url := i, url
		g.Go(func() error {
			ok := r.headOK(gCtx, url)
			mu.Lock()
			alive[i] = ok
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "assets: resolve cancelled")
	}

	var survivors []string
	for i, url := range candidates {
		if alive[i] {
			survivors = append(survivors, url)
		}
	}

	if dropped := len(candidates) - len(survivors); dropped > 0 {
		zap.L().Debug("assets: dropped unreachable images",
			zap.Int("candidates", len(candidates)),
			zap.Int("dropped", dropped),
		)
	}

	return assembleAssets(category, survivors), nil
}

func (r *HTTPResolver) headOK(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()
	return resp.StatusCode < 400
}

// PassthroughResolver accepts every candidate without network validation.
// Used when validation is disabled and in tests.
type PassthroughResolver struct{}

// Resolve passes candidates through, still applying the stock fallback.
func (PassthroughResolver) Resolve(_ context.Context, category string, candidates []string) (*model.ImageAssets, error) {
	return assembleAssets(category, candidates), nil
}

func assembleAssets(category string, urls []string) *model.ImageAssets {
	if len(urls) == 0 {
		return &model.ImageAssets{Hero: StockImageFor(category)}
	}
	assets := &model.ImageAssets{Hero: urls[0]}
	if len(urls) > 1 {
		assets.Gallery = append([]string(nil), urls[1:]...)
	}
	return assets
}
