// Package scrape collects raw business signals from a public website.
package scrape

import (
	"context"

	"github.com/sells-group/sitegen/internal/model"
)

// Scraper fetches a source URL and extracts a raw business signal from it.
type Scraper interface {
	Scrape(ctx context.Context, url string) (*model.RawSignal, error)
	Name() string
}
