package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/sitegen/internal/assets"
	"github.com/sells-group/sitegen/internal/pipeline"
	"github.com/sells-group/sitegen/internal/recommend"
	"github.com/sells-group/sitegen/internal/scrape"
	"github.com/sells-group/sitegen/internal/store"
)

// env wires the orchestrator and its collaborators from config. Close
// releases the store.
type env struct {
	Store        store.Store
	Orchestrator *pipeline.Orchestrator
}

func initEnv(ctx context.Context) (*env, error) {
	st, err := initStore(ctx)
	if err != nil {
		return nil, err
	}

	catalog, err := recommend.LoadCatalog()
	if err != nil {
		st.Close()
		return nil, err
	}

	scraper := scrape.NewMetaScraper(scrape.Options{
		UserAgent:    cfg.Scrape.UserAgent,
		Timeout:      time.Duration(cfg.Scrape.TimeoutSecs) * time.Second,
		RatePerSec:   cfg.Scrape.RatePerSec,
		MaxBodyBytes: int64(cfg.Scrape.MaxBodyKB) * 1024,
	})

	var resolver assets.Resolver
	if cfg.Assets.Validate {
		resolver = assets.NewHTTPResolver(time.Duration(cfg.Assets.TimeoutSecs) * time.Second)
	} else {
		resolver = assets.PassthroughResolver{}
	}

	return &env{
		Store:        st,
		Orchestrator: pipeline.New(st, scraper, resolver, catalog),
	}, nil
}

func initStore(ctx context.Context) (store.Store, error) {
	var (
		st  store.Store
		err error
	)
	switch cfg.Store.Driver {
	case "postgres":
		st, err = store.NewPostgres(ctx, cfg.Store.DatabaseURL, &cfg.Store.Pool)
	case "sqlite", "":
		st, err = store.NewSQLite(cfg.Store.DatabaseURL)
	default:
		return nil, eris.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, err
	}

	zap.L().Debug("store ready", zap.String("driver", cfg.Store.Driver))
	return st, nil
}

func (e *env) Close() {
	if err := e.Store.Close(); err != nil {
		zap.L().Warn("closing store", zap.Error(err))
	}
}
