package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/blackmichael/explore-feed/internal/config"
	"github.com/blackmichael/explore-feed/internal/domain"
	"github.com/blackmichael/explore-feed/internal/feed"
	"github.com/blackmichael/explore-feed/internal/fixtures"
	"github.com/blackmichael/explore-feed/internal/httpserver"
	"github.com/blackmichael/explore-feed/internal/logging"
	"github.com/blackmichael/explore-feed/internal/metrics"
	"github.com/blackmichael/explore-feed/internal/sqlite"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", os.Getenv("EXPLORE_CONFIG"), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src, closeSrc, err := openFixtures(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open fixtures: %w", err)
	}
	defer closeSrc()

	m := metrics.New()
	feedService, err := feed.NewService(ctx, cfg.FeedService(), src, logger, feed.WithObserver(m))
	if err != nil {
		return fmt.Errorf("create feed service: %w", err)
	}

	server := httpserver.NewServer(cfg, feedService, m, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("error shutting down http server", zap.Error(err))
		}
		return nil
	})

	logger.Info("server started",
		zap.String("addr", cfg.Addr()),
		zap.Bool("sqlite_fixtures", cfg.Fixtures.DB != ""),
	)

	return g.Wait()
}

// openFixtures returns the sqlite store when one is configured and the
// compiled-in fixtures otherwise.
func openFixtures(ctx context.Context, cfg *config.Config) (domain.FixtureSource, func() error, error) {
	if cfg.Fixtures.DB == "" {
		return fixtures.NewStatic(), func() error { return nil }, nil
	}
	repo, err := sqlite.NewRepository(ctx, cfg.Fixtures.DB)
	if err != nil {
		return nil, nil, err
	}
	return repo, repo.Close, nil
}
