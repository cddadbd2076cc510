package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/user/profile-resolver/internal/adapter/chromedp_session"
	"github.com/user/profile-resolver/internal/adapter/csvstore"
	"github.com/user/profile-resolver/internal/adapter/fsdebug"
	"github.com/user/profile-resolver/internal/adapter/memory"
	"github.com/user/profile-resolver/internal/adapter/postgres"
	redis_adapter "github.com/user/profile-resolver/internal/adapter/redis"
	"github.com/user/profile-resolver/internal/delivery/http/router"
	"github.com/user/profile-resolver/internal/repository"
	"github.com/user/profile-resolver/internal/usecase"
	"github.com/user/profile-resolver/pkg/config"
	"github.com/user/profile-resolver/pkg/logger"
	"github.com/user/profile-resolver/pkg/metrics"
)

// main only decides the exit code; run owns all resources so their deferred
// teardown unwinds on setup failures too.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "resolver:", err)
		os.Exit(1)
	}
}

func run() error {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// --- Logger ---
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	// --- Metrics ---
	metrics.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Roster (the only fatal setup failure) ---
	subjects, err := csvstore.LoadRoster(cfg.InputCSV, log)
	if err != nil {
		log.Error("could not load roster", zap.Error(err))
		return fmt.Errorf("load roster: %w", err)
	}

	// --- Output store ---
	var records repository.RecordRepository
	var seenPreload []string
	outputLocation := cfg.OutputCSV

	switch cfg.StoreDriver {
	case "postgres":
		dbpool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			return fmt.Errorf("connect to postgres: %w", err)
		}
		defer dbpool.Close()

		repo := postgres.NewScrapeRecordRepo(dbpool)
		if err := repo.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate postgres store: %w", err)
		}
		if seenPreload, err = repo.SeenLinks(ctx); err != nil {
			return fmt.Errorf("preload seen links: %w", err)
		}
		records = repo
		outputLocation = "postgres table scrape_records"
		log.Info("postgres store ready", zap.Int("known_links", len(seenPreload)))
	default:
		repo, err := csvstore.NewRecordRepo(cfg.OutputCSV, log)
		if err != nil {
			return fmt.Errorf("open output store: %w", err)
		}
		defer repo.Close()
		records = repo
	}

	// --- Seen-set ---
	var seen repository.SeenRepository
	if cfg.SeenBackend == "redis" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		seen = redis_adapter.NewSeenRepo(rdb, cfg.SeenTTL())
		log.Info("redis seen-set ready", zap.String("addr", cfg.RedisAddr))
	} else {
		seen = memory.NewSeenRepo(seenPreload...)
	}

	// --- Diagnostics ---
	var artifacts repository.ArtifactRepository
	if cfg.DebugDir != "" {
		artifacts = fsdebug.NewArtifactRepo(cfg.DebugDir, log)
	}

	// --- Ops server (optional) ---
	if cfg.OpsPort != "" {
		server := &http.Server{
			Addr:         ":" + cfg.OpsPort,
			Handler:      router.New(log),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		}
		go func() {
			log.Info("ops server listening", zap.String("port", cfg.OpsPort))
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Warn("ops server stopped", zap.Error(err))
			}
		}()
	}

	// --- Browser session ---
	session, err := chromedp_session.New(cfg.Headless, log)
	if err != nil {
		return fmt.Errorf("start browser session: %w", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Warn("browser session close failed", zap.Error(err))
		}
	}()

	// --- Resolution run ---
	resolver := usecase.NewResolver(
		session,
		records,
		seen,
		artifacts,
		usecase.NewStrategyGenerator(cfg.SiteFilter, cfg.MaxQueryLength),
		usecase.NewSearcher(cfg.SearchBaseURL, cfg.NavTimeout(), cfg.MarkerTimeout(), cfg.SettleDelay(), log),
		usecase.NewExtractor(cfg.ProfileMarker, log),
		cfg.SubjectDelay(),
		log,
	)

	summary := resolver.Run(ctx, subjects)

	log.Info("run complete",
		zap.Int("subjects", summary.Subjects),
		zap.Int("resolved", summary.Resolved),
		zap.Int("duplicates", summary.Duplicates),
		zap.Int("unresolved", summary.Unresolved),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
		zap.String("output", outputLocation),
	)
	return nil
}
