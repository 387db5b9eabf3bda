package main

import (
	"context"
	"errors"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/rambodazimi/trader-bot/internal/advisor"
	"github.com/rambodazimi/trader-bot/internal/bot"
	"github.com/rambodazimi/trader-bot/internal/config"
	"github.com/rambodazimi/trader-bot/internal/domain/subscriptions"
	"github.com/rambodazimi/trader-bot/internal/infra/db"
	httpx "github.com/rambodazimi/trader-bot/internal/infra/http"
	"github.com/rambodazimi/trader-bot/internal/infra/logger"
	"github.com/rambodazimi/trader-bot/internal/quotes"
	"github.com/rambodazimi/trader-bot/internal/scheduler"
	"github.com/rambodazimi/trader-bot/internal/selection"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/subosito/gotenv"
)

func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	_ = gotenv.Load()

	cfg, err := config.Load("config/example.yaml")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	if err := runMigrations(cfg.Postgres.DSN); err != nil {
		log.Error("migrations failed", "err", err)
		return
	}
	log.Info("migrations applied")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Error("db connect failed", "err", err)
		return
	}
	defer pool.Close()
	log.Info("db connected")

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		log.Error("telegram auth failed", "err", err)
		return
	}
	log.Info("telegram authorized", "bot", api.Self.UserName)

	subsRepo := subscriptions.NewRepo(pool)
	tracker := selection.NewTracker()
	fetcher := newFetcher(ctx, cfg, log)

	var narrator bot.Narrator
	if cfg.OpenAI.APIKey != "" {
		narrator = advisor.New(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	}

	b := bot.New(api, log, subsRepo, tracker, fetcher, narrator)
	sched := scheduler.New(subsRepo, fetcher, b, log)

	srv := httpx.New(cfg.HTTP.Addr, cfg.Metrics.Enabled)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, context.Canceled) && err.Error() != "http: Server closed" {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	go sched.Run(ctx)

	if err := b.Run(ctx, 30); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("bot stopped", "err", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}

// newFetcher wraps the quote client in a Redis cache when one is configured.
// A dead Redis downgrades to uncached fetches instead of failing startup.
func newFetcher(ctx context.Context, cfg config.Config, log *slog.Logger) quotes.Fetcher {
	client := quotes.NewClient(cfg.Quotes.APIKey, cfg.Quotes.BaseURL)
	if cfg.Redis.URL == "" {
		return client
	}
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Warn("bad redis url, quote cache disabled", "err", err)
		return client
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, quote cache disabled", "err", err)
		return client
	}
	log.Info("quote cache enabled")
	return quotes.NewCache(rdb, client)
}
