package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/jackc/pgx/v5/pgxpool"

	fiberadapter "github.com/ecocycle/server/adapters/fiber"
	"github.com/ecocycle/server/adapters/memory"
	pgxadapter "github.com/ecocycle/server/adapters/pgx"
	"github.com/ecocycle/server/clients/assist"
	"github.com/ecocycle/server/clients/inference"
	"github.com/ecocycle/server/config"
	"github.com/ecocycle/server/core"
	"github.com/ecocycle/server/pkg/crypto"
	"github.com/ecocycle/server/pkg/logging"
	"github.com/ecocycle/server/services"
)

func accessLogFormat() string {
	format := []string{
		"${time}|${requestid}",
		"${status}|${latency}",
		"${ip}:${port}",
		"${method}|${path}|${queryParams}",
		"${errors}",
	}
	return strings.Join(format, "|") + "\n"
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	log := logging.NewDefault(cfg.Production())

	passwords := crypto.NewArgon2()

	var storage core.Storage
	if cfg.DatabaseDSN != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
		if err != nil {
			log.Error(ctx, "pgxpool.New failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		adapter := pgxadapter.New(pool)
		if err := adapter.EnsureSchema(ctx); err != nil {
			log.Error(ctx, "schema setup failed", "error", err)
			os.Exit(1)
		}
		storage = adapter
		log.Info(ctx, "using postgres storage")
	} else {
		store := memory.New()
		if err := memory.SeedDemoData(store, passwords); err != nil {
			log.Error(ctx, "seeding demo data failed", "error", err)
			os.Exit(1)
		}
		storage = store
		log.Info(ctx, "using in-memory storage with demo seed")
	}

	cache := core.NewInMemoryCache(core.CacheConfig{
		TTL:     cfg.CacheTTL,
		MaxSize: cfg.CacheMaxSize,
	})

	sessions := services.NewSessionManager(
		services.SessionConfig{MaxAge: cfg.SessionMaxAge},
		storage, cache,
	)
	auth := services.NewAuthService(storage, sessions, passwords, log)
	rewards := services.NewRewardsService(storage, log)
	pickups := services.NewPickupService(storage, rewards, log)

	var classifier core.Classifier
	if cfg.InferenceAPIKey != "" {
		classifier = inference.New(cfg.InferenceURL, cfg.InferenceAPIKey, cfg.InferenceModelID)
	} else {
		classifier = &inference.Static{}
		log.Warn(ctx, "no inference API key configured, using static classifier")
	}
	items := services.NewItemService(storage, classifier, log)

	var assistant core.Assistant
	if cfg.AssistURL != "" {
		assistant = assist.New(cfg.AssistURL)
	} else {
		assistant = &assist.Canned{}
		log.Warn(ctx, "no assist URL configured, using canned assistant")
	}
	assistSvc := services.NewAssistService(assistant, log)

	marketplace := services.NewMarketplaceService(storage)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format:     accessLogFormat(),
		TimeFormat: "2006/01/02 15:04:05",
		TimeZone:   "Local",
	}))

	if _, err := fiberadapter.NewServer(fiberadapter.Config{
		App:           app,
		Auth:          auth,
		Pickups:       pickups,
		Rewards:       rewards,
		Items:         items,
		Marketplace:   marketplace,
		Assist:        assistSvc,
		Cache:         cache,
		SessionMaxAge: cfg.SessionMaxAge,
		Production:    cfg.Production(),
		Log:           log,
	}); err != nil {
		log.Error(ctx, "server setup failed", "error", err)
		os.Exit(1)
	}

	go func() {
		if err := app.Listen(cfg.Addr); err != nil {
			log.Error(ctx, "app.Listen failed", "error", err)
			os.Exit(1)
		}
	}()
	log.Info(ctx, "server started", "addr", cfg.Addr, "env", cfg.Environment)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info(ctx, "shutting down")
	if err := app.Shutdown(); err != nil {
		log.Error(ctx, "shutdown failed", "error", err)
	}
}
