package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpadapter "resumeforge/internal/adapter/http"
	repo "resumeforge/internal/adapter/repository"
	"resumeforge/internal/config"
	"resumeforge/internal/infrastructure/migration"
	"resumeforge/internal/render"
	"resumeforge/internal/session"
	infra "resumeforge/pkg/infrastructure"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zerolog.TimeFieldFormat = time.RFC3339
	cfg := config.Load()

	// storage: Postgres when configured, files otherwise; either way a
	// failure only loses persistence, never the in-memory session
	var store session.Store = session.NewFileStore(cfg.DataDir)
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewSessionsPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Warn().Err(err).Msg("sessions DB not available, falling back to file store")
		} else {
			defer pool.Close()
			if err := migration.RunMigrations(ctx, pool, log.Logger); err != nil {
				log.Fatal().Err(err).Msg("migrations failed")
			}
			store = repo.NewStateRepo(pool)
		}
	}

	sess := session.New(store, cfg.SaveDebounce, log.Logger)
	sess.Load(ctx)

	registry := render.NewRegistry()
	renderer := infra.NewChromedpRenderer()

	app := fiber.New()
	h := httpadapter.NewHandler(sess, registry, renderer, log.Logger)
	h.Register(app)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("resumeforge listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Warn().Err(err).Msg("shutdown")
	}
	sess.Close(context.Background())
	os.Exit(0)
}
