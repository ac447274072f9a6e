package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/backend"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/config"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/logger"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/metrics"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/server"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/storage"
)

func main() {
	cfg, err := config.ReadConfig()
	if err != nil {
		log.Fatal(err)
	}
	log := logger.Get(cfg.Debug)
	for _, w := range cfg.Warnings {
		log.Warn().Msg(w)
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	log.Debug().Str("addr", cfg.Addr).Str("backend", cfg.BackendURL).Dur("timeout", cfg.BackendTimeout).
		Dur("session_ttl", cfg.SessionTTL).Dur("draft_ttl", cfg.DraftTTL).Send()

	var stor interface {
		server.Storage
		Close() error
	}
	if err = storage.Migrations(cfg.DBDsn, cfg.MigratePath); err != nil {
		log.Error().Err(err).Msg("migrations failed")
	}
	stor, err = storage.NewDB(ctx, cfg.DBDsn)
	if err != nil {
		log.Error().Err(err).Msg("connecting to data base failed; sessions are kept in memory")
		stor = storage.New()
	}
	defer func() {
		if err := stor.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close session storage")
		}
	}()

	m := metrics.New()
	api := backend.New(cfg.BackendURL, cfg.BackendTimeout, backend.WithObserver(m))
	serv := server.New(*cfg, stor, api, m)

	group, gCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return serv.Run(gCtx)
	})
	group.Go(func() error {
		return serv.RunSweeper(gCtx)
	})
	group.Go(func() error {
		<-gCtx.Done()
		log.Debug().Msg("shutting down")
		return serv.ShutdownServer()
	})

	if err = group.Wait(); err != nil {
		log.Info().Str("stoping reason", err.Error()).Msg("Server stoped")
		return
	}
	log.Info().Msg("server stoped")
}
