package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robertsn808/alii/internal/config"
	"github.com/robertsn808/alii/internal/infra"
	"github.com/robertsn808/alii/internal/repository"
	"github.com/robertsn808/alii/internal/service"
	"github.com/robertsn808/alii/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Error-report worker pool: reports enqueued by the services are
	// drained here and forwarded to the external monitor endpoint.
	monitor := infra.NewMonitorClient(cfg.ErrorMonitorURL)
	worker.StartPool(ctx, rdb, monitor, cfg.WorkerPoolSize)

	upp := infra.NewUPPClient(cfg.UPPAPIURL)

	dispatcher := worker.NewDispatcher(rdb)
	txRepo := repository.NewTransactionRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	menuRepo := repository.NewMenuItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	app := &service.Registry{
		Transactions: service.NewTransactionService(txRepo, staffRepo, dispatcher),
		Reports:      service.NewReportService(txRepo, staffRepo),
		Staff:        service.NewStaffService(staffRepo),
		Menu:         service.NewMenuService(menuRepo),
		Orders:       service.NewOrderService(orderRepo, menuRepo, cfg.DefaultPrepMinutes),
		Payments:     upp,
	}

	// Periodic restock check so low-stock items surface in the logs
	// even when nobody is looking at the reports.
	go watchLowStock(ctx, app.Menu, 5*time.Minute)

	log.Info().
		Str("env", cfg.Env).
		Int("workers", cfg.WorkerPoolSize).
		Msg("alii ledger daemon started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down…")
	cancel()
	if err := rdb.Close(); err != nil {
		log.Warn().Err(err).Msg("redis close")
	}
	log.Info().Msg("daemon exited")
}

// watchLowStock periodically scans stock-tracked menu items and warns
// about the ones at or below their minimum.
func watchLowStock(ctx context.Context, menu service.MenuService, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			items, err := menu.ListLowStock(ctx)
			if err != nil {
				log.Warn().Err(err).Msg("low stock scan failed")
				continue
			}
			for _, item := range items {
				log.Warn().
					Str("item", item.Name).
					Int("stock", item.CurrentStock).
					Msg("menu item running low")
			}
		}
	}
}
