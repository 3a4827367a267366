package main

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	"med-dose-tracker/internal/adapters/auth/tokenapi"
	"med-dose-tracker/internal/adapters/notify/webhook"
	pg "med-dose-tracker/internal/adapters/storage/postgres"
	lite "med-dose-tracker/internal/adapters/storage/sqlite"
	"med-dose-tracker/internal/config"
	"med-dose-tracker/internal/platform/dispatch"
	"med-dose-tracker/internal/platform/logger"
	"med-dose-tracker/internal/ports/auth"
	"med-dose-tracker/internal/ports/notify"
	"med-dose-tracker/internal/router"
)

// @title med-dose-tracker API
// @version 0.1
// @description Tracking de dosis de medicamentos: schedules recurrentes, dose reminders y su ciclo de vida (pending / taken / skipped / overdue).
// @BasePath /
func main() {
	cfg := config.Load()
	log := logger.NewFromEnv()

	// Storage explícito según driver; sin driver, in-memory (modo dev).
	var (
		db      *sql.DB
		err     error
		dialect string
	)
	switch cfg.DBDriver {
	case "postgres":
		db, err = pg.Open(cfg.DBDSN)
		dialect = "postgres"
	case "sqlite":
		db, err = lite.Open(cfg.DBDSN)
		dialect = "sqlite"
	case "":
		log.Warn("no DB_DRIVER set, using in-memory storage (data is lost on restart)", nil)
	default:
		log.Error("unknown DB_DRIVER", map[string]any{"driver": cfg.DBDriver})
		os.Exit(1)
	}
	if err != nil {
		log.Error("open storage", map[string]any{"driver": cfg.DBDriver, "err": err.Error()})
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
	}

	// Con AUTH_VERIFY_URL se valida el Bearer token contra el servicio de
	// identidad; sin él queda el modo dev (header X-Debug-User-ID).
	var verifier auth.AuthVerifier
	if cfg.AuthVerifyURL != "" {
		v, err := tokenapi.NewVerifier(tokenapi.Config{
			BaseURL: cfg.AuthVerifyURL,
			APIKey:  cfg.AuthAPIKey,
		})
		if err != nil {
			log.Error("configure auth verifier", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		verifier = v
	}

	r, svcs, err := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		DB:           db,
		Dialect:      dialect,
	})
	if err != nil {
		log.Error("build router", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	// Handoff de dosis vencidas al scheduler de notificaciones externo.
	var sink notify.Scheduler
	if wh := webhook.NewClient(webhook.Config{
		URL:    cfg.NotifyWebhookURL,
		APIKey: cfg.NotifyWebhookAPIKey,
	}); wh.IsConfigured() {
		sink = wh
	}

	d := dispatch.New(svcs.Reminders, svcs.Medicines, sink, log, cfg.DispatchInterval)
	if err := d.Start(); err != nil {
		log.Error("start dispatcher", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
	defer d.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": srv.Addr, "storage": storageName(dialect)})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}

func storageName(dialect string) string {
	if dialect == "" {
		return "memory"
	}
	return dialect
}
