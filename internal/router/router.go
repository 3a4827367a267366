package router

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"

	mem "med-dose-tracker/internal/adapters/storage/memory"
	pg "med-dose-tracker/internal/adapters/storage/postgres"
	lite "med-dose-tracker/internal/adapters/storage/sqlite"
	"med-dose-tracker/internal/domain/medicines"
	"med-dose-tracker/internal/domain/reminders"
	"med-dose-tracker/internal/domain/schedules"
	"med-dose-tracker/internal/middleware"
	"med-dose-tracker/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "med-dose-tracker/docs" // registro del swagger generado
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene DB, se usa ese backend SQL según Dialect
	// ("postgres" o "sqlite"). Si no, in-memory.
	DB      *sql.DB
	Dialect string
}

// Services agrupa los servicios ya cableados para que main pueda compartirlos
// con el dispatcher sin reconstruir repos.
type Services struct {
	Medicines *medicines.Service
	Schedules *schedules.Service
	Reminders *reminders.Service
}

func NewRouter(opts Options) (http.Handler, *Services, error) {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		medsRepo  medicines.Repository
		schedRepo schedules.Repository
		remRepo   reminders.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff).
	// Con DSN seteado un fallo de apertura es fatal: caer en silencio al
	// backend in-memory dejaría un deploy mal configurado sin persistir nada.
	db := opts.DB
	dialect := opts.Dialect
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			var err error
			switch os.Getenv("DB_DRIVER") {
			case "sqlite":
				db, err = lite.Open(dsn)
				dialect = "sqlite"
			default:
				db, err = pg.Open(dsn)
				dialect = "postgres"
			}
			if err != nil {
				return nil, nil, fmt.Errorf("open %s storage from DB_DSN: %w", dialect, err)
			}
		}
	}

	switch {
	case db != nil && dialect == "sqlite":
		medsRepo = lite.NewMedicinesRepo(db)
		schedRepo = lite.NewSchedulesRepo(db)
		remRepo = lite.NewRemindersRepo(db)
	case db != nil:
		medsRepo = pg.NewMedicinesRepo(db)
		schedRepo = pg.NewSchedulesRepo(db)
		remRepo = pg.NewRemindersRepo(db)
	default:
		medsRepo = mem.NewMedicinesRepo()
		schedRepo = mem.NewSchedulesRepo()
		remRepo = mem.NewRemindersRepo()
	}

	// Services por módulo. schedules implementa la cascada de medicines.
	schedSvc := schedules.NewService(schedRepo, remRepo)
	medsSvc := medicines.NewService(medsRepo, schedSvc)
	remSvc := reminders.NewService(remRepo)

	// Rutas por módulo
	medicines.RegisterRoutes(r, medsSvc)
	schedules.RegisterRoutes(r, schedSvc, medsSvc)
	reminders.RegisterRoutes(r, remSvc)

	return r, &Services{
		Medicines: medsSvc,
		Schedules: schedSvc,
		Reminders: remSvc,
	}, nil
}
