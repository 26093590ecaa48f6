package router

import (
	"database/sql"
	"net/http"

	_ "pet-grooming-api/docs"
	mem "pet-grooming-api/internal/adapters/storage/memory"
	pg "pet-grooming-api/internal/adapters/storage/postgres"
	"pet-grooming-api/internal/domain/locations"
	"pet-grooming-api/internal/domain/pets"
	"pet-grooming-api/internal/middleware"
	"pet-grooming-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev: X-Debug-User-ID)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger *zap.Logger
}

func NewRouter(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	// El logger envuelve al recoverer: un panic recuperado también se loguea.
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/api-docs/*", httpSwagger.Handler())

	// Repos: Postgres si hay DB, in-memory si no (dev/tests).
	var (
		locationsRepo locations.Repository
		petsRepo      pets.Repository
	)

	if opts.DB != nil {
		locationsRepo = pg.NewLocationsRepo(opts.DB)
		petsRepo = pg.NewPetsRepo(opts.DB)
	} else {
		locationsRepo = mem.NewLocationsRepo()
		petsRepo = mem.NewPetsRepo()
	}

	// Services por módulo
	locationsSvc := locations.NewService(locationsRepo)
	petsSvc := pets.NewService(petsRepo)

	// Todos los recursos exigen un bearer verificado; el guard de ownership
	// de pets corre adentro de su propio módulo.
	r.Group(func(gr chi.Router) {
		gr.Use(middleware.RequireAuth)

		locations.RegisterRoutes(gr, locationsSvc, logger)
		pets.RegisterRoutes(gr, petsSvc, logger)
	})

	return r
}
