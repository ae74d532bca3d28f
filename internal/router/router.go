package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	mem "pet-manager/internal/adapters/storage/memory"
	"pet-manager/internal/app"
	_ "pet-manager/internal/docs"
	"pet-manager/internal/domain/pets"
	"pet-manager/internal/domain/theme"
	"pet-manager/internal/middleware"
	"pet-manager/internal/platform/config"
	"pet-manager/internal/platform/logger"
	"pet-manager/internal/ports/kv"
	"pet-manager/internal/ui/timer"
	"pet-manager/internal/web"
)

type Options struct {
	// Opcional: si es nil, in-memory.
	Store kv.Store
	Log   logger.Logger

	UI        config.UIConfig
	Scheduler timer.Scheduler // nil = timers reales

	// Opcional: si viene, se comparte con quien lo creó (p.ej. para Prune).
	Sessions    *app.Sessions
	MaxSessions int

	CORSAllowAll bool
}

// Deps son las piezas armadas a partir de Options.
type Deps struct {
	Store    kv.Store
	Repo     *pets.Repository
	Sessions *app.Sessions
}

// Build arma repositorio y sesiones sobre el store.
func Build(ctx context.Context, opts Options) Deps {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	store := opts.Store
	if store == nil {
		store = mem.NewKVStore()
	}

	repo := pets.NewRepository(ctx, pets.NewKVSnapshot(store, log), pets.NewIDGenerator())

	sessions := opts.Sessions
	if sessions == nil {
		sessions = app.NewSessions(app.Options{
			Repo:          repo,
			Store:         store,
			Log:           log,
			Scheduler:     opts.Scheduler,
			RemovalDelay:  opts.UI.RemovalDelay,
			PageHideDelay: opts.UI.PageHideDelay,
		}, opts.MaxSessions)
	}

	return Deps{Store: store, Repo: repo, Sessions: sessions}
}

func NewRouter(opts Options) http.Handler {
	return NewRouterWith(Build(context.Background(), opts), opts)
}

func NewRouterWith(d Deps, opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// API JSON
	r.Route("/api", func(api chi.Router) {
		if opts.CORSAllowAll {
			api.Use(cors.Handler(cors.Options{
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
				AllowedHeaders: []string{"Accept", "Content-Type"},
				MaxAge:         300,
			}))
		}

		pets.RegisterRoutes(api, d.Repo)
		theme.RegisterRoutes(api, d.Store, log)
	})

	// UI HTML, una App por sesión
	r.Group(func(ui chi.Router) {
		ui.Use(middleware.Session(d.Sessions))
		web.RegisterRoutes(ui, log)
	})

	return r
}
