package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"pet-manager/internal/adapters/storage"
	"pet-manager/internal/platform/config"
	"pet-manager/internal/platform/logger"
	"pet-manager/internal/router"
)

// @title        Pet Manager API
// @version      1.0
// @description  CRUD de mascotas y preferencia de tema.
// @BasePath     /
func main() {
	configPath := flag.String("config", os.Getenv("PETMGR_CONFIG"), "ruta al YAML de configuración")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.NewFromEnv().Error("loading config", map[string]any{"err": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App,
	})

	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", map[string]any{"err": err})
		os.Exit(1)
	}

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", map[string]any{"err": err})
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closer, err := storage.Open(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer closer.Close()

	opts := router.Options{
		Store:        store,
		Log:          log,
		UI:           cfg.UI,
		CORSAllowAll: cfg.CORSAllowAll,
	}
	deps := router.Build(ctx, opts)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router.NewRouterWith(deps, opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": cfg.Addr, "store": string(cfg.Store.Driver)})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// sesiones sin actividad (pestañas cerradas)
	g.Go(func() error {
		t := time.NewTicker(5 * time.Minute)
		defer t.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-t.C:
				if n := deps.Sessions.Prune(30 * time.Minute); n > 0 {
					log.Debug("sessions pruned", map[string]any{"count": n})
				}
			}
		}
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info("shutting down", nil)
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
