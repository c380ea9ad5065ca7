package main

import (
	"net/http"
	"os"
	"time"

	"vetcare360/internal/adapters/storage/postgres"
	"vetcare360/internal/platform/config"
	"vetcare360/internal/platform/httpx"
	"vetcare360/internal/platform/logger"
	"vetcare360/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	httpx.SetDebug(!cfg.IsProduction())

	opts := router.Options{Log: log}
	if cfg.DBDSN != "" {
		db, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			log.Error("postgres open", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		defer db.Close()

		if err := postgres.Migrate(db, log); err != nil {
			log.Error("postgres migrate", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		opts.DB = db
	} else {
		log.Warn("DB_DSN not set, using in-memory store", nil)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": cfg.Addr(), "env": cfg.Env})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
