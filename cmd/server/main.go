// Command server runs the site backend as a standalone HTTP service,
// configured entirely from SITE_* environment variables.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	sitecms "github.com/karafilm/go-sitecms"
	"github.com/karafilm/go-sitecms/internal/di"
	"github.com/karafilm/go-sitecms/internal/migrations"
)

func main() {
	cfg := sitecms.ConfigFromEnv()

	opts := []di.Option{}

	db, err := openDatabase(cfg.Storage)
	if err != nil {
		log.Fatalf("server: open database: %v", err)
	}
	if db != nil {
		defer db.Close()
		if err := migrations.EnsureSchema(context.Background(), db); err != nil {
			log.Fatalf("server: ensure schema: %v", err)
		}
		opts = append(opts, di.WithBunDB(db))
	}

	module, err := sitecms.New(cfg, opts...)
	if err != nil {
		log.Fatalf("server: init module: %v", err)
	}

	addr := listenAddr()
	server := &http.Server{
		Addr:              addr,
		Handler:           module.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("server: listening on %s", addr)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	case sig := <-stop:
		log.Printf("server: received %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("server: shutdown: %v", err)
		}
	}
}

// openDatabase returns nil without error when no driver is configured; the
// module then serves from the local mirror and memory repositories.
func openDatabase(cfg sitecms.StorageConfig) (*bun.DB, error) {
	if cfg.Driver == "" {
		return nil, nil
	}

	sqlDB, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	switch cfg.Driver {
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New()), nil
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New()), nil
	}
}

func listenAddr() string {
	if addr := os.Getenv("SITE_LISTEN_ADDR"); addr != "" {
		return addr
	}
	return ":8080"
}
