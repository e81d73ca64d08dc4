// Command export writes the festival registration sheet as CSV, either to a
// file or to stdout.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	sitecms "github.com/karafilm/go-sitecms"
	registrationscmd "github.com/karafilm/go-sitecms/internal/commands/registrations"
	"github.com/karafilm/go-sitecms/internal/di"
	"github.com/karafilm/go-sitecms/internal/logging"
	"github.com/karafilm/go-sitecms/internal/migrations"
)

func main() {
	output := flag.String("output", "", "destination file; empty writes to stdout")
	limit := flag.Int("limit", 0, "maximum number of rows; 0 exports everything")
	flag.Parse()

	cfg := sitecms.ConfigFromEnv()

	opts := []di.Option{}
	db, err := openDatabase(cfg.Storage)
	if err != nil {
		log.Fatalf("export: open database: %v", err)
	}
	if db != nil {
		defer db.Close()
		if err := migrations.EnsureSchema(context.Background(), db); err != nil {
			log.Fatalf("export: ensure schema: %v", err)
		}
		opts = append(opts, di.WithBunDB(db))
	}

	module, err := sitecms.New(cfg, opts...)
	if err != nil {
		log.Fatalf("export: init module: %v", err)
	}

	msg := registrationscmd.ExportCommand{
		Output: *output,
		Limit:  *limit,
	}
	if msg.Output == "" {
		msg.Writer = os.Stdout
	}

	handler := registrationscmd.NewExportHandler(
		module.Submissions(),
		logging.ModuleLogger(module.Container().LoggerProvider(), "site.export"),
	)
	if err := handler.Execute(context.Background(), msg); err != nil {
		log.Fatalf("export: %v", err)
	}
}

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
