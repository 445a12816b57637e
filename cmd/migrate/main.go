// Command migrate applies the SQL files under migrations/ with the atlas CLI.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"lane-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	dir := flag.String("dir", "file://migrations", "migration directory URL")
	status := flag.Bool("status", false, "print pending migrations without applying them")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not read .env", "error", err)
	}

	var db config.DBConfig
	if err := envconfig.Process("", &db); err != nil {
		slog.Error("invalid database config", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		slog.Error("atlas client unavailable", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if *status {
		res, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
			URL:    db.BuildDSN(),
			DirURL: *dir,
		})
		if err != nil {
			slog.Error("migrate status failed", "error", err)
			os.Exit(1)
		}
		slog.Info("migration status", "current", res.Current, "next", res.Next, "pending", len(res.Pending))
		return
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    db.BuildDSN(),
		DirURL: *dir,
	})
	if err != nil {
		slog.Error("migrate apply failed", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied", "count", len(res.Applied), "from", res.Current, "to", res.Target)
}
