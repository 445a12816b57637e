package bootstrap

import (
	"context"
	"log/slog"

	"lane-booking/internal/infra/memstore"
	"lane-booking/internal/infra/pgq"
	"lane-booking/internal/infra/seed"
	"lane-booking/internal/infra/uow"
	"lane-booking/internal/pkg/clock"
	"lane-booking/internal/pkg/config"
	"lane-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewUnitOfWork,
		NewReads,
	),
	fx.Invoke(SeedSettings),
)

func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (shared.UnitOfWork, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		logger.Warn("using the in-memory store, data is lost on restart")
		return memstore.NewStore(), nil
	}

	pool, err := NewDB(lc, cfg)
	if err != nil {
		return nil, err
	}
	return uow.NewPostgresUoW(pool, pgq.New(), clk), nil
}

func NewReads(u shared.UnitOfWork) shared.Reads {
	return u.Reads()
}

// SeedSettings writes the establishment settings on first start; later edits in the store win.
func SeedSettings(lc fx.Lifecycle, cfg config.Config, u shared.UnitOfWork, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s, err := seed.LoadSettingsFile(cfg.Store.SettingsSeedFile)
			if err != nil {
				return err
			}
			created, err := seed.EnsureSettings(ctx, u, s)
			if err != nil {
				return err
			}
			if created {
				logger.Info("establishment settings seeded",
					"file", cfg.Store.SettingsSeedFile,
					"active_lanes", s.ActiveLanes)
			}
			return nil
		},
	})
}
