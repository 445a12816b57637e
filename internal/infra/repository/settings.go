package repository

import (
	"context"

	"lane-booking/internal/domain/settings"
	"lane-booking/internal/infra"
	"lane-booking/internal/infra/pgq"
	"lane-booking/internal/infra/repository/converter"
	"lane-booking/internal/pkg/clock"
	"lane-booking/internal/pkg/errs"
	"lane-booking/internal/pkg/pgconv"
)

type SettingsQueries interface {
	GetSettings(ctx context.Context, db pgq.DBTX) (pgq.Settings, error)
	UpsertSettings(ctx context.Context, db pgq.DBTX, arg pgq.Settings) error
}

type SettingsRepository struct {
	queries SettingsQueries
	db      pgq.DBTX
	clock   clock.Clock
}

func NewSettingsRepository(queries SettingsQueries, db pgq.DBTX, clk clock.Clock) *SettingsRepository {
	return &SettingsRepository{
		queries: queries,
		db:      db,
		clock:   clk,
	}
}

func (r *SettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	return LoadSettings(ctx, r.queries, r.db)
}

func (r *SettingsRepository) Save(ctx context.Context, s *settings.Settings) error {
	if err := s.Validate(); err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}
	params, err := converter.SettingsToInfra(s, r.clock.Now())
	if err != nil {
		return infra.WrapRepoErr("failed to encode settings", err, infra.KindDBFailure)
	}
	if err = r.queries.UpsertSettings(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to save settings", err)
	}
	return nil
}

// LoadSettings is shared with the read store.
func LoadSettings(ctx context.Context, queries SettingsQueries, db pgq.DBTX) (*settings.Settings, error) {
	row, err := queries.GetSettings(ctx, db)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("settings not found", err, infra.KindNotFound), errs.ErrSettingsNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load settings", err)
	}
	s, err := converter.SettingsToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode settings", err, infra.KindDBFailure)
	}
	return s, nil
}
