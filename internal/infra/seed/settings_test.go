//go:build unit

package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"lane-booking/internal/domain/money"
	"lane-booking/internal/domain/schedule"
	"lane-booking/internal/domain/settings"
	"lane-booking/internal/infra/memstore"
	"lane-booking/internal/infra/seed"
	"lane-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSettings(t *testing.T) {
	s, err := seed.ParseSettings([]byte(`
establishment_name: Pista Teste
active_lanes: 4
weekday_price_cents: 12000
online_payment_enabled: true
business_hours:
  Monday: { isOpen: false, start: 18, end: 0 }
`))
	require.NoError(t, err)

	assert.Equal(t, "Pista Teste", s.EstablishmentName)
	assert.Equal(t, 4, s.ActiveLanes)
	assert.Equal(t, money.New(12000), s.WeekdayPrice)
	assert.Equal(t, money.New(16000), s.WeekendPrice, "unset fields keep defaults")
	assert.True(t, s.OnlinePaymentEnabled)
	assert.False(t, s.BusinessHours.For(time.Monday).IsOpen)
	assert.Equal(t, schedule.BusinessHours{IsOpen: true, Start: 18, End: 2}, s.BusinessHours.For(time.Friday))
}

func TestParseSettings_Invalid(t *testing.T) {
	tests := map[string]string{
		"zero lanes":      "active_lanes: 0",
		"negative price":  "weekend_price_cents: -1",
		"unknown weekday": "business_hours:\n  funday: { isOpen: true, start: 1, end: 2 }",
		"hour overflow":   "business_hours:\n  monday: { isOpen: true, start: 25, end: 2 }",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := seed.ParseSettings([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadSettingsFile(t *testing.T) {
	s, err := seed.LoadSettingsFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, settings.Default(), s)

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("active_lanes: 8\n"), 0o600))
	s, err = seed.LoadSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, 8, s.ActiveLanes)
}

func TestEnsureSettings(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewStore()

	_, err := store.Settings(ctx)
	require.True(t, errs.Is(err, errs.ErrSettingsNotFound))

	first := settings.Default()
	wrote, err := seed.EnsureSettings(ctx, store, first)
	require.NoError(t, err)
	assert.True(t, wrote)

	second := settings.Default()
	second.ActiveLanes = 2
	wrote, err = seed.EnsureSettings(ctx, store, second)
	require.NoError(t, err)
	assert.False(t, wrote, "existing settings are never overwritten")

	got, err := store.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, got.ActiveLanes)
}
