// Package seed loads the establishment settings file applied to an empty store.
package seed

import (
	"context"
	"os"
	"strings"
	"time"

	"lane-booking/internal/domain/money"
	"lane-booking/internal/domain/schedule"
	"lane-booking/internal/domain/settings"
	"lane-booking/internal/pkg/errs"
	"lane-booking/internal/usecase/shared"

	"gopkg.in/yaml.v3"
)

type settingsFile struct {
	EstablishmentName    string                            `yaml:"establishment_name"`
	Address              string                            `yaml:"address"`
	Phone                string                            `yaml:"phone"`
	WhatsappLink         string                            `yaml:"whatsapp_link"`
	ActiveLanes          int                               `yaml:"active_lanes"`
	WeekdayPriceCents    int64                             `yaml:"weekday_price_cents"`
	WeekendPriceCents    int64                             `yaml:"weekend_price_cents"`
	OnlinePaymentEnabled bool                              `yaml:"online_payment_enabled"`
	PaymentPublicKey     string                            `yaml:"payment_public_key"`
	BusinessHours        map[string]schedule.BusinessHours `yaml:"business_hours"`
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseSettings decodes YAML over the defaults; weekdays missing from business_hours keep
// their default opening.
func ParseSettings(data []byte) (*settings.Settings, error) {
	defaults := settings.Default()
	file := settingsFile{
		EstablishmentName: defaults.EstablishmentName,
		ActiveLanes:       defaults.ActiveLanes,
		WeekdayPriceCents: defaults.WeekdayPrice.Cents(),
		WeekendPriceCents: defaults.WeekendPrice.Cents(),
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errs.Wrap(err, "decode settings yaml")
	}

	hours := defaults.BusinessHours
	for name, bh := range file.BusinessHours {
		day, ok := weekdays[strings.ToLower(name)]
		if !ok {
			return nil, errs.Newf("unknown weekday %q in business_hours", name)
		}
		hours[day] = bh
	}

	s := &settings.Settings{
		EstablishmentName:    file.EstablishmentName,
		Address:              file.Address,
		Phone:                file.Phone,
		WhatsappLink:         file.WhatsappLink,
		ActiveLanes:          file.ActiveLanes,
		WeekdayPrice:         money.New(file.WeekdayPriceCents),
		WeekendPrice:         money.New(file.WeekendPriceCents),
		OnlinePaymentEnabled: file.OnlinePaymentEnabled,
		PaymentPublicKey:     file.PaymentPublicKey,
		BusinessHours:        hours,
	}
	if err := s.Validate(); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid settings file"), errs.ErrValidation)
	}
	return s, nil
}

// LoadSettingsFile falls back to the defaults when path does not exist.
func LoadSettingsFile(path string) (*settings.Settings, error) {
	data, err := os.ReadFile(path)
	if errs.Is(err, os.ErrNotExist) {
		return settings.Default(), nil
	}
	if err != nil {
		return nil, errs.Wrapf(err, "read %s", path)
	}
	return ParseSettings(data)
}

// EnsureSettings writes s only when the store holds no settings yet. It reports whether it wrote.
func EnsureSettings(ctx context.Context, uow shared.UnitOfWork, s *settings.Settings) (bool, error) {
	_, err := uow.Reads().Settings(ctx)
	switch {
	case err == nil:
		return false, nil
	case !errs.Is(err, errs.ErrSettingsNotFound):
		return false, err
	}

	err = uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Settings().Save(ctx, s)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
