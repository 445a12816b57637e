package converter

import (
	"encoding/json"
	"time"

	"lane-booking/internal/domain/money"
	"lane-booking/internal/domain/schedule"
	"lane-booking/internal/domain/settings"
	"lane-booking/internal/infra/pgq"
	"lane-booking/internal/pkg/errs"
)

func SettingsToInfra(s *settings.Settings, now time.Time) (pgq.Settings, error) {
	hours, err := json.Marshal(s.BusinessHours)
	if err != nil {
		return pgq.Settings{}, errs.Wrap(err, "encode business hours")
	}
	return pgq.Settings{
		EstablishmentName:    s.EstablishmentName,
		Address:              s.Address,
		Phone:                s.Phone,
		WhatsappLink:         s.WhatsappLink,
		ActiveLanes:          int32(s.ActiveLanes),
		WeekdayPriceCents:    s.WeekdayPrice.Cents(),
		WeekendPriceCents:    s.WeekendPrice.Cents(),
		OnlinePaymentEnabled: s.OnlinePaymentEnabled,
		PaymentPublicKey:     s.PaymentPublicKey,
		BusinessHours:        hours,
		UpdatedAt:            now,
	}, nil
}

func SettingsToDomain(row pgq.Settings) (*settings.Settings, error) {
	var hours schedule.WeeklyHours
	if err := json.Unmarshal(row.BusinessHours, &hours); err != nil {
		return nil, errs.Wrap(err, "decode business hours")
	}
	return &settings.Settings{
		EstablishmentName:    row.EstablishmentName,
		Address:              row.Address,
		Phone:                row.Phone,
		WhatsappLink:         row.WhatsappLink,
		ActiveLanes:          int(row.ActiveLanes),
		WeekdayPrice:         money.New(row.WeekdayPriceCents),
		WeekendPrice:         money.New(row.WeekendPriceCents),
		OnlinePaymentEnabled: row.OnlinePaymentEnabled,
		PaymentPublicKey:     row.PaymentPublicKey,
		BusinessHours:        hours,
	}, nil
}
