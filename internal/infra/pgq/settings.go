package pgq

import "context"

const getSettings = `SELECT establishment_name, address, phone, whatsapp_link, active_lanes,
	weekday_price_cents, weekend_price_cents, online_payment_enabled, payment_public_key,
	business_hours, updated_at
FROM settings WHERE id = 1`

func (q *Queries) GetSettings(ctx context.Context, db DBTX) (Settings, error) {
	var s Settings
	err := db.QueryRow(ctx, getSettings).Scan(
		&s.EstablishmentName,
		&s.Address,
		&s.Phone,
		&s.WhatsappLink,
		&s.ActiveLanes,
		&s.WeekdayPriceCents,
		&s.WeekendPriceCents,
		&s.OnlinePaymentEnabled,
		&s.PaymentPublicKey,
		&s.BusinessHours,
		&s.UpdatedAt,
	)
	return s, err
}

const upsertSettings = `INSERT INTO settings (id, establishment_name, address, phone, whatsapp_link, active_lanes,
	weekday_price_cents, weekend_price_cents, online_payment_enabled, payment_public_key, business_hours, updated_at)
VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO UPDATE SET
	establishment_name = EXCLUDED.establishment_name,
	address = EXCLUDED.address,
	phone = EXCLUDED.phone,
	whatsapp_link = EXCLUDED.whatsapp_link,
	active_lanes = EXCLUDED.active_lanes,
	weekday_price_cents = EXCLUDED.weekday_price_cents,
	weekend_price_cents = EXCLUDED.weekend_price_cents,
	online_payment_enabled = EXCLUDED.online_payment_enabled,
	payment_public_key = EXCLUDED.payment_public_key,
	business_hours = EXCLUDED.business_hours,
	updated_at = EXCLUDED.updated_at`

func (q *Queries) UpsertSettings(ctx context.Context, db DBTX, arg Settings) error {
	_, err := db.Exec(ctx, upsertSettings,
		arg.EstablishmentName,
		arg.Address,
		arg.Phone,
		arg.WhatsappLink,
		arg.ActiveLanes,
		arg.WeekdayPriceCents,
		arg.WeekendPriceCents,
		arg.OnlinePaymentEnabled,
		arg.PaymentPublicKey,
		arg.BusinessHours,
		arg.UpdatedAt,
	)
	return err
}
