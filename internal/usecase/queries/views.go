package queries

import (
	"time"

	"lane-booking/internal/domain/client"
	"lane-booking/internal/domain/reservation"
	"lane-booking/internal/domain/schedule"
	"lane-booking/internal/domain/settings"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID            uuid.UUID           `json:"id"`
	ClientID      uuid.UUID           `json:"client_id"`
	ClientName    string              `json:"client_name"`
	Date          string              `json:"date"`
	Time          string              `json:"time"`
	StartHour     int                 `json:"start_hour"`
	Duration      int                 `json:"duration"`
	LaneCount     int                 `json:"lane_count"`
	TotalCents    int64               `json:"total_cents"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"payment_status"`
	EventType     string              `json:"event_type"`
	PeopleCount   int                 `json:"people_count"`
	Observations  string              `json:"observations"`
	Guests        []reservation.Guest `json:"guests"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func NewReservationView(r *reservation.Reservation) *ReservationView {
	return &ReservationView{
		ID:            r.ID(),
		ClientID:      r.ClientID(),
		ClientName:    r.ClientName(),
		Date:          r.Date().String(),
		Time:          r.Time(),
		StartHour:     r.StartHour(),
		Duration:      r.Duration(),
		LaneCount:     r.LaneCount(),
		TotalCents:    r.TotalValue().Cents(),
		Status:        r.Status().String(),
		PaymentStatus: r.PaymentStatus().String(),
		EventType:     r.EventType(),
		PeopleCount:   r.PeopleCount(),
		Observations:  r.Observations(),
		Guests:        r.Guests(),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
}

func NewReservationViews(rows []*reservation.Reservation) []*ReservationView {
	views := make([]*ReservationView, len(rows))
	for i, r := range rows {
		views[i] = NewReservationView(r)
	}
	return views
}

type ClientView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Tags          []string  `json:"tags"`
	FunnelStage   string    `json:"funnel_stage"`
	CreatedAt     time.Time `json:"created_at"`
	LastContactAt time.Time `json:"last_contact_at"`
}

func NewClientView(c *client.Client) *ClientView {
	return &ClientView{
		ID:            c.ID(),
		Name:          c.Name(),
		Phone:         c.Phone(),
		Email:         c.Email(),
		Tags:          c.Tags(),
		FunnelStage:   c.FunnelStage().String(),
		CreatedAt:     c.CreatedAt(),
		LastContactAt: c.LastContactAt(),
	}
}

type SlotView struct {
	Hour      int    `json:"hour"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
	Remaining int    `json:"remaining"`
	IsPast    bool   `json:"is_past"`
}

type DayAvailabilityView struct {
	Date             string     `json:"date"`
	IsOpen           bool       `json:"is_open"`
	ActiveLanes      int        `json:"active_lanes"`
	PricePerLaneHour int64      `json:"price_per_lane_hour_cents"`
	PriceCategory    string     `json:"price_category"`
	RequestedLanes   int        `json:"requested_lanes"`
	Slots            []SlotView `json:"slots"`
}

type BlockQuote struct {
	Start      int    `json:"start"`
	Label      string `json:"label"`
	Duration   int    `json:"duration"`
	ValueCents int64  `json:"value_cents"`
}

type QuoteView struct {
	Date       string       `json:"date"`
	LaneCount  int          `json:"lane_count"`
	TotalHours int          `json:"total_hours"`
	TotalCents int64        `json:"total_cents"`
	Blocks     []BlockQuote `json:"blocks"`
}

type CalendarDayView struct {
	Date     string `json:"date"`
	Weekday  int    `json:"weekday"`
	Bookable bool   `json:"bookable"`
}

type HistoryCounts struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
	NoShow    int `json:"no_show"`
}

type ClientHistoryView struct {
	Client       *ClientView        `json:"client"`
	Reservations []*ReservationView `json:"reservations"`
	Counts       HistoryCounts      `json:"counts"`
	// LaneHours counts confirmed attendance only.
	LaneHours  int   `json:"lane_hours"`
	SpentCents int64 `json:"spent_cents"`
}

type SettingsView struct {
	EstablishmentName    string               `json:"establishment_name"`
	Address              string               `json:"address"`
	Phone                string               `json:"phone"`
	WhatsappLink         string               `json:"whatsapp_link"`
	ActiveLanes          int                  `json:"active_lanes"`
	WeekdayPriceCents    int64                `json:"weekday_price_cents"`
	WeekendPriceCents    int64                `json:"weekend_price_cents"`
	OnlinePaymentEnabled bool                 `json:"online_payment_enabled"`
	PaymentPublicKey     string               `json:"payment_public_key,omitempty"`
	BusinessHours        schedule.WeeklyHours `json:"business_hours"`
}

func NewSettingsView(s *settings.Settings) *SettingsView {
	return &SettingsView{
		EstablishmentName:    s.EstablishmentName,
		Address:              s.Address,
		Phone:                s.Phone,
		WhatsappLink:         s.WhatsappLink,
		ActiveLanes:          s.ActiveLanes,
		WeekdayPriceCents:    s.WeekdayPrice.Cents(),
		WeekendPriceCents:    s.WeekendPrice.Cents(),
		OnlinePaymentEnabled: s.OnlinePaymentEnabled,
		PaymentPublicKey:     s.PaymentPublicKey,
		BusinessHours:        s.BusinessHours,
	}
}
