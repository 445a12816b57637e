package settings

import (
	"errors"
	"time"

	"lane-booking/internal/domain/availability"
	"lane-booking/internal/domain/money"
	"lane-booking/internal/domain/pricing"
	"lane-booking/internal/domain/schedule"
	"lane-booking/internal/pkg/clock"
)

var (
	ErrInvalidActiveLanes = errors.New("active lanes must be positive")
	ErrInvalidPrice       = errors.New("lane prices cannot be negative")
)

// Settings is the establishment configuration snapshot read by the booking core.
type Settings struct {
	EstablishmentName    string
	Address              string
	Phone                string
	WhatsappLink         string
	ActiveLanes          int
	WeekdayPrice         money.Money
	WeekendPrice         money.Money
	OnlinePaymentEnabled bool
	PaymentPublicKey     string
	BusinessHours        schedule.WeeklyHours
}

func Default() *Settings {
	return &Settings{
		EstablishmentName: "Tô Na Pista Boliche",
		ActiveLanes:       6,
		WeekdayPrice:      money.New(14000),
		WeekendPrice:      money.New(16000),
		BusinessHours:     schedule.DefaultWeeklyHours(),
	}
}

func (s *Settings) Validate() error {
	if s.ActiveLanes <= 0 {
		return ErrInvalidActiveLanes
	}
	if s.WeekdayPrice.IsNegative() || s.WeekendPrice.IsNegative() {
		return ErrInvalidPrice
	}
	return s.BusinessHours.Validate()
}

func (s *Settings) PricingResolver() *pricing.Resolver {
	return pricing.NewResolver(s.WeekdayPrice, s.WeekendPrice)
}

func (s *Settings) Calendar(clk clock.Clock, loc *time.Location) *schedule.Calendar {
	return schedule.NewCalendar(s.BusinessHours, clk, loc)
}

func (s *Settings) AvailabilityCalculator(calendar *schedule.Calendar) *availability.Calculator {
	return availability.NewCalculator(s.ActiveLanes, calendar)
}
