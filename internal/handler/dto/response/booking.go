package response

import (
	"lane-booking/internal/domain/schedule"
	"lane-booking/internal/usecase/commands"
	"lane-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SettingsResponse struct {
	EstablishmentName    string               `json:"establishmentName"`
	Address              string               `json:"address"`
	Phone                string               `json:"phone"`
	WhatsappLink         string               `json:"whatsappLink"`
	ActiveLanes          int                  `json:"activeLanes"`
	WeekdayPriceCents    int64                `json:"weekdayPriceCents"`
	WeekendPriceCents    int64                `json:"weekendPriceCents"`
	OnlinePaymentEnabled bool                 `json:"onlinePaymentEnabled"`
	PaymentPublicKey     string               `json:"paymentPublicKey,omitempty"`
	BusinessHours        schedule.WeeklyHours `json:"businessHours"`
}

func FromSettingsView(v *queries.SettingsView) *SettingsResponse {
	resp := &SettingsResponse{}
	_ = copier.Copy(resp, v)
	return resp
}

type CalendarDayResponse struct {
	Date     string `json:"date"`
	Weekday  int    `json:"weekday"`
	Bookable bool   `json:"bookable"`
}

func FromCalendarDayViews(views []queries.CalendarDayView) []CalendarDayResponse {
	out := make([]CalendarDayResponse, 0, len(views))
	_ = copier.Copy(&out, &views)
	return out
}

type SlotResponse struct {
	Hour      int    `json:"hour"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
	Remaining int    `json:"remaining"`
	IsPast    bool   `json:"isPast"`
}

type AvailabilityResponse struct {
	Date             string         `json:"date"`
	IsOpen           bool           `json:"isOpen"`
	ActiveLanes      int            `json:"activeLanes"`
	PricePerLaneHour int64          `json:"pricePerLaneHourCents"`
	PriceCategory    string         `json:"priceCategory"`
	RequestedLanes   int            `json:"requestedLanes"`
	Slots            []SlotResponse `json:"slots"`
}

func FromDayAvailabilityView(v *queries.DayAvailabilityView) *AvailabilityResponse {
	resp := &AvailabilityResponse{}
	_ = copier.Copy(resp, v)
	if resp.Slots == nil {
		resp.Slots = []SlotResponse{}
	}
	return resp
}

type BlockQuoteResponse struct {
	Start      int    `json:"start"`
	Label      string `json:"label"`
	Duration   int    `json:"duration"`
	ValueCents int64  `json:"valueCents"`
}

type QuoteResponse struct {
	Date       string               `json:"date"`
	LaneCount  int                  `json:"laneCount"`
	TotalHours int                  `json:"totalHours"`
	TotalCents int64                `json:"totalCents"`
	Blocks     []BlockQuoteResponse `json:"blocks"`
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	resp := &QuoteResponse{}
	_ = copier.Copy(resp, v)
	if resp.Blocks == nil {
		resp.Blocks = []BlockQuoteResponse{}
	}
	return resp
}

type CheckoutResponse struct {
	Mode       string `json:"mode"`
	PaymentURL string `json:"paymentUrl,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

func fromCheckout(c commands.Checkout) CheckoutResponse {
	return CheckoutResponse{Mode: string(c.Mode), PaymentURL: c.PaymentURL, Reason: c.Reason}
}

type BookingResponse struct {
	Client       *ClientResponse        `json:"client"`
	Reservations []*ReservationResponse `json:"reservations,omitempty"`
	TotalCents   int64                  `json:"totalCents"`
	Checkout     CheckoutResponse       `json:"checkout"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) *BookingResponse {
	return &BookingResponse{
		Client:       FromClient(r.Client),
		Reservations: FromReservations(r.Reservations),
		TotalCents:   r.Total.Cents(),
		Checkout:     fromCheckout(r.Checkout),
	}
}

type CheckoutResultResponse struct {
	Reservations []*ReservationResponse `json:"reservations,omitempty"`
	TotalCents   int64                  `json:"totalCents"`
	Checkout     CheckoutResponse       `json:"checkout"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResultResponse {
	return &CheckoutResultResponse{
		Reservations: FromReservations(r.Reservations),
		TotalCents:   r.Total.Cents(),
		Checkout:     fromCheckout(r.Checkout),
	}
}
