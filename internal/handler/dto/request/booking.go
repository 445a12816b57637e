package request

import (
	"strings"

	"lane-booking/internal/domain/reservation"
	"lane-booking/internal/domain/schedule"
	"lane-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type GuestRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

type QuoteRequest struct {
	Date      string `json:"date" binding:"required" example:"2025-01-10"`
	Hours     []int  `json:"hours" binding:"required,min=1"`
	LaneCount int    `json:"laneCount" binding:"required,min=1"`
}

type CreateBookingRequest struct {
	Date         string         `json:"date" binding:"required" example:"2025-01-10"`
	Hours        []int          `json:"hours" binding:"required,min=1"`
	LaneCount    int            `json:"laneCount" binding:"required,min=1"`
	Name         string         `json:"name" binding:"required"`
	Phone        string         `json:"phone" binding:"required"`
	Email        string         `json:"email,omitempty"`
	EventType    string         `json:"eventType,omitempty"`
	PeopleCount  int            `json:"peopleCount,omitempty" binding:"min=0"`
	Observations string         `json:"observations,omitempty"`
	Guests       []GuestRequest `json:"guests,omitempty" binding:"dive"`
}

func (r CreateBookingRequest) ToCommand() (commands.CreateBookingRequest, error) {
	date, err := schedule.ParseDate(r.Date)
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}

	guests := make([]reservation.Guest, 0, len(r.Guests))
	for _, g := range r.Guests {
		guests = append(guests, reservation.NewGuest(g.Name, g.Phone, g.Email))
	}

	return commands.CreateBookingRequest{
		Date:         date,
		Hours:        r.Hours,
		LaneCount:    r.LaneCount,
		Name:         r.Name,
		Phone:        r.Phone,
		Email:        r.Email,
		EventType:    strings.TrimSpace(r.EventType),
		PeopleCount:  r.PeopleCount,
		Observations: strings.TrimSpace(r.Observations),
		Guests:       guests,
	}, nil
}

type CheckoutRequest struct {
	ReservationIDs []uuid.UUID `json:"reservationIds" binding:"required,min=1"`
	// Method is required for staff in-person settlement (PIX, Dinheiro, Cartão).
	Method string `json:"method,omitempty"`
}

func (r CheckoutRequest) ToCommand() commands.CompleteCheckoutRequest {
	return commands.CompleteCheckoutRequest{
		ReservationIDs: r.ReservationIDs,
		Method:         r.Method,
	}
}
