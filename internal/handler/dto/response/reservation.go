package response

import (
	"time"

	"lane-booking/internal/domain/reservation"
	"lane-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type GuestResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

type ReservationResponse struct {
	ID            uuid.UUID       `json:"id"`
	ClientID      uuid.UUID       `json:"clientId"`
	ClientName    string          `json:"clientName"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	StartHour     int             `json:"startHour"`
	Duration      int             `json:"duration"`
	LaneCount     int             `json:"laneCount"`
	TotalCents    int64           `json:"totalValueCents"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	EventType     string          `json:"eventType,omitempty"`
	PeopleCount   int             `json:"peopleCount,omitempty"`
	Observations  string          `json:"observations,omitempty"`
	Guests        []GuestResponse `json:"guests"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	resp := &ReservationResponse{}
	_ = copier.Copy(resp, v)
	if resp.Guests == nil {
		resp.Guests = []GuestResponse{}
	}
	return resp
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(views))
	for i, v := range views {
		out[i] = FromReservationView(v)
	}
	return out
}

func FromReservations(rows []*reservation.Reservation) []*ReservationResponse {
	return FromReservationViews(queries.NewReservationViews(rows))
}
