//go:build unit || integration

package testutil

import (
	"testing"
	"time"

	"lane-booking/internal/domain/client"
	"lane-booking/internal/domain/money"
	"lane-booking/internal/domain/reservation"
	"lane-booking/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Monday 2025-01-06 noon; most fixtures book the following Tuesday.
var FixedNow = time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)

type ReservationBuilder struct {
	ID            uuid.UUID
	ClientID      uuid.UUID
	ClientName    string
	Date          schedule.Date
	StartHour     int
	Duration      int
	LaneCount     int
	TotalCents    int64
	Status        reservation.Status
	PaymentStatus reservation.PaymentStatus
	Details       reservation.Details
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:            uuid.New(),
		ClientID:      uuid.New(),
		ClientName:    "Ana Souza",
		Date:          schedule.MustParseDate("2025-01-07"),
		StartHour:     18,
		Duration:      1,
		LaneCount:     1,
		TotalCents:    14000,
		Status:        reservation.StatusPending,
		PaymentStatus: reservation.PaymentPending,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) Build(t *testing.T) *reservation.Reservation {
	t.Helper()
	r, err := reservation.ReconstructReservation(reservation.ReconstructParams{
		ID:            b.ID,
		ClientID:      b.ClientID,
		ClientName:    b.ClientName,
		Date:          b.Date,
		StartHour:     b.StartHour,
		Duration:      b.Duration,
		LaneCount:     b.LaneCount,
		TotalValue:    money.New(b.TotalCents),
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		Details:       b.Details,
		CreatedAt:     FixedNow,
		UpdatedAt:     FixedNow,
	})
	require.NoError(t, err)
	return r
}

type ClientBuilder struct {
	ID    uuid.UUID
	Name  string
	Phone string
	Email string
	Tags  []string
	Stage client.FunnelStage
}

func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		ID:    uuid.New(),
		Name:  "Ana Souza",
		Phone: "(11) 98888-7777",
		Email: "ana@example.com",
		Tags:  []string{client.TagNewLead},
		Stage: client.StageNew,
	}
}

func (b *ClientBuilder) With(mutate func(*ClientBuilder)) *ClientBuilder {
	mutate(b)
	return b
}

func (b *ClientBuilder) Build() *client.Client {
	return client.ReconstructClient(client.ReconstructParams{
		ID:            b.ID,
		Name:          b.Name,
		Phone:         b.Phone,
		Email:         b.Email,
		Tags:          b.Tags,
		FunnelStage:   b.Stage,
		CreatedAt:     FixedNow,
		LastContactAt: FixedNow,
	})
}
