package commands

//go:generate mockgen -source=ports.go -destination=../../testutil/mock/commands/ports_mock.go -package=commandsmock

import (
	"context"

	"lane-booking/internal/domain/money"
	"lane-booking/internal/domain/reservation"
	"lane-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// PaymentRequest describes one composite booking to the payment provider.
type PaymentRequest struct {
	ReferenceID uuid.UUID
	// ReservationIDs are every row of the booking; the payment notification confirms all of them.
	ReservationIDs []uuid.UUID
	Title          string
	Total          money.Money
	PayerName      string
	PayerEmail     string
}

type PaymentLinker interface {
	// CreatePaymentLink returns the URL the guest is redirected to.
	CreatePaymentLink(ctx context.Context, req PaymentRequest) (string, error)
}

type StageNotifier interface {
	Notify(ctx context.Context, event shared.StageEvent) error
}

type Metrics interface {
	BookingCommitted(actor shared.ActorKind, rows int)
	CapacityConflict()
	Transition(to reservation.Status)
	PaymentLink(ok bool)
}

type noopMetrics struct{}

func (noopMetrics) BookingCommitted(shared.ActorKind, int) {}
func (noopMetrics) CapacityConflict()                      {}
func (noopMetrics) Transition(reservation.Status)          {}
func (noopMetrics) PaymentLink(bool)                       {}

func NoopMetrics() Metrics {
	return noopMetrics{}
}
