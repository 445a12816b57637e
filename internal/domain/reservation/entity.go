package reservation

import (
	"errors"
	"strings"
	"time"

	"lane-booking/internal/domain/client"
	"lane-booking/internal/domain/money"
	"lane-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration      = errors.New("duration must be a positive number of hours")
	ErrInvalidLaneCount     = errors.New("lane count must be positive")
	ErrInvalidStartHour     = errors.New("start hour must be within 0-23")
	ErrMissingClient        = errors.New("reservation requires a client")
	ErrMissingDate          = errors.New("reservation requires a date")
	ErrNegativeValue        = errors.New("reservation value cannot be negative")
	ErrInvalidStatus        = errors.New("invalid reservation status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidTransition    = errors.New("invalid reservation status transition")
)

type Reservation struct {
	id            uuid.UUID
	clientID      uuid.UUID
	clientName    string
	date          schedule.Date
	startHour     int
	duration      int
	laneCount     int
	totalValue    money.Money
	status        Status
	paymentStatus PaymentStatus
	details       Details
	createdAt     time.Time
	updatedAt     time.Time
}

type NewParams struct {
	ClientID   uuid.UUID
	ClientName string
	Date       schedule.Date
	Block      Block
	LaneCount  int
	TotalValue money.Money
	Details    Details
}

// NewReservation creates a PENDING/PENDING row for one block.
func NewReservation(p NewParams, now time.Time) (*Reservation, error) {
	if p.ClientID == uuid.Nil {
		return nil, ErrMissingClient
	}
	if p.Date.IsZero() {
		return nil, ErrMissingDate
	}
	if p.Block.Duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if p.LaneCount <= 0 {
		return nil, ErrInvalidLaneCount
	}
	if p.Block.Start < 0 {
		return nil, ErrInvalidStartHour
	}
	if p.TotalValue.IsNegative() {
		return nil, ErrNegativeValue
	}

	return &Reservation{
		id:            uuid.New(),
		clientID:      p.ClientID,
		clientName:    strings.TrimSpace(p.ClientName),
		date:          p.Date,
		startHour:     p.Block.Start.Display(),
		duration:      p.Block.Duration,
		laneCount:     p.LaneCount,
		totalValue:    p.TotalValue,
		status:        StatusPending,
		paymentStatus: PaymentPending,
		details:       p.Details.normalized(),
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

type ReconstructParams struct {
	ID            uuid.UUID
	ClientID      uuid.UUID
	ClientName    string
	Date          schedule.Date
	StartHour     int
	Duration      int
	LaneCount     int
	TotalValue    money.Money
	Status        Status
	PaymentStatus PaymentStatus
	Details       Details
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ReconstructReservation(p ReconstructParams) (*Reservation, error) {
	if !p.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if !p.PaymentStatus.IsValid() {
		return nil, ErrInvalidPaymentStatus
	}
	if p.StartHour < 0 || p.StartHour >= schedule.HoursPerDay {
		return nil, ErrInvalidStartHour
	}
	return &Reservation{
		id:            p.ID,
		clientID:      p.ClientID,
		clientName:    p.ClientName,
		date:          p.Date,
		startHour:     p.StartHour,
		duration:      p.Duration,
		laneCount:     p.LaneCount,
		totalValue:    p.TotalValue,
		status:        p.Status,
		paymentStatus: p.PaymentStatus,
		details:       p.Details,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}, nil
}

// Confirm holds the lanes firmly. A confirmed row may still be upgraded from PENDING to PAID.
func (r *Reservation) Confirm(payment PaymentStatus, now time.Time) error {
	if !payment.IsValid() {
		return ErrInvalidPaymentStatus
	}
	switch r.status {
	case StatusPending:
		r.status = StatusConfirmed
	case StatusConfirmed:
		if r.paymentStatus == PaymentPaid || payment == PaymentPending {
			return ErrInvalidTransition
		}
	default:
		return ErrInvalidTransition
	}
	r.paymentStatus = payment
	r.updatedAt = now
	return nil
}

func (r *Reservation) Cancel(now time.Time) error {
	if r.status.IsTerminal() {
		return ErrInvalidTransition
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}

func (r *Reservation) MarkNoShow(now time.Time) error {
	if r.status.IsTerminal() {
		return ErrInvalidTransition
	}
	r.status = StatusNoShow
	r.updatedAt = now
	return nil
}

func (r *Reservation) AppendObservation(note string, now time.Time) {
	note = strings.TrimSpace(note)
	if note == "" {
		return
	}
	if r.details.Observations == "" {
		r.details.Observations = note
	} else {
		r.details.Observations += " " + note
	}
	r.updatedAt = now
}

// Span places the row on the timeline of its business day.
func (r *Reservation) Span(timeline schedule.Window) Block {
	return Block{Start: timeline.Linearize(r.startHour), Duration: r.duration}
}

func (r *Reservation) HoldsCapacity() bool {
	return r.status.HoldsCapacity()
}

// LaneHours is the capacity consumed by this row.
func (r *Reservation) LaneHours() int {
	return r.laneCount * r.duration
}

// HasGuestPhone matches a normalized phone against the secondary attendees.
func (r *Reservation) HasGuestPhone(normalizedPhone string) bool {
	if normalizedPhone == "" {
		return false
	}
	for _, g := range r.details.Guests {
		if client.NormalizePhone(g.Phone) == normalizedPhone {
			return true
		}
	}
	return false
}

func (r *Reservation) ID() uuid.UUID                { return r.id }
func (r *Reservation) ClientID() uuid.UUID          { return r.clientID }
func (r *Reservation) ClientName() string           { return r.clientName }
func (r *Reservation) Date() schedule.Date          { return r.date }
func (r *Reservation) StartHour() int               { return r.startHour }
func (r *Reservation) Time() string                 { return schedule.FormatHourLabel(r.startHour) }
func (r *Reservation) Duration() int                { return r.duration }
func (r *Reservation) LaneCount() int               { return r.laneCount }
func (r *Reservation) TotalValue() money.Money      { return r.totalValue }
func (r *Reservation) Status() Status               { return r.status }
func (r *Reservation) PaymentStatus() PaymentStatus { return r.paymentStatus }
func (r *Reservation) Details() Details             { return r.details }
func (r *Reservation) EventType() string            { return r.details.EventType }
func (r *Reservation) PeopleCount() int             { return r.details.PeopleCount }
func (r *Reservation) Observations() string         { return r.details.Observations }
func (r *Reservation) Guests() []Guest              { return append([]Guest(nil), r.details.Guests...) }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time         { return r.updatedAt }

// Clone is used by stores that hand out copies of their rows.
func (r *Reservation) Clone() *Reservation {
	c := *r
	c.details.Guests = append([]Guest(nil), r.details.Guests...)
	return &c
}
