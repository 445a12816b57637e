package commands

//go:generate mockgen -source=booking.go -destination=../../testutil/mock/commands/booking_mock.go -package=commandsmock

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"lane-booking/internal/domain/client"
	"lane-booking/internal/domain/money"
	"lane-booking/internal/domain/reservation"
	"lane-booking/internal/domain/schedule"
	"lane-booking/internal/domain/settings"
	"lane-booking/internal/pkg/clock"
	"lane-booking/internal/pkg/errs"
	"lane-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutMode string

const (
	// CheckoutPaymentLink: redirect the guest to the provider
	CheckoutPaymentLink CheckoutMode = "payment_link"
	// CheckoutManual: the booking stays PENDING until staff confirm payment
	CheckoutManual CheckoutMode = "manual"
	// CheckoutInPerson: staff settle the payment at the counter
	CheckoutInPerson CheckoutMode = "in_person"
)

type Checkout struct {
	Mode       CheckoutMode
	PaymentURL string
	Reason     string
}

type CreateBookingRequest struct {
	Date         schedule.Date
	Hours        []int
	LaneCount    int
	Name         string
	Phone        string
	Email        string
	EventType    string
	PeopleCount  int
	Observations string
	Guests       []reservation.Guest
}

type CreateBookingResult struct {
	Client       *client.Client
	Reservations []*reservation.Reservation
	Total        money.Money
	Checkout     Checkout
}

type CompleteCheckoutRequest struct {
	ReservationIDs []uuid.UUID
	// Method is the in-person payment method recorded by staff (PIX, cash, card).
	Method string
}

type CheckoutResult struct {
	// Reservations is only filled for staff; guests get the mode, link and total.
	Reservations []*reservation.Reservation
	Total        money.Money
	Checkout     Checkout
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, actor shared.Actor, req CreateBookingRequest) (*CreateBookingResult, error)
	CompleteCheckout(ctx context.Context, actor shared.Actor, req CompleteCheckoutRequest) (*CheckoutResult, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	location *time.Location
	payments PaymentLinker
	notifier StageNotifier
	metrics  Metrics
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	clk clock.Clock,
	location *time.Location,
	payments PaymentLinker,
	notifier StageNotifier,
	metrics Metrics,
) BookingCommands {
	if metrics == nil {
		metrics = NoopMetrics()
	}
	return &bookingUseCaseImpl{
		uow:      uow,
		clock:    clk,
		location: location,
		payments: payments,
		notifier: notifier,
		metrics:  metrics,
	}
}

type validatedBooking struct {
	name    string
	phone   string
	email   string
	blocks  []reservation.Block
	details reservation.Details
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, actor shared.Actor, req CreateBookingRequest) (*CreateBookingResult, error) {
	cfg, err := uc.uow.Reads().Settings(ctx)
	if err != nil {
		return nil, err
	}

	vb, err := uc.validate(cfg, req)
	if err != nil {
		return nil, err
	}

	cl, err := uc.resolveClient(ctx, vb)
	if err != nil {
		return nil, err
	}

	calc := cfg.AvailabilityCalculator(cfg.Calendar(uc.clock, uc.location))
	factory := reservation.NewFactory(uc.clock, cfg.PricingResolver())

	var rows []*reservation.Reservation
	err = uc.uow.WithinDate(ctx, req.Date, func(ctx context.Context, tx shared.Tx) error {
		existing, derr := tx.Reservations().ListByDate(ctx, req.Date)
		if derr != nil {
			return derr
		}

		if conflict, found := calc.CheckCapacity(req.Date, vb.blocks, req.LaneCount, existing); found {
			return errs.Mark(&CapacityConflictError{
				Date:      req.Date,
				Hour:      conflict.Hour,
				Remaining: calc.ActiveLanes() - conflict.Occupied,
				Requested: conflict.Requested,
			}, errs.ErrCapacityConflict)
		}

		created, derr := factory.CreateBookingRows(reservation.BookingSpec{
			ClientID:   cl.ID(),
			ClientName: cl.Name(),
			Date:       req.Date,
			Blocks:     vb.blocks,
			LaneCount:  req.LaneCount,
			Details:    vb.details,
		})
		if derr != nil {
			return newValidationError("booking", derr.Error())
		}

		for _, row := range created {
			if derr = tx.Reservations().Create(ctx, row); derr != nil {
				return derr
			}
		}
		rows = created
		return nil
	})
	if err != nil {
		if errs.Is(err, errs.ErrCapacityConflict) {
			uc.metrics.CapacityConflict()
		}
		return nil, err
	}
	uc.metrics.BookingCommitted(actor.Kind, len(rows))

	stage := client.StageNegotiation
	if actor.IsStaff() {
		stage = client.StageScheduled
	}
	uc.notifyStage(ctx, cl.ID(), stage, "booking")

	total := sumValues(rows)
	result := &CreateBookingResult{
		Client:       cl,
		Reservations: rows,
		Total:        total,
	}

	switch {
	case actor.IsStaff():
		result.Checkout = Checkout{Mode: CheckoutInPerson}
	case cfg.OnlinePaymentEnabled:
		result.Checkout = uc.requestPaymentLink(ctx, rows, total, cl.Name(), cl.Email())
	default:
		result.Checkout = Checkout{Mode: CheckoutManual, Reason: "online payment disabled"}
	}

	slog.Info("booking committed",
		"client_id", cl.ID(),
		"date", req.Date.String(),
		"rows", len(rows),
		"lanes", req.LaneCount,
		"total", total.String(),
		"actor", string(actor.Kind),
		"checkout", string(result.Checkout.Mode))

	return result, nil
}

func (uc *bookingUseCaseImpl) validate(cfg *settings.Settings, req CreateBookingRequest) (*validatedBooking, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, newValidationError("name", "is required")
	}
	if client.NormalizePhone(req.Phone) == "" {
		return nil, newValidationError("phone", "must contain digits")
	}
	if req.LaneCount < 1 || req.LaneCount > cfg.ActiveLanes {
		return nil, newValidationError("lane_count", fmt.Sprintf("must be between 1 and %d", cfg.ActiveLanes))
	}
	if len(req.Hours) == 0 {
		return nil, newValidationError("hours", "select at least one hour")
	}
	if req.Date.IsZero() {
		return nil, newValidationError("date", "is required")
	}

	calendar := cfg.Calendar(uc.clock, uc.location)
	if !calendar.IsOpen(req.Date) {
		return nil, newValidationError("date", fmt.Sprintf("%s is not bookable", req.Date))
	}

	window := calendar.Window(req.Date)
	selected := make([]schedule.Hour, 0, len(req.Hours))
	for _, raw := range req.Hours {
		h, err := schedule.NewHour(raw)
		if err != nil || !window.Contains(h) {
			return nil, newValidationError("hours", fmt.Sprintf("hour %d is outside business hours", raw))
		}
		if calendar.IsPastHour(req.Date, h) {
			return nil, newValidationError("hours", fmt.Sprintf("%s has already passed", h.Label()))
		}
		selected = append(selected, h)
	}

	guests := make([]reservation.Guest, 0, len(req.Guests))
	for _, g := range req.Guests {
		guests = append(guests, reservation.NewGuest(g.Name, g.Phone, g.Email))
	}

	return &validatedBooking{
		name:   name,
		phone:  strings.TrimSpace(req.Phone),
		email:  strings.TrimSpace(req.Email),
		blocks: reservation.MergeToBlocks(selected),
		details: reservation.Details{
			EventType:    req.EventType,
			PeopleCount:  req.PeopleCount,
			Observations: req.Observations,
			Guests:       guests,
		},
	}, nil
}

// resolveClient finds the client by normalized phone or creates one. It commits on its own,
// so a client created here survives a later capacity conflict. Losing a creation race to a
// concurrent booking from the same phone falls back to the winner's row.
func (uc *bookingUseCaseImpl) resolveClient(ctx context.Context, vb *validatedBooking) (*client.Client, error) {
	cl, err := uc.upsertClient(ctx, vb)
	if errs.Is(err, errs.ErrClientExists) {
		return uc.upsertClient(ctx, vb)
	}
	return cl, err
}

func (uc *bookingUseCaseImpl) upsertClient(ctx context.Context, vb *validatedBooking) (*client.Client, error) {
	var resolved *client.Client
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		existing, derr := tx.Clients().FindByPhone(ctx, client.NormalizePhone(vb.phone))
		switch {
		case derr == nil:
			existing.RefreshContact(vb.name, vb.email, now)
			if derr = tx.Clients().Update(ctx, existing); derr != nil {
				return derr
			}
			resolved = existing
			return nil
		case errs.Is(derr, errs.ErrClientNotFound):
		default:
			return derr
		}

		created, derr := client.NewClient(vb.name, vb.phone, vb.email, now)
		if derr != nil {
			return newValidationError("client", derr.Error())
		}
		if derr = tx.Clients().Create(ctx, created); derr != nil {
			return derr
		}
		resolved = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

func (uc *bookingUseCaseImpl) CompleteCheckout(ctx context.Context, actor shared.Actor, req CompleteCheckoutRequest) (*CheckoutResult, error) {
	if len(req.ReservationIDs) == 0 {
		return nil, newValidationError("reservation_ids", "at least one reservation is required")
	}
	if actor.IsStaff() {
		return uc.settleInPerson(ctx, req)
	}
	if actor.IsSystem() {
		return nil, errs.Mark(errs.New("payment system cannot start a checkout"), errs.ErrForbidden)
	}

	cfg, err := uc.uow.Reads().Settings(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]*reservation.Reservation, 0, len(req.ReservationIDs))
	for _, id := range req.ReservationIDs {
		row, derr := uc.uow.Reads().ReservationByID(ctx, id)
		if derr != nil {
			return nil, derr
		}
		if row.Status() != reservation.StatusPending {
			return nil, errs.Mark(errs.Newf("reservation %s is %s", id, row.Status()), errs.ErrInvalidTransition)
		}
		rows = append(rows, row)
	}

	total := sumValues(rows)
	result := &CheckoutResult{Total: total}
	if !cfg.OnlinePaymentEnabled {
		result.Checkout = Checkout{Mode: CheckoutManual, Reason: "online payment disabled"}
		return result, nil
	}

	var email string
	if owner, derr := uc.uow.Reads().ClientByID(ctx, rows[0].ClientID()); derr == nil {
		email = owner.Email()
	}
	result.Checkout = uc.requestPaymentLink(ctx, rows, total, rows[0].ClientName(), email)
	return result, nil
}

func (uc *bookingUseCaseImpl) settleInPerson(ctx context.Context, req CompleteCheckoutRequest) (*CheckoutResult, error) {
	method := strings.TrimSpace(req.Method)
	if method == "" {
		return nil, newValidationError("method", "in-person payment method is required")
	}

	var settled []*reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		settled = settled[:0]
		now := uc.clock.Now()
		for _, id := range req.ReservationIDs {
			row, derr := tx.Reservations().FindByID(ctx, id)
			if derr != nil {
				return derr
			}
			if derr = row.Confirm(reservation.PaymentPaid, now); derr != nil {
				return transitionError(derr, row)
			}
			row.AppendObservation(fmt.Sprintf("[Pgto Presencial: %s]", method), now)
			if derr = tx.Reservations().Update(ctx, row); derr != nil {
				return derr
			}
			settled = append(settled, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for range settled {
		uc.metrics.Transition(reservation.StatusConfirmed)
	}
	for _, clientID := range ownersOf(settled) {
		uc.notifyStage(ctx, clientID, client.StageScheduled, "checkout")
	}

	return &CheckoutResult{
		Reservations: settled,
		Total:        sumValues(settled),
		Checkout:     Checkout{Mode: CheckoutInPerson},
	}, nil
}

// requestPaymentLink never fails the booking: a provider error degrades to manual completion.
func (uc *bookingUseCaseImpl) requestPaymentLink(
	ctx context.Context,
	rows []*reservation.Reservation,
	total money.Money,
	payerName, payerEmail string,
) Checkout {
	if uc.payments == nil {
		return Checkout{Mode: CheckoutManual, Reason: "payment provider not configured"}
	}

	url, err := uc.payments.CreatePaymentLink(ctx, PaymentRequest{
		ReferenceID:    rows[0].ID(),
		ReservationIDs: idsOf(rows),
		Title:          fmt.Sprintf("Reserva de pista %s", rows[0].Date()),
		Total:          total,
		PayerName:      payerName,
		PayerEmail:     payerEmail,
	})
	if err != nil {
		uc.metrics.PaymentLink(false)
		slog.Warn("payment link unavailable, falling back to manual checkout",
			"reservation_id", rows[0].ID(),
			"error", errs.Mark(err, errs.ErrPaymentLink).Error())
		return Checkout{Mode: CheckoutManual, Reason: "payment link unavailable"}
	}
	uc.metrics.PaymentLink(true)
	return Checkout{Mode: CheckoutPaymentLink, PaymentURL: url}
}

func (uc *bookingUseCaseImpl) notifyStage(ctx context.Context, clientID uuid.UUID, stage client.FunnelStage, source string) {
	notifyStage(ctx, uc.notifier, clientID, stage, source)
}

func notifyStage(ctx context.Context, notifier StageNotifier, clientID uuid.UUID, stage client.FunnelStage, source string) {
	if notifier == nil {
		return
	}
	event := shared.StageEvent{ClientID: clientID, Stage: stage, Source: source}
	if err := notifier.Notify(context.WithoutCancel(ctx), event); err != nil {
		slog.Warn("funnel update failed",
			"client_id", clientID,
			"stage", stage.String(),
			"error", err.Error())
	}
}

func sumValues(rows []*reservation.Reservation) money.Money {
	total := money.Zero()
	for _, r := range rows {
		total = total.Add(r.TotalValue())
	}
	return total
}

func idsOf(rows []*reservation.Reservation) []uuid.UUID {
	ids := make([]uuid.UUID, len(rows))
	for i, r := range rows {
		ids[i] = r.ID()
	}
	return ids
}

func ownersOf(rows []*reservation.Reservation) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(rows))
	owners := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.ClientID()]; ok {
			continue
		}
		seen[r.ClientID()] = struct{}{}
		owners = append(owners, r.ClientID())
	}
	return owners
}
