package commands

//go:generate mockgen -source=lifecycle.go -destination=../../testutil/mock/commands/lifecycle_mock.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"

	"lane-booking/internal/domain/client"
	"lane-booking/internal/domain/reservation"
	"lane-booking/internal/pkg/clock"
	"lane-booking/internal/pkg/errs"
	"lane-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type LifecycleCommands interface {
	Confirm(ctx context.Context, actor shared.Actor, id uuid.UUID, payment reservation.PaymentStatus) (*reservation.Reservation, error)
	Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) (*reservation.Reservation, error)
	MarkNoShow(ctx context.Context, actor shared.Actor, id uuid.UUID) (*reservation.Reservation, error)
	ApplyPaymentNotification(ctx context.Context, actor shared.Actor, ids []uuid.UUID, paid bool) ([]*reservation.Reservation, error)
}

type lifecycleUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	notifier StageNotifier
	metrics  Metrics
}

func NewLifecycleUseCase(uow shared.UnitOfWork, clk clock.Clock, notifier StageNotifier, metrics Metrics) LifecycleCommands {
	if metrics == nil {
		metrics = NoopMetrics()
	}
	return &lifecycleUseCaseImpl{
		uow:      uow,
		clock:    clk,
		notifier: notifier,
		metrics:  metrics,
	}
}

func (uc *lifecycleUseCaseImpl) Confirm(ctx context.Context, actor shared.Actor, id uuid.UUID, payment reservation.PaymentStatus) (*reservation.Reservation, error) {
	if !actor.IsStaff() && !actor.IsSystem() {
		return nil, errs.Mark(errs.New("guests cannot confirm reservations"), errs.ErrForbidden)
	}
	if !payment.IsValid() {
		return nil, newValidationError("payment_status", "must be PENDING or PAID")
	}

	row, err := uc.transition(ctx, id, func(r *reservation.Reservation) error {
		return r.Confirm(payment, uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	notifyStage(ctx, uc.notifier, row.ClientID(), client.StageScheduled, "confirm")
	return row, nil
}

func (uc *lifecycleUseCaseImpl) Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) (*reservation.Reservation, error) {
	if err := actor.RequireStaff(); err != nil {
		return nil, err
	}
	return uc.transition(ctx, id, func(r *reservation.Reservation) error {
		return r.Cancel(uc.clock.Now())
	})
}

func (uc *lifecycleUseCaseImpl) MarkNoShow(ctx context.Context, actor shared.Actor, id uuid.UUID) (*reservation.Reservation, error) {
	if err := actor.RequireStaff(); err != nil {
		return nil, err
	}
	return uc.transition(ctx, id, func(r *reservation.Reservation) error {
		return r.MarkNoShow(uc.clock.Now())
	})
}

func (uc *lifecycleUseCaseImpl) transition(ctx context.Context, id uuid.UUID, apply func(*reservation.Reservation) error) (*reservation.Reservation, error) {
	var updated *reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		row, derr := tx.Reservations().FindByID(ctx, id)
		if derr != nil {
			return derr
		}
		if derr = apply(row); derr != nil {
			return transitionError(derr, row)
		}
		if derr = tx.Reservations().Update(ctx, row); derr != nil {
			return derr
		}
		updated = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.metrics.Transition(updated.Status())
	return updated, nil
}

// ApplyPaymentNotification marks the referenced rows PAID. Rows already paid are left alone so
// that repeated provider notifications are harmless; cancelled rows are skipped with a warning.
func (uc *lifecycleUseCaseImpl) ApplyPaymentNotification(ctx context.Context, actor shared.Actor, ids []uuid.UUID, paid bool) ([]*reservation.Reservation, error) {
	if !actor.IsSystem() && !actor.IsStaff() {
		return nil, errs.Mark(errs.New("only the payment system may report payments"), errs.ErrForbidden)
	}
	if !paid {
		slog.Info("payment notification without approval ignored", "reservations", len(ids))
		return nil, nil
	}

	var applied []*reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		applied = applied[:0]
		now := uc.clock.Now()
		for _, id := range ids {
			row, derr := tx.Reservations().FindByID(ctx, id)
			if derr != nil {
				return derr
			}
			if row.PaymentStatus() == reservation.PaymentPaid {
				continue
			}
			if row.Status().IsTerminal() {
				slog.Warn("payment received for closed reservation",
					"reservation_id", id,
					"status", row.Status().String())
				continue
			}
			if derr = row.Confirm(reservation.PaymentPaid, now); derr != nil {
				return transitionError(derr, row)
			}
			if derr = tx.Reservations().Update(ctx, row); derr != nil {
				return derr
			}
			applied = append(applied, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, row := range applied {
		uc.metrics.Transition(row.Status())
	}
	for _, clientID := range ownersOf(applied) {
		notifyStage(ctx, uc.notifier, clientID, client.StageScheduled, "payment")
	}
	return applied, nil
}

func transitionError(err error, row *reservation.Reservation) error {
	if errors.Is(err, reservation.ErrInvalidTransition) {
		return errs.Mark(errs.Wrapf(err, "reservation %s is %s/%s", row.ID(), row.Status(), row.PaymentStatus()), errs.ErrInvalidTransition)
	}
	return newValidationError("status", err.Error())
}
