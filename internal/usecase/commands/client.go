package commands

//go:generate mockgen -source=client.go -destination=../../testutil/mock/commands/client_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"lane-booking/internal/domain/client"
	"lane-booking/internal/pkg/errs"
	"lane-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ClientCommands interface {
	// UpdateClientStage is the CRM board move; it may set any stage, backwards included.
	UpdateClientStage(ctx context.Context, actor shared.Actor, id uuid.UUID, stage client.FunnelStage) (*client.Client, error)
	// AdvanceFunnel applies a booking event and only ever moves the client forward.
	AdvanceFunnel(ctx context.Context, event shared.StageEvent) error
}

type clientUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewClientUseCase(uow shared.UnitOfWork) ClientCommands {
	return &clientUseCaseImpl{uow: uow}
}

func (uc *clientUseCaseImpl) UpdateClientStage(ctx context.Context, actor shared.Actor, id uuid.UUID, stage client.FunnelStage) (*client.Client, error) {
	if err := actor.RequireStaff(); err != nil {
		return nil, err
	}
	if !stage.IsValid() {
		return nil, newValidationError("stage", "unknown funnel stage")
	}

	var updated *client.Client
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, derr := tx.Clients().FindByID(ctx, id)
		if derr != nil {
			return derr
		}
		if derr = c.SetStage(stage); derr != nil {
			return newValidationError("stage", derr.Error())
		}
		if derr = tx.Clients().Update(ctx, c); derr != nil {
			return derr
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *clientUseCaseImpl) AdvanceFunnel(ctx context.Context, event shared.StageEvent) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Clients().FindByID(ctx, event.ClientID)
		if err != nil {
			return err
		}
		changed, err := c.AdvanceTo(event.Stage)
		if err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}
		if !changed {
			return nil
		}
		slog.Debug("funnel stage advanced",
			"client_id", event.ClientID,
			"stage", event.Stage.String(),
			"source", event.Source)
		return tx.Clients().Update(ctx, c)
	})
}
