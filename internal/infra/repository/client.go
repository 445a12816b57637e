package repository

import (
	"context"

	"lane-booking/internal/domain/client"
	"lane-booking/internal/infra"
	"lane-booking/internal/infra/pgq"
	"lane-booking/internal/infra/repository/converter"
	"lane-booking/internal/pkg/errs"
	"lane-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ClientWriteQueries interface {
	CreateClient(ctx context.Context, db pgq.DBTX, arg pgq.Client) error
	UpdateClient(ctx context.Context, db pgq.DBTX, arg pgq.Client) (int64, error)
	GetClientByID(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.Client, error)
	GetClientByPhone(ctx context.Context, db pgq.DBTX, phoneDigits string) (pgq.Client, error)
}

type ClientRepository struct {
	queries ClientWriteQueries
	db      pgq.DBTX
}

func NewClientRepository(queries ClientWriteQueries, db pgq.DBTX) *ClientRepository {
	return &ClientRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	row, err := r.queries.GetClientByID(ctx, r.db, id)
	if err != nil {
		return nil, clientLookupErr(err, "failed to find client by ID")
	}
	return converter.ClientToDomain(row), nil
}

func (r *ClientRepository) FindByPhone(ctx context.Context, normalizedPhone string) (*client.Client, error) {
	row, err := r.queries.GetClientByPhone(ctx, r.db, normalizedPhone)
	if err != nil {
		return nil, clientLookupErr(err, "failed to find client by phone")
	}
	return converter.ClientToDomain(row), nil
}

func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	if err := r.queries.CreateClient(ctx, r.db, converter.ClientToInfra(c)); err != nil {
		if pgconv.IsUniqueViolation(err) {
			return errs.Mark(infra.WrapRepoErr("client phone already registered", err, infra.KindDuplicateKey), errs.ErrClientExists)
		}
		return infra.WrapRepoErr("failed to create client", err)
	}
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	affected, err := r.queries.UpdateClient(ctx, r.db, converter.ClientToInfra(c))
	if err != nil {
		return infra.WrapRepoErr("failed to update client", err)
	}
	if affected == 0 {
		return errs.Mark(infra.WrapRepoErr("client not found", nil, infra.KindNotFound), errs.ErrClientNotFound)
	}
	return nil
}

func clientLookupErr(err error, msg string) error {
	if pgconv.IsNoRows(err) {
		return errs.Mark(infra.WrapRepoErr("client not found", err, infra.KindNotFound), errs.ErrClientNotFound)
	}
	return infra.WrapRepoErr(msg, err)
}
