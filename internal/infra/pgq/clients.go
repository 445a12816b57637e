package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const clientColumns = `id, name, phone, phone_digits, email, tags, funnel_stage, created_at, last_contact_at`

func scanClient(row pgx.Row) (Client, error) {
	var c Client
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&c.PhoneDigits,
		&c.Email,
		&c.Tags,
		&c.FunnelStage,
		&c.CreatedAt,
		&c.LastContactAt,
	)
	return c, err
}

const createClient = `INSERT INTO clients (` + clientColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (q *Queries) CreateClient(ctx context.Context, db DBTX, arg Client) error {
	_, err := db.Exec(ctx, createClient,
		arg.ID,
		arg.Name,
		arg.Phone,
		arg.PhoneDigits,
		arg.Email,
		arg.Tags,
		arg.FunnelStage,
		arg.CreatedAt,
		arg.LastContactAt,
	)
	return err
}

const updateClient = `UPDATE clients
SET name = $2, phone = $3, phone_digits = $4, email = $5, tags = $6, funnel_stage = $7, last_contact_at = $8
WHERE id = $1`

func (q *Queries) UpdateClient(ctx context.Context, db DBTX, arg Client) (int64, error) {
	tag, err := db.Exec(ctx, updateClient,
		arg.ID,
		arg.Name,
		arg.Phone,
		arg.PhoneDigits,
		arg.Email,
		arg.Tags,
		arg.FunnelStage,
		arg.LastContactAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getClientByID = `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

func (q *Queries) GetClientByID(ctx context.Context, db DBTX, id uuid.UUID) (Client, error) {
	return scanClient(db.QueryRow(ctx, getClientByID, id))
}

const getClientByPhone = `SELECT ` + clientColumns + ` FROM clients WHERE phone_digits = $1 FOR UPDATE`

func (q *Queries) GetClientByPhone(ctx context.Context, db DBTX, phoneDigits string) (Client, error) {
	return scanClient(db.QueryRow(ctx, getClientByPhone, phoneDigits))
}

const listClients = `SELECT ` + clientColumns + ` FROM clients ORDER BY last_contact_at DESC, id`

func (q *Queries) ListClients(ctx context.Context, db DBTX) ([]Client, error) {
	rows, err := db.Query(ctx, listClients)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Client
	for rows.Next() {
		c, scanErr := scanClient(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		items = append(items, c)
	}
	return items, rows.Err()
}
