package shared

import (
	"context"

	"lane-booking/internal/domain/client"
	"lane-booking/internal/domain/reservation"
	"lane-booking/internal/domain/schedule"
	"lane-booking/internal/domain/settings"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: write transaction with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinDate: write transaction serialized against every other writer of the same date
	WithinDate(ctx context.Context, date schedule.Date, fn func(ctx context.Context, tx Tx) error) error
	// Reads: non-transactional reads for validation and the query side
	Reads() Reads
}

type Tx interface {
	Reservations() ReservationRepository
	Clients() ClientRepository
	Settings() SettingsRepository
}

type ReservationRepository interface {
	ListByDate(ctx context.Context, date schedule.Date) ([]*reservation.Reservation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Create(ctx context.Context, res *reservation.Reservation) error
	Update(ctx context.Context, res *reservation.Reservation) error
}

type ClientRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error)
	// FindByPhone matches on normalized digits
	FindByPhone(ctx context.Context, normalizedPhone string) (*client.Client, error)
	Create(ctx context.Context, c *client.Client) error
	Update(ctx context.Context, c *client.Client) error
}

type SettingsRepository interface {
	Get(ctx context.Context) (*settings.Settings, error)
	Save(ctx context.Context, s *settings.Settings) error
}

type Reads interface {
	Settings(ctx context.Context) (*settings.Settings, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ReservationsByDate(ctx context.Context, date schedule.Date) ([]*reservation.Reservation, error)
	ReservationsByDateRange(ctx context.Context, from, to schedule.Date) ([]*reservation.Reservation, error)
	// ReservationsForClient returns rows owned by clientID or listing normalizedPhone among the guests.
	ReservationsForClient(ctx context.Context, clientID uuid.UUID, normalizedPhone string) ([]*reservation.Reservation, error)
	ClientByID(ctx context.Context, id uuid.UUID) (*client.Client, error)
	Clients(ctx context.Context) ([]*client.Client, error)
}
