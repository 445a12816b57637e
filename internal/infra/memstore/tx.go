package memstore

import (
	"context"

	"lane-booking/internal/domain/client"
	"lane-booking/internal/domain/reservation"
	"lane-booking/internal/domain/schedule"
	"lane-booking/internal/domain/settings"
	"lane-booking/internal/infra"
	"lane-booking/internal/pkg/errs"
	"lane-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// memTx stages writes over the committed state of the store.
type memTx struct {
	store *Store

	reservations map[uuid.UUID]*reservation.Reservation
	created      []uuid.UUID
	clients      map[uuid.UUID]*client.Client
	settings     *settings.Settings
}

func newTx(s *Store) *memTx {
	return &memTx{
		store:        s,
		reservations: make(map[uuid.UUID]*reservation.Reservation),
		clients:      make(map[uuid.UUID]*client.Client),
	}
}

func (t *memTx) Reservations() shared.ReservationRepository { return txReservations{t} }
func (t *memTx) Clients() shared.ClientRepository           { return txClients{t} }
func (t *memTx) Settings() shared.SettingsRepository        { return txSettings{t} }

func (t *memTx) commit() error {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range t.created {
		if _, exists := s.reservations[id]; exists {
			return infra.WrapRepoErr("reservation already exists", nil, infra.KindDuplicateKey)
		}
	}
	for id, c := range t.clients {
		if owner, taken := s.phones[c.NormalizedPhone()]; taken && owner != id {
			return errs.Mark(infra.WrapRepoErr("client phone already registered", nil, infra.KindDuplicateKey), errs.ErrClientExists)
		}
	}

	for _, id := range t.created {
		r := t.reservations[id]
		s.byDate[r.Date()] = append(s.byDate[r.Date()], id)
	}
	for id, r := range t.reservations {
		s.reservations[id] = r
	}
	for id, c := range t.clients {
		if prev, ok := s.clients[id]; ok {
			delete(s.phones, prev.NormalizedPhone())
		}
		s.clients[id] = c
		s.phones[c.NormalizedPhone()] = id
	}
	if t.settings != nil {
		s.settings = t.settings
	}
	return nil
}

type txReservations struct{ tx *memTx }

func (r txReservations) ListByDate(_ context.Context, date schedule.Date) ([]*reservation.Reservation, error) {
	s := r.tx.store
	s.mu.RLock()
	committed := s.listByDateLocked(date)
	s.mu.RUnlock()

	out := make([]*reservation.Reservation, 0, len(committed)+len(r.tx.created))
	for _, c := range committed {
		if staged, ok := r.tx.reservations[c.ID()]; ok {
			out = append(out, staged.Clone())
			continue
		}
		out = append(out, c)
	}
	for _, id := range r.tx.created {
		if staged := r.tx.reservations[id]; staged.Date().Equal(date) {
			out = append(out, staged.Clone())
		}
	}
	return out, nil
}

func (r txReservations) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	if staged, ok := r.tx.reservations[id]; ok {
		return staged.Clone(), nil
	}
	return r.tx.store.ReservationByID(ctx, id)
}

func (r txReservations) Create(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.tx.reservations[res.ID()]; ok {
		return infra.WrapRepoErr("reservation already exists", nil, infra.KindDuplicateKey)
	}
	r.tx.reservations[res.ID()] = res.Clone()
	r.tx.created = append(r.tx.created, res.ID())
	return nil
}

func (r txReservations) Update(ctx context.Context, res *reservation.Reservation) error {
	if _, ok := r.tx.reservations[res.ID()]; !ok {
		if _, err := r.tx.store.ReservationByID(ctx, res.ID()); err != nil {
			return err
		}
	}
	r.tx.reservations[res.ID()] = res.Clone()
	return nil
}

type txClients struct{ tx *memTx }

func (c txClients) FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	if staged, ok := c.tx.clients[id]; ok {
		return staged.Clone(), nil
	}
	return c.tx.store.ClientByID(ctx, id)
}

func (c txClients) FindByPhone(ctx context.Context, normalizedPhone string) (*client.Client, error) {
	for _, staged := range c.tx.clients {
		if staged.NormalizedPhone() == normalizedPhone {
			return staged.Clone(), nil
		}
	}

	s := c.tx.store
	s.mu.RLock()
	id, ok := s.phones[normalizedPhone]
	s.mu.RUnlock()
	if !ok {
		return nil, clientNotFound()
	}
	return s.ClientByID(ctx, id)
}

func (c txClients) Create(ctx context.Context, cl *client.Client) error {
	if _, err := c.FindByPhone(ctx, cl.NormalizedPhone()); err == nil {
		return errs.Mark(infra.WrapRepoErr("client phone already registered", nil, infra.KindDuplicateKey), errs.ErrClientExists)
	}
	c.tx.clients[cl.ID()] = cl.Clone()
	return nil
}

func (c txClients) Update(ctx context.Context, cl *client.Client) error {
	if _, err := c.FindByID(ctx, cl.ID()); err != nil {
		return err
	}
	c.tx.clients[cl.ID()] = cl.Clone()
	return nil
}

type txSettings struct{ tx *memTx }

func (s txSettings) Get(ctx context.Context) (*settings.Settings, error) {
	if s.tx.settings != nil {
		cp := *s.tx.settings
		return &cp, nil
	}
	return s.tx.store.Settings(ctx)
}

func (s txSettings) Save(_ context.Context, cfg *settings.Settings) error {
	if err := cfg.Validate(); err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}
	cp := *cfg
	s.tx.settings = &cp
	return nil
}
