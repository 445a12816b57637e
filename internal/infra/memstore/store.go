// Package memstore is a process-local implementation of the booking store. Commits on one
// date are serialized by a per-date lock; writes are staged and applied only when the unit
// of work succeeds.
package memstore

import (
	"context"
	"sync"

	"lane-booking/internal/domain/client"
	"lane-booking/internal/domain/reservation"
	"lane-booking/internal/domain/schedule"
	"lane-booking/internal/domain/settings"
	"lane-booking/internal/infra"
	"lane-booking/internal/pkg/errs"
	"lane-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type Store struct {
	mu           sync.RWMutex
	reservations map[uuid.UUID]*reservation.Reservation
	byDate       map[schedule.Date][]uuid.UUID
	clients      map[uuid.UUID]*client.Client
	phones       map[string]uuid.UUID
	settings     *settings.Settings

	writer    chan struct{}
	locksMu   sync.Mutex
	dateLocks map[schedule.Date]chan struct{}
}

func NewStore() *Store {
	return &Store{
		reservations: make(map[uuid.UUID]*reservation.Reservation),
		byDate:       make(map[schedule.Date][]uuid.UUID),
		clients:      make(map[uuid.UUID]*client.Client),
		phones:       make(map[string]uuid.UUID),
		writer:       make(chan struct{}, 1),
		dateLocks:    make(map[schedule.Date]chan struct{}),
	}
}

// Within serializes general writes (client upserts, status transitions).
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	release, err := acquire(ctx, s.writer)
	if err != nil {
		return err
	}
	defer release()
	return s.run(ctx, fn)
}

// WithinDate serializes every commit that targets date.
func (s *Store) WithinDate(ctx context.Context, date schedule.Date, fn func(ctx context.Context, tx shared.Tx) error) error {
	release, err := acquire(ctx, s.dateLock(date))
	if err != nil {
		return err
	}
	defer release()
	return s.run(ctx, fn)
}

func (s *Store) Reads() shared.Reads {
	return s
}

func (s *Store) run(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := newTx(s)
	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.commit()
}

func (s *Store) dateLock(date schedule.Date) chan struct{} {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	ch, ok := s.dateLocks[date]
	if !ok {
		ch = make(chan struct{}, 1)
		s.dateLocks[date] = ch
	}
	return ch
}

func acquire(ctx context.Context, sem chan struct{}) (func(), error) {
	select {
	case sem <- struct{}{}:
		return func() { <-sem }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func reservationNotFound() error {
	return errs.Mark(infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound), errs.ErrReservationNotFound)
}

func clientNotFound() error {
	return errs.Mark(infra.WrapRepoErr("client not found", nil, infra.KindNotFound), errs.ErrClientNotFound)
}

func (s *Store) Settings(_ context.Context) (*settings.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return nil, errs.Mark(infra.WrapRepoErr("settings not found", nil, infra.KindNotFound), errs.ErrSettingsNotFound)
	}
	cp := *s.settings
	return &cp, nil
}

func (s *Store) ReservationByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reservations[id]
	if !ok {
		return nil, reservationNotFound()
	}
	return r.Clone(), nil
}

func (s *Store) ReservationsByDate(_ context.Context, date schedule.Date) ([]*reservation.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listByDateLocked(date), nil
}

func (s *Store) listByDateLocked(date schedule.Date) []*reservation.Reservation {
	ids := s.byDate[date]
	out := make([]*reservation.Reservation, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.reservations[id].Clone())
	}
	return out
}

func (s *Store) ReservationsByDateRange(_ context.Context, from, to schedule.Date) ([]*reservation.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*reservation.Reservation
	for d := from; !d.After(to); d = d.AddDays(1) {
		out = append(out, s.listByDateLocked(d)...)
	}
	return out, nil
}

func (s *Store) ReservationsForClient(_ context.Context, clientID uuid.UUID, normalizedPhone string) ([]*reservation.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*reservation.Reservation
	for _, r := range s.reservations {
		if r.ClientID() == clientID || r.HasGuestPhone(normalizedPhone) {
			out = append(out, r.Clone())
		}
	}
	return out, nil
}

func (s *Store) ClientByID(_ context.Context, id uuid.UUID) (*client.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.clients[id]
	if !ok {
		return nil, clientNotFound()
	}
	return c.Clone(), nil
}

func (s *Store) Clients(_ context.Context) ([]*client.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*client.Client, 0, len(s.clients))
	for _, c := range s.clients {
		out = append(out, c.Clone())
	}
	return out, nil
}
