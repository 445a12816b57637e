package shared

import (
	"lane-booking/internal/domain/client"
	"lane-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type ActorKind string

const (
	ActorGuest  ActorKind = "guest"
	ActorStaff  ActorKind = "staff"
	ActorSystem ActorKind = "system"
)

// Actor is the caller on whose behalf a command runs.
type Actor struct {
	Kind ActorKind
	// ID is the staff member's subject; empty for guests and the payment system.
	ID string
}

func Guest() Actor {
	return Actor{Kind: ActorGuest}
}

func Staff(id string) Actor {
	return Actor{Kind: ActorStaff, ID: id}
}

func PaymentSystem() Actor {
	return Actor{Kind: ActorSystem, ID: "payment"}
}

func (a Actor) IsStaff() bool  { return a.Kind == ActorStaff }
func (a Actor) IsGuest() bool  { return a.Kind == ActorGuest }
func (a Actor) IsSystem() bool { return a.Kind == ActorSystem }

// RequireStaff rejects every actor except staff.
func (a Actor) RequireStaff() error {
	if !a.IsStaff() {
		return errs.Mark(errs.Newf("%s actor cannot perform this operation", a.Kind), errs.ErrForbidden)
	}
	return nil
}

// StageEvent asks the CRM to move a client forward in the funnel.
type StageEvent struct {
	ClientID uuid.UUID          `json:"client_id"`
	Stage    client.FunnelStage `json:"stage"`
	Source   string             `json:"source"`
}
