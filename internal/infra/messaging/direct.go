package messaging

import (
	"context"

	"lane-booking/internal/usecase/shared"
)

// DirectNotifier applies stage events in-process when no broker is configured.
type DirectNotifier struct {
	handle Handler
}

func NewDirectNotifier(handle Handler) *DirectNotifier {
	return &DirectNotifier{handle: handle}
}

func (n *DirectNotifier) Notify(ctx context.Context, event shared.StageEvent) error {
	return n.handle(ctx, event)
}
