package ports

import "context"

// SlotReaper reclaims expired slots. MaybeReap is best-effort: it is gated
// by a cooldown and must never fail the surrounding request.
type SlotReaper interface {
	MaybeReap(ctx context.Context)
}
