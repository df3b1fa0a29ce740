package ports

import (
	"context"

	"github.com/isaacbis/tommi38/internal/domain"
)

type AccountRepo interface {
	Create(ctx context.Context, a *domain.Account) error
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
	// AdjustCredits atomically applies a signed delta; the balance never
	// goes below zero.
	AdjustCredits(ctx context.Context, username string, delta int) error
	SetDisabled(ctx context.Context, username string, disabled bool) error
}
