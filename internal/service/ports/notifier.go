package ports

import (
	"context"

	"github.com/isaacbis/tommi38/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, account *domain.Account, r *domain.Reservation)
	NotifyBookingCancelled(ctx context.Context, account *domain.Account, r *domain.Reservation)
}
