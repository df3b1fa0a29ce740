package ports

import (
	"context"

	"github.com/isaacbis/tommi38/internal/domain"
)

type ReservationRepo interface {
	// Create inserts the reservation and, when debitUser is non-empty,
	// debits that account by one credit in the same transaction.
	Create(ctx context.Context, r *domain.Reservation, debitUser string) error
	// Delete removes the reservation and, when refundUser is non-empty and a
	// row was actually deleted, refunds that account by one credit in the
	// same transaction. Returns whether a row was deleted.
	Delete(ctx context.Context, id string, refundUser string) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListByDate(ctx context.Context, date string) ([]*domain.Reservation, error)
	ListByDateAndUser(ctx context.Context, date, user string) ([]*domain.Reservation, error)
	// UsageCounts returns, from one consistent read, the number of the user's
	// reservations on date and the number whose slot end has not yet passed.
	UsageCounts(ctx context.Context, user, date, today string, nowMinutes, slotMinutes int) (day int, active int, err error)
	// DeleteExpired bulk-deletes reservations whose slot end has elapsed.
	// Credits are never touched.
	DeleteExpired(ctx context.Context, today string, nowMinutes, slotMinutes int) (int64, error)
}
