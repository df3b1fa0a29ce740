package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/isaacbis/tommi38/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation, debitUser string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Списываем кредит атомарно: баланс не может уйти ниже нуля.
	if debitUser != "" {
		debitQuery := `UPDATE accounts
					   SET credits = credits - 1
					   WHERE username = $1 AND credits > 0`
		result, err := tx.ExecContext(ctx, debitQuery, debitUser)
		if err != nil {
			return fmt.Errorf("debit credits: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("debit rows affected: %w", err)
		}
		if rows == 0 {
			return domain.ErrInsufficientCredits
		}
	}

	query := `INSERT INTO reservations (id, field_id, slot_date, slot_time, username, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = tx.ExecContext(
		ctx, query, res.ID, res.FieldID,
		res.Date, res.Time, res.User, res.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSlotTaken
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	return tx.Commit()
}

func (r *ReservationRepository) Delete(ctx context.Context, id string, refundUser string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete reservation: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete rows affected: %w", err)
	}
	if rows == 0 {
		// Бронь уже удалена параллельным запросом — возврата нет.
		return false, tx.Commit()
	}

	if refundUser != "" {
		refundQuery := `UPDATE accounts
						SET credits = credits + 1
						WHERE username = $1`
		if _, err = tx.ExecContext(ctx, refundQuery, refundUser); err != nil {
			return false, fmt.Errorf("refund credits: %w", err)
		}
	}

	return true, tx.Commit()
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT id, field_id, to_char(slot_date, 'YYYY-MM-DD'),
					 to_char(slot_time, 'HH24:MI'), username, created_at
			  FROM reservations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	var res domain.Reservation
	if err = row.Scan(&res.ID, &res.FieldID, &res.Date, &res.Time, &res.User, &res.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return &res, nil
}

func (r *ReservationRepository) ListByDate(ctx context.Context, date string) ([]*domain.Reservation, error) {
	query := `SELECT id, field_id, to_char(slot_date, 'YYYY-MM-DD'),
					 to_char(slot_time, 'HH24:MI'), username, created_at
			  FROM reservations
			  WHERE slot_date = $1::date
			  ORDER BY slot_time, field_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, date)
	if err != nil {
		return nil, fmt.Errorf("list reservations by date: %w", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func (r *ReservationRepository) ListByDateAndUser(ctx context.Context, date, user string) ([]*domain.Reservation, error) {
	query := `SELECT id, field_id, to_char(slot_date, 'YYYY-MM-DD'),
					 to_char(slot_time, 'HH24:MI'), username, created_at
			  FROM reservations
			  WHERE slot_date = $1::date AND username = $2
			  ORDER BY slot_time, field_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, date, user)
	if err != nil {
		return nil, fmt.Errorf("list reservations by date and user: %w", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// UsageCounts считает дневную и активную нагрузку пользователя одним
// запросом, чтобы оба счётчика видели один снимок данных.
func (r *ReservationRepository) UsageCounts(ctx context.Context, user, date, today string, nowMinutes, slotMinutes int) (int, int, error) {
	query := `SELECT
				  COUNT(*) FILTER (WHERE slot_date = $2::date),
				  COUNT(*) FILTER (WHERE slot_date > $3::date
					  OR (slot_date = $3::date
						  AND EXTRACT(EPOCH FROM slot_time)::int / 60 + $4 > $5))
			  FROM reservations
			  WHERE username = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, user, date, today, slotMinutes, nowMinutes)
	if err != nil {
		return 0, 0, fmt.Errorf("usage counts: %w", err)
	}

	var day, active int
	if err = row.Scan(&day, &active); err != nil {
		return 0, 0, fmt.Errorf("scan usage counts: %w", err)
	}

	return day, active, nil
}

func (r *ReservationRepository) DeleteExpired(ctx context.Context, today string, nowMinutes, slotMinutes int) (int64, error) {
	query := `DELETE FROM reservations
			  WHERE slot_date < $1::date
				 OR (slot_date = $1::date
					 AND EXTRACT(EPOCH FROM slot_time)::int / 60 + $2 <= $3)`

	result, err := r.db.ExecWithRetry(ctx, r.strategy, query, today, slotMinutes, nowMinutes)
	if err != nil {
		return 0, fmt.Errorf("delete expired: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("expired rows affected: %w", err)
	}

	return rows, nil
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	var res []*domain.Reservation
	for rows.Next() {
		var item domain.Reservation
		if err := rows.Scan(&item.ID, &item.FieldID, &item.Date, &item.Time, &item.User, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, &item)
	}

	return res, rows.Err()
}
