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

type AccountRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAccountRepo(db *dbpg.DB) *AccountRepository {
	return &AccountRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (username, role, credits, disabled, telegram_chat_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		a.Username, a.Role, a.Credits, a.Disabled, a.TelegramChatID, a.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert account: %w", err)
	}

	return nil
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	query := `SELECT username, role, credits, disabled, telegram_chat_id, created_at
			  FROM accounts
			  WHERE username = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, username)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	var a domain.Account
	if err = row.Scan(&a.Username, &a.Role, &a.Credits, &a.Disabled, &a.TelegramChatID, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}

	return &a, nil
}

func (r *AccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	query := `SELECT username, role, credits, disabled, telegram_chat_id, created_at
			  FROM accounts
			  ORDER BY username`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var res []*domain.Account
	for rows.Next() {
		var a domain.Account
		if err = rows.Scan(&a.Username, &a.Role, &a.Credits, &a.Disabled, &a.TelegramChatID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}

// AdjustCredits применяет дельту атомарно; отдельного чтения баланса нет,
// поэтому параллельные изменения не теряются.
func (r *AccountRepository) AdjustCredits(ctx context.Context, username string, delta int) error {
	query := `UPDATE accounts
			  SET credits = credits + $2
			  WHERE username = $1 AND credits + $2 >= 0`

	result, err := r.db.ExecWithRetry(ctx, r.strategy, query, username, delta)
	if err != nil {
		return fmt.Errorf("adjust credits: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("adjust rows affected: %w", err)
	}
	if rows == 0 {
		// Либо нет пользователя, либо дельта увела бы баланс в минус.
		if _, err := r.GetByUsername(ctx, username); err != nil {
			return err
		}
		return domain.ErrInsufficientCredits
	}

	return nil
}

func (r *AccountRepository) SetDisabled(ctx context.Context, username string, disabled bool) error {
	query := `UPDATE accounts SET disabled = $2 WHERE username = $1`

	result, err := r.db.ExecWithRetry(ctx, r.strategy, query, username, disabled)
	if err != nil {
		return fmt.Errorf("set disabled: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("disabled rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}
