package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/isaacbis/tommi38/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ScheduleRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewScheduleRepo(db *dbpg.DB) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ScheduleRepository) GetConfig(ctx context.Context) (domain.ScheduleConfig, error) {
	query := `SELECT slot_minutes, to_char(day_start, 'HH24:MI'), to_char(day_end, 'HH24:MI'),
					 max_per_day, max_active
			  FROM schedule_config
			  WHERE id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query)
	if err != nil {
		return domain.ScheduleConfig{}, fmt.Errorf("get schedule config: %w", err)
	}

	var cfg domain.ScheduleConfig
	if err = row.Scan(
		&cfg.SlotMinutes, &cfg.DayStart, &cfg.DayEnd,
		&cfg.MaxBookingsPerUserPerDay, &cfg.MaxActiveBookingsPerUser,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Конфиг ещё не сохраняли — работаем на дефолтах.
			return domain.DefaultScheduleConfig(), nil
		}
		return domain.ScheduleConfig{}, fmt.Errorf("scan schedule config: %w", err)
	}

	return cfg, nil
}

func (r *ScheduleRepository) SetConfig(ctx context.Context, cfg domain.ScheduleConfig) error {
	query := `INSERT INTO schedule_config (id, slot_minutes, day_start, day_end, max_per_day, max_active, updated_at)
			  VALUES (TRUE, $1, $2, $3, $4, $5, now())
			  ON CONFLICT (id) DO UPDATE SET
				  slot_minutes = EXCLUDED.slot_minutes,
				  day_start    = EXCLUDED.day_start,
				  day_end      = EXCLUDED.day_end,
				  max_per_day  = EXCLUDED.max_per_day,
				  max_active   = EXCLUDED.max_active,
				  updated_at   = now()`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		cfg.SlotMinutes, cfg.DayStart, cfg.DayEnd,
		cfg.MaxBookingsPerUserPerDay, cfg.MaxActiveBookingsPerUser,
	)
	if err != nil {
		return fmt.Errorf("set schedule config: %w", err)
	}

	return nil
}

func (r *ScheduleRepository) ListFields(ctx context.Context) ([]domain.Field, error) {
	query := `SELECT id, name FROM fields ORDER BY position`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}
	defer rows.Close()

	var res []domain.Field
	for rows.Next() {
		var f domain.Field
		if err = rows.Scan(&f.ID, &f.Name); err != nil {
			return nil, fmt.Errorf("scan field: %w", err)
		}
		res = append(res, f)
	}

	return res, rows.Err()
}

// SetFields перезаписывает каталог целиком, сохраняя порядок.
func (r *ScheduleRepository) SetFields(ctx context.Context, fields []domain.Field) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM fields`); err != nil {
		return fmt.Errorf("clear fields: %w", err)
	}

	query := `INSERT INTO fields (id, name, position) VALUES ($1, $2, $3)`
	for i, f := range fields {
		if _, err = tx.ExecContext(ctx, query, f.ID, f.Name, i); err != nil {
			return fmt.Errorf("insert field: %w", err)
		}
	}

	return tx.Commit()
}
