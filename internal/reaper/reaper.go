package reaper

import (
	"context"
	"sync"
	"time"

	"github.com/isaacbis/tommi38/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type expiredDeleter interface {
	DeleteExpired(ctx context.Context, today string, nowMinutes, slotMinutes int) (int64, error)
}

type configSource interface {
	GetConfig(ctx context.Context) (domain.ScheduleConfig, error)
}

// Reaper удаляет брони, чей слот полностью прошёл. Кредиты не трогает:
// просроченный слот сгорает без возврата.
type Reaper struct {
	reservations expiredDeleter
	schedule     configSource
	cooldown     time.Duration
	logger       logger.Logger

	mu      sync.Mutex
	lastRun time.Time

	now func() time.Time
}

func New(
	reservations expiredDeleter,
	schedule configSource,
	cooldown time.Duration,
	logger logger.Logger,
) *Reaper {
	return &Reaper{
		reservations: reservations,
		schedule:     schedule,
		cooldown:     cooldown,
		logger:       logger,
		now:          time.Now,
	}
}

// WithClock подменяет источник времени для тестов.
func (r *Reaper) WithClock(now func() time.Time) *Reaper {
	r.now = now
	return r
}

// MaybeReap выполняет проход не чаще одного раза за окно cooldown;
// вызовы внутри окна — no-op. Ошибки не поднимаются наверх: окружающий
// запрос продолжает работать на, возможно, устаревших данных.
func (r *Reaper) MaybeReap(ctx context.Context) {
	if !r.acquire() {
		return
	}
	r.reap(ctx)
}

func (r *Reaper) acquire() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastRun) < r.cooldown {
		return false
	}
	r.lastRun = now
	return true
}

func (r *Reaper) reap(ctx context.Context) {
	cfg, err := r.schedule.GetConfig(ctx)
	if err != nil {
		r.logger.Error("reaper: failed to load config",
			logger.String("error", err.Error()),
		)
		return
	}

	now := r.now()
	deleted, err := r.reservations.DeleteExpired(
		ctx,
		now.Format(domain.DateLayout),
		domain.MinutesOfDay(now),
		cfg.SlotMinutes,
	)
	if err != nil {
		r.logger.Error("reaper: failed to delete expired reservations",
			logger.String("error", err.Error()),
		)
		return
	}

	if deleted > 0 {
		r.logger.Info("expired reservations reaped",
			logger.Int64("count", deleted),
		)
	}
}

// Start — фоновая страховка на случай, если запросы долго не приходят.
// Проходы идемпотентны, поэтому двойной запуск безвреден.
func (r *Reaper) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.logger.Info("reaper started",
		logger.Duration("interval", interval),
		logger.Duration("cooldown", r.cooldown),
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("reaper stopped")
			return
		case <-ticker.C:
			r.MaybeReap(ctx)
		}
	}
}
