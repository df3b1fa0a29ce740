package service

import (
	"context"
	"fmt"

	"github.com/isaacbis/tommi38/internal/domain"
	"github.com/isaacbis/tommi38/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ScheduleService — чтение и админское изменение конфига расписания
// и каталога полей.
type ScheduleService struct {
	schedule ports.ScheduleRepo
	accounts ports.AccountRepo
	logger   logger.Logger
}

func NewScheduleService(schedule ports.ScheduleRepo, accounts ports.AccountRepo, logger logger.Logger) *ScheduleService {
	return &ScheduleService{
		schedule: schedule,
		accounts: accounts,
		logger:   logger,
	}
}

// PublicConfig — снимок конфига и каталога для клиента; доступен всем.
func (s *ScheduleService) PublicConfig(ctx context.Context) (*domain.PublicConfig, error) {
	cfg, err := s.schedule.GetConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("get config: %w", err)
	}

	fields, err := s.schedule.ListFields(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}

	return &domain.PublicConfig{
		Schedule: cfg,
		Fields:   fields,
	}, nil
}

func (s *ScheduleService) SetConfig(ctx context.Context, caller string, cfg domain.ScheduleConfig) error {
	if _, err := requireAdmin(ctx, s.accounts, caller); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := s.schedule.SetConfig(ctx, cfg); err != nil {
		return fmt.Errorf("set config: %w", err)
	}

	s.logger.Info("schedule config updated",
		logger.Int("slot_minutes", cfg.SlotMinutes),
		logger.String("day_start", cfg.DayStart),
		logger.String("day_end", cfg.DayEnd),
	)

	return nil
}

func (s *ScheduleService) SetFields(ctx context.Context, caller string, fields []domain.Field) error {
	if _, err := requireAdmin(ctx, s.accounts, caller); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.ID == "" || f.Name == "" {
			return fmt.Errorf("%w: field id and name are required", domain.ErrValidation)
		}
		if _, ok := seen[f.ID]; ok {
			return fmt.Errorf("%w: duplicate field id %q", domain.ErrValidation, f.ID)
		}
		seen[f.ID] = struct{}{}
	}

	if err := s.schedule.SetFields(ctx, fields); err != nil {
		return fmt.Errorf("set fields: %w", err)
	}

	s.logger.Info("field catalog updated", logger.Int("count", len(fields)))

	return nil
}
