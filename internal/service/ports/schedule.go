package ports

import (
	"context"

	"github.com/isaacbis/tommi38/internal/domain"
)

type ScheduleRepo interface {
	// GetConfig returns the stored schedule configuration, or defaults when
	// none has been saved yet.
	GetConfig(ctx context.Context) (domain.ScheduleConfig, error)
	SetConfig(ctx context.Context, cfg domain.ScheduleConfig) error
	ListFields(ctx context.Context) ([]domain.Field, error)
	SetFields(ctx context.Context, fields []domain.Field) error
}
