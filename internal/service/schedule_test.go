package service

import (
	"context"
	"testing"

	"github.com/isaacbis/tommi38/internal/domain"
	"github.com/isaacbis/tommi38/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newScheduleService(t *testing.T) (*ScheduleService, *mocks.MockScheduleRepo, *mocks.MockAccountRepo) {
	t.Helper()
	scheduleRepo := mocks.NewMockScheduleRepo(t)
	accountRepo := mocks.NewMockAccountRepo(t)
	return NewScheduleService(scheduleRepo, accountRepo, newTestLogger(t)), scheduleRepo, accountRepo
}

func TestScheduleService_PublicConfig(t *testing.T) {
	svc, scheduleRepo, _ := newScheduleService(t)

	fields := []domain.Field{{ID: "campo1", Name: "Campo 1"}}

	scheduleRepo.EXPECT().GetConfig(mock.Anything).Return(domain.DefaultScheduleConfig(), nil)
	scheduleRepo.EXPECT().ListFields(mock.Anything).Return(fields, nil)

	cfg, err := svc.PublicConfig(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Schedule.SlotMinutes)
	assert.Equal(t, fields, cfg.Fields)
}

func TestScheduleService_SetConfig_Success(t *testing.T) {
	svc, scheduleRepo, accountRepo := newScheduleService(t)

	admin := &domain.Account{Username: "boss", Role: domain.RoleAdmin}
	cfg := domain.ScheduleConfig{
		SlotMinutes:              30,
		DayStart:                 "08:00",
		DayEnd:                   "22:00",
		MaxBookingsPerUserPerDay: 3,
		MaxActiveBookingsPerUser: 3,
	}

	accountRepo.EXPECT().GetByUsername(mock.Anything, "boss").Return(admin, nil)
	scheduleRepo.EXPECT().SetConfig(mock.Anything, cfg).Return(nil)

	err := svc.SetConfig(context.Background(), "boss", cfg)

	require.NoError(t, err)
}

func TestScheduleService_SetConfig_NotAdmin(t *testing.T) {
	svc, _, accountRepo := newScheduleService(t)

	user := &domain.Account{Username: "alice", Role: domain.RoleUser}

	accountRepo.EXPECT().GetByUsername(mock.Anything, "alice").Return(user, nil)

	err := svc.SetConfig(context.Background(), "alice", domain.DefaultScheduleConfig())

	require.ErrorIs(t, err, domain.ErrNotAllowed)
}

func TestScheduleService_SetConfig_Invalid(t *testing.T) {
	svc, _, accountRepo := newScheduleService(t)

	admin := &domain.Account{Username: "boss", Role: domain.RoleAdmin}

	tests := []struct {
		name string
		cfg  domain.ScheduleConfig
	}{
		{
			"slot too short",
			domain.ScheduleConfig{SlotMinutes: 3, DayStart: "09:00", DayEnd: "20:00", MaxBookingsPerUserPerDay: 2, MaxActiveBookingsPerUser: 2},
		},
		{
			"slot too long",
			domain.ScheduleConfig{SlotMinutes: 300, DayStart: "09:00", DayEnd: "20:00", MaxBookingsPerUserPerDay: 2, MaxActiveBookingsPerUser: 2},
		},
		{
			"start after end",
			domain.ScheduleConfig{SlotMinutes: 60, DayStart: "20:00", DayEnd: "09:00", MaxBookingsPerUserPerDay: 2, MaxActiveBookingsPerUser: 2},
		},
		{
			"zero daily limit",
			domain.ScheduleConfig{SlotMinutes: 60, DayStart: "09:00", DayEnd: "20:00", MaxBookingsPerUserPerDay: 0, MaxActiveBookingsPerUser: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accountRepo.EXPECT().GetByUsername(mock.Anything, "boss").Return(admin, nil).Once()

			err := svc.SetConfig(context.Background(), "boss", tt.cfg)

			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestScheduleService_SetFields_Success(t *testing.T) {
	svc, scheduleRepo, accountRepo := newScheduleService(t)

	admin := &domain.Account{Username: "boss", Role: domain.RoleAdmin}
	fields := []domain.Field{
		{ID: "campo1", Name: "Campo 1"},
		{ID: "campo2", Name: "Campo 2"},
	}

	accountRepo.EXPECT().GetByUsername(mock.Anything, "boss").Return(admin, nil)
	scheduleRepo.EXPECT().SetFields(mock.Anything, fields).Return(nil)

	err := svc.SetFields(context.Background(), "boss", fields)

	require.NoError(t, err)
}

func TestScheduleService_SetFields_DuplicateID(t *testing.T) {
	svc, _, accountRepo := newScheduleService(t)

	admin := &domain.Account{Username: "boss", Role: domain.RoleAdmin}
	fields := []domain.Field{
		{ID: "campo1", Name: "Campo 1"},
		{ID: "campo1", Name: "Campo 1 bis"},
	}

	accountRepo.EXPECT().GetByUsername(mock.Anything, "boss").Return(admin, nil)

	err := svc.SetFields(context.Background(), "boss", fields)

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestScheduleService_SetFields_MissingName(t *testing.T) {
	svc, _, accountRepo := newScheduleService(t)

	admin := &domain.Account{Username: "boss", Role: domain.RoleAdmin}

	accountRepo.EXPECT().GetByUsername(mock.Anything, "boss").Return(admin, nil)

	err := svc.SetFields(context.Background(), "boss", []domain.Field{{ID: "campo1"}})

	require.ErrorIs(t, err, domain.ErrValidation)
}
