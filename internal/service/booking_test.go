package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/isaacbis/tommi38/internal/domain"
	"github.com/isaacbis/tommi38/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// 2026-03-10, 12:00 по локальному времени.
func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	}
}

type bookingMocks struct {
	reservations *mocks.MockReservationRepo
	accounts     *mocks.MockAccountRepo
	schedule     *mocks.MockScheduleRepo
	reaper       *mocks.MockSlotReaper
	notifier     *mocks.MockBookingNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	t.Helper()

	m := bookingMocks{
		reservations: mocks.NewMockReservationRepo(t),
		accounts:     mocks.NewMockAccountRepo(t),
		schedule:     mocks.NewMockScheduleRepo(t),
		reaper:       mocks.NewMockSlotReaper(t),
		notifier:     mocks.NewMockBookingNotifier(t),
	}

	svc := NewBookingService(m.reservations, m.accounts, m.schedule, m.reaper, m.notifier, newTestLogger(t)).
		WithClock(fixedClock())

	return svc, m
}

func testFields() []domain.Field {
	return []domain.Field{
		{ID: "campo1", Name: "Campo 1"},
		{ID: "campo2", Name: "Campo 2"},
	}
}

func TestBookingService_Book_Success(t *testing.T) {
	svc, m := newBookingService(t)

	account := &domain.Account{Username: "alice", Role: domain.RoleUser, Credits: 3}

	m.reaper.EXPECT().MaybeReap(mock.Anything).Return()
	m.accounts.EXPECT().GetByUsername(mock.Anything, "alice").Return(account, nil)
	m.schedule.EXPECT().GetConfig(mock.Anything).Return(domain.DefaultScheduleConfig(), nil)
	m.schedule.EXPECT().ListFields(mock.Anything).Return(testFields(), nil)
	m.reservations.EXPECT().UsageCounts(mock.Anything, "alice", "2026-03-11", "2026-03-10", 720, 60).Return(0, 0, nil)
	m.reservations.EXPECT().Create(mock.Anything, mock.Anything, "alice").Return(nil)
	m.notifier.EXPECT().NotifyBookingCreated(mock.Anything, account, mock.Anything).Return()

	reservation, err := svc.Book(context.Background(), "alice", "campo1", "2026-03-11", "10:00")

	require.NoError(t, err)
	assert.Equal(t, "campo1|2026-03-11|10:00", reservation.ID)
	assert.Equal(t, "campo1", reservation.FieldID)
	assert.Equal(t, "2026-03-11", reservation.Date)
	assert.Equal(t, "10:00", reservation.Time)
	assert.Equal(t, "alice", reservation.User)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Book_DisabledUser(t *testing.T) {
	svc, m := newBookingService(t)

	account := &domain.Account{Username: "alice", Role: domain.RoleUser, Credits: 3, Disabled: true}

	m.reaper.EXPECT().MaybeReap(mock.Anything).Return()
	m.accounts.EXPECT().GetByUsername(mock.Anything, "alice").Return(account, nil)

	_, err := svc.Book(context.Background(), "alice", "campo1", "2026-03-11", "10:00")

	require.ErrorIs(t, err, domain.ErrUserDisabled)
}

func TestBookingService_Book_UnknownField(t *testing.T) {
	svc, m := newBookingService(t)

	account := &domain.Account{Username: "alice", Role: domain.RoleUser, Credits: 3}

	m.reaper.EXPECT().MaybeReap(mock.Anything).Return()
	m.accounts.EXPECT().GetByUsername(mock.Anything, "alice").Return(account, nil)
	m.schedule.EXPECT().GetConfig(mock.Anything).Return(domain.DefaultScheduleConfig(), nil)
	m.schedule.EXPECT().ListFields(mock.Anything).Return(testFields(), nil)

	_, err := svc.Book(context.Background(), "alice", "campo99", "2026-03-11", "10:00")

	require.ErrorIs(t, err, domain.ErrUnknownField)
}

func TestBookingService_Book_OffGridTime(t *testing.T) {
	svc, m := newBookingService(t)

	account := &domain.Account{Username: "alice", Role: domain.RoleUser, Credits: 3}

	m.reaper.EXPECT().MaybeReap(mock.Anything).Return()
	m.accounts.EXPECT().GetByUsername(mock.Anything, "alice").Return(account, nil)
	m.schedule.EXPECT().GetConfig(mock.Anything).Return(domain.DefaultScheduleConfig(), nil)

	_, err := svc.Book(context.Background(), "alice", "campo1", "2026-03-11", "10:30")

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Book_PastDate(t *testing.T) {
	svc, m := newBookingService(t)

	account := &domain.Account{Username: "alice", Role: domain.RoleUser, Credits: 3}

	m.reaper.EXPECT().MaybeReap(mock.Anything).Return()
	m.accounts.EXPECT().GetByUsername(mock.Anything, "alice").Return(account, nil)
	m.schedule.EXPECT().GetConfig(mock.Anything).Return(domain.DefaultScheduleConfig(), nil)
	m.schedule.EXPECT().ListFields(mock.Anything).Return(testFields(), nil)

	_, err := svc.Book(context.Background(), "alice", "campo1", "2026-03-09", "10:00")

	require.ErrorIs(t, err, domain.ErrPastDate)
}

func TestBookingService_Book_PastTimeBoundary(t *testing.T) {
	// Часы стоят на 12:00; слот 11:00-12:00 заканчивается ровно сейчас
	// и уже прошёл, слот 12:00-13:00 ещё можно бронировать.
	svc, m := newBookingService(t)

	account := &domain.Account{Username: "alice", Role: domain.RoleUser, Credits: 3}

	m.reaper.EXPECT().MaybeReap(mock.Anything).Return()
	m.accounts.EXPECT().GetByUsername(mock.Anything, "alice").Return(account, nil)
	m.schedule.EXPECT().GetConfig(mock.Anything).Return(domain.DefaultScheduleConfig(), nil)
	m.schedule.EXPECT().ListFields(mock.Anything).Return(testFields(), nil)

	_, err := svc.Book(context.Background(), "alice", "campo1", "2026-03-10", "11:00")
	require.ErrorIs(t, err, domain.ErrPastTime)

	m.reaper.EXPECT().MaybeReap(mock.Anything).Return()
	m.accounts.EXPECT().GetByUsername(mock.Anything, "alice").Return(account, nil)
	m.schedule.EXPECT().GetConfig(mock.Anything).Return(domain.DefaultScheduleConfig(), nil)
	m.schedule.EXPECT().ListFields(mock.Anything).Return(testFields(), nil)
	m.reservations.EXPECT().UsageCounts(mock.Anything, "alice", "2026-03-10", "2026-03-10", 720, 60).Return(0, 0, nil)
	m.reservations.EXPECT().Create(mock.Anything, mock.Anything, "alice").Return(nil)
	m.notifier.EXPECT().NotifyBookingCreated(mock.Anything, account, mock.Anything).Return()

	_, err = svc.Book(context.Background(), "alice", "campo1", "2026-03-10", "12:00")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Book_DailyLimit(t *testing.T) {
	svc, m := newBookingService(t)

	account := &domain.Account{Username: "alice", Role: domain.RoleUser, Credits: 3}

	m.reaper.EXPECT().MaybeReap(mock.Anything).Return()
	m.accounts.EXPECT().GetByUsername(mock.Anything, "alice").Return(account, nil)
	m.schedule.EXPECT().GetConfig(mock.Anything).Return(domain.DefaultScheduleConfig(), nil)
	m.schedule.EXPECT().ListFields(mock.Anything).Return(testFields(), nil)
	m.reservations.EXPECT().UsageCounts(mock.Anything, "alice", "2026-03-11", "2026-03-10", 720, 60).Return(2, 0, nil)

	_, err := svc.Book(context.Background(), "alice", "campo1", "2026-03-11", "10:00")

	require.ErrorIs(t, err, domain.ErrDailyLimitExceeded)
}

func TestBookingService_Book_ActiveLimit(t *testing.T) {
	svc, m := newBookingService(t)

	account := &domain.Account{Username: "alice", Role: domain.RoleUser, Credits: 3}

	m.reaper.EXPECT().MaybeReap(mock.Anything).Return()
	m.accounts.EXPECT().GetByUsername(mock.Anything, "alice").Return(account, nil)
	m.schedule.EXPECT().GetConfig(mock.Anything).Return(domain.DefaultScheduleConfig(), nil)
	m.schedule.EXPECT().ListFields(mock.Anything).Return(testFields(), nil)
	m.reservations.EXPECT().UsageCounts(mock.Anything, "alice", "2026-03-11", "2026-03-10", 720, 60).Return(1, 2, nil)

	_, err := svc.Book(context.Background(), "alice", "campo1", "2026-03-11", "10:00")

	require.ErrorIs(t, err, domain.ErrActiveLimitExceeded)
}

func TestBookingService_Book_NoCredits(t *testing.T) {
	svc, m := newBookingService(t)

	account := &domain.Account{Username: "alice", Role: domain.RoleUser, Credits: 0}

	m.reaper.EXPECT().MaybeReap(mock.Anything).Return()
	m.accounts.EXPECT().GetByUsername(mock.Anything, "alice").Return(account, nil)
	m.schedule.EXPECT().GetConfig(mock.Anything).Return(domain.DefaultScheduleConfig(), nil)
	m.schedule.EXPECT().ListFields(mock.Anything).Return(testFields(), nil)
	m.reservations.EXPECT().UsageCounts(mock.Anything, "alice", "2026-03-11", "2026-03-10", 720, 60).Return(0, 0, nil)

	_, err := svc.Book(context.Background(), "alice", "campo1", "2026-03-11", "10:00")

	require.ErrorIs(t, err, domain.ErrInsufficientCredits)
}

func TestBookingService_Book_SlotTakenPassthrough(t *testing.T) {
	svc, m := newBookingService(t)

	account := &domain.Account{Username: "alice", Role: domain.RoleUser, Credits: 3}

	m.reaper.EXPECT().MaybeReap(mock.Anything).Return()
	m.accounts.EXPECT().GetByUsername(mock.Anything, "alice").Return(account, nil)
	m.schedule.EXPECT().GetConfig(mock.Anything).Return(domain.DefaultScheduleConfig(), nil)
	m.schedule.EXPECT().ListFields(mock.Anything).Return(testFields(), nil)
	m.reservations.EXPECT().UsageCounts(mock.Anything, "alice", "2026-03-11", "2026-03-10", 720, 60).Return(0, 0, nil)
	m.reservations.EXPECT().Create(mock.Anything, mock.Anything, "alice").Return(domain.ErrSlotTaken)

	_, err := svc.Book(context.Background(), "alice", "campo1", "2026-03-11", "10:00")

	require.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestBookingService_Book_AdminSkipsLimitsAndCredits(t *testing.T) {
	svc, m := newBookingService(t)

	account := &domain.Account{Username: "boss", Role: domain.RoleAdmin, Credits: 0}

	m.reaper.EXPECT().MaybeReap(mock.Anything).Return()
	m.accounts.EXPECT().GetByUsername(mock.Anything, "boss").Return(account, nil)
	m.schedule.EXPECT().GetConfig(mock.Anything).Return(domain.DefaultScheduleConfig(), nil)
	m.schedule.EXPECT().ListFields(mock.Anything).Return(testFields(), nil)
	// UsageCounts не вызывается, списания нет.
	m.reservations.EXPECT().Create(mock.Anything, mock.Anything, "").Return(nil)
	m.notifier.EXPECT().NotifyBookingCreated(mock.Anything, account, mock.Anything).Return()

	reservation, err := svc.Book(context.Background(), "boss", "campo1", "2026-03-11", "10:00")

	require.NoError(t, err)
	assert.Equal(t, "boss", reservation.User)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_NotFoundIsNoop(t *testing.T) {
	svc, m := newBookingService(t)

	account := &domain.Account{Username: "alice", Role: domain.RoleUser}

	m.accounts.EXPECT().GetByUsername(mock.Anything, "alice").Return(account, nil)
	m.reservations.EXPECT().GetByID(mock.Anything, "campo1|2026-03-11|10:00").
		Return(nil, domain.ErrReservationNotFound)

	err := svc.Cancel(context.Background(), "alice", "campo1|2026-03-11|10:00")

	require.NoError(t, err)
}

func TestBookingService_Cancel_ForeignReservation(t *testing.T) {
	svc, m := newBookingService(t)

	account := &domain.Account{Username: "alice", Role: domain.RoleUser}
	reservation := &domain.Reservation{ID: "campo1|2026-03-11|10:00", User: "bob", Date: "2026-03-11"}

	m.accounts.EXPECT().GetByUsername(mock.Anything, "alice").Return(account, nil)
	m.reservations.EXPECT().GetByID(mock.Anything, reservation.ID).Return(reservation, nil)

	err := svc.Cancel(context.Background(), "alice", reservation.ID)

	require.ErrorIs(t, err, domain.ErrNotAllowed)
}

func TestBookingService_Cancel_FutureDateRefunds(t *testing.T) {
	svc, m := newBookingService(t)

	account := &domain.Account{Username: "alice", Role: domain.RoleUser}
	reservation := &domain.Reservation{
		ID:      "campo1|2026-03-11|10:00",
		FieldID: "campo1",
		Date:    "2026-03-11",
		Time:    "10:00",
		User:    "alice",
	}

	m.accounts.EXPECT().GetByUsername(mock.Anything, "alice").Return(account, nil)
	m.reservations.EXPECT().GetByID(mock.Anything, reservation.ID).Return(reservation, nil)
	m.reservations.EXPECT().Delete(mock.Anything, reservation.ID, "alice").Return(true, nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, account, reservation).Return()

	err := svc.Cancel(context.Background(), "alice", reservation.ID)

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_SameDayNoRefund(t *testing.T) {
	svc, m := newBookingService(t)

	account := &domain.Account{Username: "alice", Role: domain.RoleUser}
	reservation := &domain.Reservation{
		ID:      "campo1|2026-03-10|15:00",
		FieldID: "campo1",
		Date:    "2026-03-10",
		Time:    "15:00",
		User:    "alice",
	}

	m.accounts.EXPECT().GetByUsername(mock.Anything, "alice").Return(account, nil)
	m.reservations.EXPECT().GetByID(mock.Anything, reservation.ID).Return(reservation, nil)
	m.reservations.EXPECT().Delete(mock.Anything, reservation.ID, "").Return(true, nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, account, reservation).Return()

	err := svc.Cancel(context.Background(), "alice", reservation.ID)

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_AdminNeverRefunds(t *testing.T) {
	svc, m := newBookingService(t)

	admin := &domain.Account{Username: "boss", Role: domain.RoleAdmin}
	owner := &domain.Account{Username: "alice", Role: domain.RoleUser}
	reservation := &domain.Reservation{
		ID:      "campo1|2026-03-11|10:00",
		FieldID: "campo1",
		Date:    "2026-03-11",
		Time:    "10:00",
		User:    "alice",
	}

	m.accounts.EXPECT().GetByUsername(mock.Anything, "boss").Return(admin, nil)
	m.reservations.EXPECT().GetByID(mock.Anything, reservation.ID).Return(reservation, nil)
	m.reservations.EXPECT().Delete(mock.Anything, reservation.ID, "").Return(true, nil)
	m.accounts.EXPECT().GetByUsername(mock.Anything, "alice").Return(owner, nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, owner, reservation).Return()

	err := svc.Cancel(context.Background(), "boss", reservation.ID)

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_RaceAlreadyDeleted(t *testing.T) {
	svc, m := newBookingService(t)

	account := &domain.Account{Username: "alice", Role: domain.RoleUser}
	reservation := &domain.Reservation{ID: "campo1|2026-03-11|10:00", User: "alice", Date: "2026-03-11"}

	m.accounts.EXPECT().GetByUsername(mock.Anything, "alice").Return(account, nil)
	m.reservations.EXPECT().GetByID(mock.Anything, reservation.ID).Return(reservation, nil)
	m.reservations.EXPECT().Delete(mock.Anything, reservation.ID, "alice").Return(false, nil)

	err := svc.Cancel(context.Background(), "alice", reservation.ID)

	require.NoError(t, err)
}

func TestBookingService_ListSlots_Classification(t *testing.T) {
	svc, m := newBookingService(t)

	existing := []*domain.Reservation{
		{ID: "campo1|2026-03-10|14:00", FieldID: "campo1", Date: "2026-03-10", Time: "14:00", User: "bob"},
		{ID: "campo2|2026-03-10|15:00", FieldID: "campo2", Date: "2026-03-10", Time: "15:00", User: "bob"},
	}

	m.reaper.EXPECT().MaybeReap(mock.Anything).Return()
	m.schedule.EXPECT().GetConfig(mock.Anything).Return(domain.DefaultScheduleConfig(), nil)
	m.reservations.EXPECT().ListByDate(mock.Anything, "2026-03-10").Return(existing, nil)

	slots, err := svc.ListSlots(context.Background(), "campo1", "2026-03-10")

	require.NoError(t, err)
	require.Len(t, slots, 11) // 09:00 .. 19:00

	byTime := make(map[string]domain.SlotStatus, len(slots))
	for _, s := range slots {
		byTime[s.Time] = s.Status
	}

	// В 12:00 слоты 09..11 прошли, 14:00 занят чужой бронью на этом поле,
	// бронь на campo2 этот список не трогает.
	assert.Equal(t, domain.SlotPast, byTime["09:00"])
	assert.Equal(t, domain.SlotPast, byTime["11:00"])
	assert.Equal(t, domain.SlotFree, byTime["12:00"])
	assert.Equal(t, domain.SlotTaken, byTime["14:00"])
	assert.Equal(t, domain.SlotFree, byTime["15:00"])
	assert.Equal(t, domain.SlotFree, byTime["19:00"])
}

func TestBookingService_ListSlots_FutureDateAllBookable(t *testing.T) {
	svc, m := newBookingService(t)

	m.reaper.EXPECT().MaybeReap(mock.Anything).Return()
	m.schedule.EXPECT().GetConfig(mock.Anything).Return(domain.DefaultScheduleConfig(), nil)
	m.reservations.EXPECT().ListByDate(mock.Anything, "2026-03-11").Return(nil, nil)

	slots, err := svc.ListSlots(context.Background(), "campo1", "2026-03-11")

	require.NoError(t, err)
	for _, s := range slots {
		assert.Equal(t, domain.SlotFree, s.Status)
	}
}

func TestBookingService_ListSlots_InvalidDate(t *testing.T) {
	svc, m := newBookingService(t)

	m.reaper.EXPECT().MaybeReap(mock.Anything).Return()

	_, err := svc.ListSlots(context.Background(), "campo1", "11-03-2026")

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_ListReservations_AdminSeesAll(t *testing.T) {
	svc, m := newBookingService(t)

	admin := &domain.Account{Username: "boss", Role: domain.RoleAdmin}
	all := []*domain.Reservation{
		{ID: "campo1|2026-03-11|10:00", User: "alice"},
		{ID: "campo2|2026-03-11|10:00", User: "bob"},
	}

	m.reaper.EXPECT().MaybeReap(mock.Anything).Return()
	m.accounts.EXPECT().GetByUsername(mock.Anything, "boss").Return(admin, nil)
	m.reservations.EXPECT().ListByDate(mock.Anything, "2026-03-11").Return(all, nil)

	got, err := svc.ListReservations(context.Background(), "boss", "2026-03-11")

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestBookingService_ListReservations_UserSeesOwn(t *testing.T) {
	svc, m := newBookingService(t)

	account := &domain.Account{Username: "alice", Role: domain.RoleUser}
	own := []*domain.Reservation{{ID: "campo1|2026-03-11|10:00", User: "alice"}}

	m.reaper.EXPECT().MaybeReap(mock.Anything).Return()
	m.accounts.EXPECT().GetByUsername(mock.Anything, "alice").Return(account, nil)
	m.reservations.EXPECT().ListByDateAndUser(mock.Anything, "2026-03-11", "alice").Return(own, nil)

	got, err := svc.ListReservations(context.Background(), "alice", "2026-03-11")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "alice", got[0].User)
}

func TestBookingService_Book_RepoErrorWrapped(t *testing.T) {
	svc, m := newBookingService(t)

	account := &domain.Account{Username: "alice", Role: domain.RoleUser, Credits: 3}
	repoErr := errors.New("connection reset")

	m.reaper.EXPECT().MaybeReap(mock.Anything).Return()
	m.accounts.EXPECT().GetByUsername(mock.Anything, "alice").Return(account, nil)
	m.schedule.EXPECT().GetConfig(mock.Anything).Return(domain.DefaultScheduleConfig(), nil)
	m.schedule.EXPECT().ListFields(mock.Anything).Return(testFields(), nil)
	m.reservations.EXPECT().UsageCounts(mock.Anything, "alice", "2026-03-11", "2026-03-10", 720, 60).Return(0, 0, nil)
	m.reservations.EXPECT().Create(mock.Anything, mock.Anything, "alice").Return(repoErr)

	_, err := svc.Book(context.Background(), "alice", "campo1", "2026-03-11", "10:00")

	require.ErrorIs(t, err, repoErr)
}
