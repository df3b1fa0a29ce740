package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/isaacbis/tommi38/internal/domain"
	"github.com/isaacbis/tommi38/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// BookingService решает, легален ли слот, и выполняет атомарный переход
// состояния: бронь + списание/возврат кредита в одной транзакции.
type BookingService struct {
	reservations ports.ReservationRepo
	accounts     ports.AccountRepo
	schedule     ports.ScheduleRepo
	reaper       ports.SlotReaper
	notifier     ports.BookingNotifier
	logger       logger.Logger
	now          func() time.Time
}

func NewBookingService(
	reservations ports.ReservationRepo,
	accounts ports.AccountRepo,
	schedule ports.ScheduleRepo,
	reaper ports.SlotReaper,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		reservations: reservations,
		accounts:     accounts,
		schedule:     schedule,
		reaper:       reaper,
		notifier:     notifier,
		logger:       logger,
		now:          time.Now,
	}
}

// WithClock подменяет источник времени; нужен тестам границ "прошедшего" слота.
func (s *BookingService) WithClock(now func() time.Time) *BookingService {
	s.now = now
	return s
}

// ListSlots строит упорядоченную сетку слотов для поля и даты и помечает
// каждый слот как past, taken или free. Побочных эффектов нет.
func (s *BookingService) ListSlots(ctx context.Context, fieldID, date string) ([]domain.Slot, error) {
	s.reaper.MaybeReap(ctx)

	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}

	cfg, err := s.schedule.GetConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("get config: %w", err)
	}

	existing, err := s.reservations.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	taken := make(map[string]struct{}, len(existing))
	for _, r := range existing {
		if r.FieldID == fieldID {
			taken[r.Time] = struct{}{}
		}
	}

	now := s.now()
	today := now.Format(domain.DateLayout)
	nowMin := domain.MinutesOfDay(now)

	starts := cfg.SlotStarts()
	slots := make([]domain.Slot, 0, len(starts))
	for _, start := range starts {
		startMin, err := domain.ClockMinutes(start)
		if err != nil {
			return nil, err
		}

		status := domain.SlotFree
		switch {
		case date == today && startMin+cfg.SlotMinutes <= nowMin:
			status = domain.SlotPast
		default:
			if _, ok := taken[start]; ok {
				status = domain.SlotTaken
			}
		}

		slots = append(slots, domain.Slot{Time: start, Status: status})
	}

	return slots, nil
}

// ListReservations возвращает все брони даты для админа и только свои для
// обычного пользователя.
func (s *BookingService) ListReservations(ctx context.Context, caller, date string) ([]*domain.Reservation, error) {
	s.reaper.MaybeReap(ctx)

	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByUsername(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("check caller: %w", err)
	}

	if account.IsAdmin() {
		return s.reservations.ListByDate(ctx, date)
	}
	return s.reservations.ListByDateAndUser(ctx, date, caller)
}

// Book проверяет предусловия в фиксированном порядке и создаёт бронь.
// Существование ключа и запись сериализованы против конкурентных попыток
// на тот же слот уникальным ограничением хранилища: из двух одновременных
// запросов выигрывает ровно один, второй получает ErrSlotTaken.
func (s *BookingService) Book(ctx context.Context, caller, fieldID, date, slotTime string) (*domain.Reservation, error) {
	s.reaper.MaybeReap(ctx)

	account, err := s.accounts.GetByUsername(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("check caller: %w", err)
	}
	if account.Disabled {
		return nil, domain.ErrUserDisabled
	}

	cfg, err := s.schedule.GetConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("get config: %w", err)
	}

	if _, err = domain.ParseDate(date); err != nil {
		return nil, err
	}
	startMin, err := domain.ClockMinutes(slotTime)
	if err != nil {
		return nil, err
	}
	if !onSlotGrid(cfg, slotTime) {
		return nil, fmt.Errorf("%w: time %q is not on the slot grid", domain.ErrValidation, slotTime)
	}

	if err = s.checkFieldKnown(ctx, fieldID); err != nil {
		return nil, err
	}

	now := s.now()
	today := now.Format(domain.DateLayout)
	nowMin := domain.MinutesOfDay(now)

	if date < today {
		return nil, domain.ErrPastDate
	}
	if date == today && startMin+cfg.SlotMinutes <= nowMin {
		return nil, domain.ErrPastTime
	}

	// Админ не тратит кредиты и не ограничен лимитами.
	debitUser := ""
	if !account.IsAdmin() {
		day, active, err := s.reservations.UsageCounts(ctx, caller, date, today, nowMin, cfg.SlotMinutes)
		if err != nil {
			return nil, fmt.Errorf("usage counts: %w", err)
		}
		if day >= cfg.MaxBookingsPerUserPerDay {
			return nil, domain.ErrDailyLimitExceeded
		}
		if active >= cfg.MaxActiveBookingsPerUser {
			return nil, domain.ErrActiveLimitExceeded
		}
		if account.Credits <= 0 {
			return nil, domain.ErrInsufficientCredits
		}
		debitUser = caller
	}

	reservation := &domain.Reservation{
		ID:        domain.ReservationID(fieldID, date, slotTime),
		FieldID:   fieldID,
		Date:      date,
		Time:      slotTime,
		User:      caller,
		CreatedAt: now.UTC(),
	}

	if err = s.reservations.Create(ctx, reservation, debitUser); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) || errors.Is(err, domain.ErrInsufficientCredits) {
			return nil, err
		}
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", reservation.ID),
		logger.String("user", caller),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), account, reservation)

	return reservation, nil
}

// Cancel удаляет бронь. Отмена несуществующей брони — успешный no-op.
// Кредит возвращается только не-админу и только если дата брони строго
// в будущем: отмена день-в-день не компенсируется.
func (s *BookingService) Cancel(ctx context.Context, caller, reservationID string) error {
	account, err := s.accounts.GetByUsername(ctx, caller)
	if err != nil {
		return fmt.Errorf("check caller: %w", err)
	}
	if account.Disabled {
		return domain.ErrUserDisabled
	}

	reservation, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			return nil
		}
		return fmt.Errorf("get reservation: %w", err)
	}

	if !account.IsAdmin() && reservation.User != caller {
		return domain.ErrNotAllowed
	}

	refundUser := ""
	if !account.IsAdmin() && reservation.Date > s.now().Format(domain.DateLayout) {
		refundUser = reservation.User
	}

	deleted, err := s.reservations.Delete(ctx, reservationID, refundUser)
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	if !deleted {
		return nil
	}

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", reservationID),
		logger.String("cancelled_by", caller),
	)

	go s.notifyCancelled(context.WithoutCancel(ctx), account, reservation)

	return nil
}

func (s *BookingService) notifyCancelled(ctx context.Context, caller *domain.Account, reservation *domain.Reservation) {
	owner := caller
	if reservation.User != caller.Username {
		var err error
		owner, err = s.accounts.GetByUsername(ctx, reservation.User)
		if err != nil {
			s.logger.Error("failed to get owner for cancel notification",
				logger.String("user", reservation.User),
			)
			return
		}
	}

	s.notifier.NotifyBookingCancelled(ctx, owner, reservation)
}

func (s *BookingService) checkFieldKnown(ctx context.Context, fieldID string) error {
	fields, err := s.schedule.ListFields(ctx)
	if err != nil {
		return fmt.Errorf("list fields: %w", err)
	}
	for _, f := range fields {
		if f.ID == fieldID {
			return nil
		}
	}
	return domain.ErrUnknownField
}

func onSlotGrid(cfg domain.ScheduleConfig, slotTime string) bool {
	for _, start := range cfg.SlotStarts() {
		if start == slotTime {
			return true
		}
	}
	return false
}
