package domain

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

var (
	ErrPastDate            = errors.New("date is in the past")
	ErrPastTime            = errors.New("slot time has already passed")
	ErrDailyLimitExceeded  = errors.New("daily booking limit exceeded")
	ErrActiveLimitExceeded = errors.New("active booking limit exceeded")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrSlotTaken           = errors.New("slot is already taken")
	ErrNotAllowed          = errors.New("not allowed")
	ErrUserDisabled        = errors.New("user is disabled")
	ErrUnknownField        = errors.New("unknown field")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)

// ErrorCode возвращает стабильный машинночитаемый код причины отказа.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return "USER_NOT_FOUND"
	case errors.Is(err, ErrReservationNotFound):
		return "RESERVATION_NOT_FOUND"
	case errors.Is(err, ErrPastDate):
		return "PAST_DATE"
	case errors.Is(err, ErrPastTime):
		return "PAST_TIME"
	case errors.Is(err, ErrDailyLimitExceeded):
		return "DAILY_BOOKING_LIMIT"
	case errors.Is(err, ErrActiveLimitExceeded):
		return "ACTIVE_BOOKING_LIMIT"
	case errors.Is(err, ErrInsufficientCredits):
		return "NO_CREDITS"
	case errors.Is(err, ErrSlotTaken):
		return "SLOT_TAKEN"
	case errors.Is(err, ErrNotAllowed):
		return "NOT_ALLOWED"
	case errors.Is(err, ErrUserDisabled):
		return "USER_DISABLED"
	case errors.Is(err, ErrUnknownField):
		return "UNKNOWN_FIELD"
	case errors.Is(err, ErrUsernameTaken):
		return "USERNAME_TAKEN"
	case errors.Is(err, ErrValidation):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL"
	}
}
