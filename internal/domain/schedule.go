package domain

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ScheduleConfig — настройки расписания, общие для всего приложения.
// Изменение конфига влияет только на будущие решения аллокатора,
// существующие брони не трогает.
type ScheduleConfig struct {
	SlotMinutes              int    `json:"slot_minutes"`
	DayStart                 string `json:"day_start"` // HH:MM
	DayEnd                   string `json:"day_end"`   // HH:MM
	MaxBookingsPerUserPerDay int    `json:"max_bookings_per_user_per_day"`
	MaxActiveBookingsPerUser int    `json:"max_active_bookings_per_user"`
}

func DefaultScheduleConfig() ScheduleConfig {
	return ScheduleConfig{
		SlotMinutes:              60,
		DayStart:                 "09:00",
		DayEnd:                   "20:00",
		MaxBookingsPerUserPerDay: 2,
		MaxActiveBookingsPerUser: 2,
	}
}

func (c ScheduleConfig) Validate() error {
	if c.SlotMinutes < 5 || c.SlotMinutes > 240 {
		return fmt.Errorf("%w: slot_minutes must be between 5 and 240", ErrValidation)
	}
	start, err := ClockMinutes(c.DayStart)
	if err != nil {
		return fmt.Errorf("%w: invalid day_start %q", ErrValidation, c.DayStart)
	}
	end, err := ClockMinutes(c.DayEnd)
	if err != nil {
		return fmt.Errorf("%w: invalid day_end %q", ErrValidation, c.DayEnd)
	}
	if start >= end {
		return fmt.Errorf("%w: day_start must be before day_end", ErrValidation)
	}
	if c.MaxBookingsPerUserPerDay < 1 {
		return fmt.Errorf("%w: max_bookings_per_user_per_day must be at least 1", ErrValidation)
	}
	if c.MaxActiveBookingsPerUser < 1 {
		return fmt.Errorf("%w: max_active_bookings_per_user must be at least 1", ErrValidation)
	}
	return nil
}

// SlotStarts возвращает упорядоченные времена начала слотов от DayStart
// до DayEnd; слот, конец которого выходит за DayEnd, не включается.
func (c ScheduleConfig) SlotStarts() []string {
	start, err := ClockMinutes(c.DayStart)
	if err != nil {
		return nil
	}
	end, err := ClockMinutes(c.DayEnd)
	if err != nil {
		return nil
	}

	var res []string
	for m := start; m+c.SlotMinutes <= end; m += c.SlotMinutes {
		res = append(res, ClockString(m))
	}
	return res
}

type Field struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PublicConfig — снимок конфига и каталога полей для клиента.
type PublicConfig struct {
	Schedule ScheduleConfig `json:"schedule"`
	Fields   []Field        `json:"fields"`
}

// ClockMinutes parses HH:MM into minutes since midnight.
func ClockMinutes(t string) (int, error) {
	parsed, err := time.Parse(ClockLayout, t)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid time %q", ErrValidation, t)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

func ClockString(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func ParseDate(s string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrValidation, s)
	}
	return parsed, nil
}

// MinutesOfDay — минуты с полуночи по локальному времени t.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
