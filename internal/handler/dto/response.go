package dto

import (
	"time"

	"github.com/isaacbis/tommi38/internal/domain"
)

type SlotResponse struct {
	Time   string `json:"time"`
	Status string `json:"status"`
}

type ReservationResponse struct {
	ID        string `json:"id"`
	FieldID   string `json:"field_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	User      string `json:"user"`
	CreatedAt string `json:"created_at"`
}

type AccountResponse struct {
	Username       string `json:"username"`
	Role           string `json:"role"`
	Credits        int    `json:"credits"`
	Disabled       bool   `json:"disabled"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type PublicConfigResponse struct {
	SlotMinutes              int             `json:"slot_minutes"`
	DayStart                 string          `json:"day_start"`
	DayEnd                   string          `json:"day_end"`
	MaxBookingsPerUserPerDay int             `json:"max_bookings_per_user_per_day"`
	MaxActiveBookingsPerUser int             `json:"max_active_bookings_per_user"`
	Fields                   []FieldResponse `json:"fields"`
}

type FieldResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func ToSlotResponse(s domain.Slot) SlotResponse {
	return SlotResponse{
		Time:   s.Time,
		Status: string(s.Status),
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:        r.ID,
		FieldID:   r.FieldID,
		Date:      r.Date,
		Time:      r.Time,
		User:      r.User,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		Username:       a.Username,
		Role:           string(a.Role),
		Credits:        a.Credits,
		Disabled:       a.Disabled,
		TelegramChatID: a.TelegramChatID,
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
	}
}

func ToPublicConfigResponse(cfg *domain.PublicConfig) PublicConfigResponse {
	fields := make([]FieldResponse, 0, len(cfg.Fields))
	for _, f := range cfg.Fields {
		fields = append(fields, FieldResponse{ID: f.ID, Name: f.Name})
	}

	return PublicConfigResponse{
		SlotMinutes:              cfg.Schedule.SlotMinutes,
		DayStart:                 cfg.Schedule.DayStart,
		DayEnd:                   cfg.Schedule.DayEnd,
		MaxBookingsPerUserPerDay: cfg.Schedule.MaxBookingsPerUserPerDay,
		MaxActiveBookingsPerUser: cfg.Schedule.MaxActiveBookingsPerUser,
		Fields:                   fields,
	}
}
