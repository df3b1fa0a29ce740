package dto

type BookRequest struct {
	FieldID string `json:"field_id" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	Role           string `json:"role"`
	Credits        int    `json:"credits"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type AdjustCreditsRequest struct {
	Username string `json:"username" binding:"required"`
	Delta    int    `json:"delta"`
}

type SetStatusRequest struct {
	Username string `json:"username" binding:"required"`
	Disabled *bool  `json:"disabled" binding:"required"`
}

type SetConfigRequest struct {
	SlotMinutes              int    `json:"slot_minutes" binding:"required"`
	DayStart                 string `json:"day_start" binding:"required"`
	DayEnd                   string `json:"day_end" binding:"required"`
	MaxBookingsPerUserPerDay int    `json:"max_bookings_per_user_per_day" binding:"required"`
	MaxActiveBookingsPerUser int    `json:"max_active_bookings_per_user" binding:"required"`
}

type FieldPayload struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type SetFieldsRequest struct {
	Fields []FieldPayload `json:"fields" binding:"required"`
}
