package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type Account struct {
	Username       string    `json:"username"`
	Role           Role      `json:"role"`
	Credits        int       `json:"credits"`
	Disabled       bool      `json:"disabled"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

type CreateAccountInput struct {
	Username       string
	Role           Role
	Credits        int
	TelegramChatID *int64
}
