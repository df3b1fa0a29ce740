package domain

import "time"

type SlotStatus string

const (
	SlotFree  SlotStatus = "free"
	SlotTaken SlotStatus = "taken"
	SlotPast  SlotStatus = "past"
)

// Slot — одна бронируемая ячейка расписания.
type Slot struct {
	Time   string     `json:"time"`
	Status SlotStatus `json:"status"`
}

type Reservation struct {
	ID        string    `json:"id"`
	FieldID   string    `json:"field_id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Time      string    `json:"time"` // HH:MM, начало слота
	User      string    `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// ReservationID builds the composite key fieldId|date|time.
// The key doubles as the uniqueness constraint on a slot.
func ReservationID(fieldID, date, slotTime string) string {
	return fieldID + "|" + date + "|" + slotTime
}
