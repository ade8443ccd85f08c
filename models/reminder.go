package models

import "time"

// Reminder type constants
const (
	ReminderWatering    = "watering"
	ReminderFertilizing = "fertilizing"
	ReminderRepotting   = "repotting"
)

// Reminder is a scheduled care action. PlantNickname is a snapshot taken at
// creation time and is not re-synced if the plant is renamed.
type Reminder struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	UserID        string    `gorm:"size:36;index:idx_reminders_user_due,priority:1" json:"user_id"`
	PlantID       string    `gorm:"size:36;index" json:"plant_id"`
	PlantNickname string    `gorm:"size:100" json:"plant_nickname"`
	ReminderType  string    `gorm:"size:16" json:"reminder_type"`
	DueDate       time.Time `gorm:"index:idx_reminders_user_due,priority:2" json:"due_date"`
	Completed     bool      `gorm:"default:false" json:"completed"`
	CreatedAt     time.Time `json:"created_at"`
}
