package models

import "time"

// UserPlant is a catalog plant the user owns. The last_* timestamps are only
// ever written by reminder completion.
type UserPlant struct {
	ID                       string     `gorm:"primaryKey;size:36" json:"id"`
	UserID                   string     `gorm:"size:36;index" json:"user_id"`
	PlantID                  string     `gorm:"size:64" json:"plant_id"`
	Nickname                 string     `gorm:"size:100" json:"nickname"`
	PlantName                string     `gorm:"size:255" json:"plant_name"`
	ScientificName           string     `gorm:"size:255" json:"scientific_name"`
	DateAdded                time.Time  `json:"date_added"`
	LastWatered              *time.Time `json:"last_watered,omitempty"`
	LastFertilized           *time.Time `json:"last_fertilized,omitempty"`
	LastRepotted             *time.Time `json:"last_repotted,omitempty"`
	WateringFrequencyDays    int        `gorm:"default:7" json:"watering_frequency_days"`
	FertilizingFrequencyDays int        `gorm:"default:30" json:"fertilizing_frequency_days"`
	Notes                    string     `gorm:"type:text" json:"notes,omitempty"`
	ImageURL                 string     `gorm:"size:512" json:"image_url,omitempty"`
}
