package models

import "time"

// PushSubscription stores a browser Web Push subscription. Re-subscribing
// with the same endpoint upserts the row, so a device that refreshes its
// keys keeps a single record.
type PushSubscription struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;index" json:"user_id"`
	Endpoint  string    `gorm:"uniqueIndex;size:512" json:"endpoint"`
	P256dh    string    `gorm:"size:255" json:"p256dh"` // public key for payload encryption
	Auth      string    `gorm:"size:255" json:"auth"`   // auth secret
	CreatedAt time.Time `json:"created_at"`
}
