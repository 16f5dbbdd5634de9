package models

import "time"

// In-app notification record; outbound delivery (email/SMS/voice) happens
// elsewhere and is not tracked here.
type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EventID string `gorm:"size:36;uniqueIndex" json:"event_id"`

	UserID    uint  `gorm:"index" json:"user_id"`
	BookingID *uint `json:"booking_id"`

	Type    string `gorm:"size:50" json:"type"`
	Title   string `gorm:"size:100" json:"title"`
	Message string `gorm:"size:500" json:"message"`

	Read bool `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}
