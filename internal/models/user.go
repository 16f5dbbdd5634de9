package models

import "time"

// Accounts are provisioned by the identity service; this table only mirrors
// what bookings need to reference.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName     string `gorm:"size:100;not null" json:"full_name"`
	MobileNumber string `gorm:"size:20" json:"mobile_number"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Role         string `gorm:"size:20;default:'user'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
