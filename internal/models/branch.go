package models

import "time"

type Branch struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Address string `gorm:"size:255" json:"address"`
	Phone   string `gorm:"size:20" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`

	// Minutes per bookable slot, 15-120.
	SlotDurationMin int `gorm:"default:30" json:"slot_duration_min"`

	IsActive     bool `gorm:"default:true" json:"is_active"`
	DisplayOrder int  `gorm:"default:0" json:"display_order"`

	Hours []BranchHours `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// One row per weekday (0 = Sunday ... 6 = Saturday).
type BranchHours struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BranchID uint `gorm:"uniqueIndex:idx_branch_weekday" json:"branch_id"`

	Weekday int  `gorm:"uniqueIndex:idx_branch_weekday" json:"weekday"`
	IsOpen  bool `json:"is_open"`

	OpenTime  string `gorm:"size:5" json:"open_time"`  // "10:00" (24h)
	CloseTime string `gorm:"size:5" json:"close_time"` // "19:00"

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HoursFor returns the schedule row for a weekday, nil when none is configured.
func (b *Branch) HoursFor(weekday time.Weekday) *BranchHours {
	for i := range b.Hours {
		if b.Hours[i].Weekday == int(weekday) {
			return &b.Hours[i]
		}
	}
	return nil
}
