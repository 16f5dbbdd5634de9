package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringSlice is stored as a JSON array in a text column.
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *StringSlice) Scan(value any) error {
	if value == nil {
		*s = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for StringSlice")
	}

	return json.Unmarshal(data, (*[]string)(s))
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReferenceNumber string `gorm:"size:20;uniqueIndex;not null" json:"reference_number"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	ConsultationID uint         `json:"consultation_id"`
	Consultation   Consultation `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"consultation"`

	BranchID uint   `json:"branch_id"`
	Branch   Branch `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"branch"`

	// Contact details are copied from the user at creation time so the
	// record stays intact even if the source profile changes later.
	FullName          string `gorm:"size:100" json:"full_name"`
	MobileNumber      string `gorm:"size:20" json:"mobile_number"`
	Email             string `gorm:"size:100" json:"email"`
	PreferredLocation string `gorm:"size:100" json:"preferred_location"`

	PreferredDate      time.Time   `gorm:"index" json:"preferred_date"`
	PreferredTimeSlots StringSlice `gorm:"type:text" json:"preferred_time_slots"`

	ConfirmedDate *time.Time `json:"confirmed_date"`
	ConfirmedTime string     `gorm:"size:10" json:"confirmed_time"`

	Status string `gorm:"size:30;default:'Awaiting Confirmation';index" json:"status"`

	CheckInTime        *time.Time `json:"check_in_time"`
	CheckOutTime       *time.Time `json:"check_out_time"`
	SessionDurationMin int        `json:"session_duration_min"`

	CancellationReason string     `gorm:"size:255" json:"cancellation_reason"`
	CancelledAt        *time.Time `json:"cancelled_at"`

	RescheduledFromDate *time.Time `json:"rescheduled_from_date"`
	RescheduledFromTime string     `gorm:"size:10" json:"rescheduled_from_time"`
	RescheduledAt       *time.Time `json:"rescheduled_at"`

	// 1-5, zero while unrated. Only settable once Completed.
	Rating int `json:"rating"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HoldsSlot reports whether this booking claims the given time label.
func (b *Booking) HoldsSlot(label string) bool {
	for _, s := range b.PreferredTimeSlots {
		if s == label {
			return true
		}
	}
	return false
}
