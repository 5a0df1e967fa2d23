package models

import (
	"time"

	"boatsafari/src/types"
)

type PassengerCheckIn struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	BookingID   uint       `json:"booking_id,omitempty"`
	CheckedIn   bool       `json:"checkedIn"`
	CheckInTime *time.Time `json:"checkInTime,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CheckedInBy uint       `json:"checked_in_by,omitempty"`

	Booking *Booking `gorm:"foreignKey:booking_id" json:"booking,omitempty"`
	Guide   *User    `gorm:"foreignKey:checked_in_by" json:"guide,omitempty"`

	types.Timestamps
}
