package models

import "boatsafari/src/types"

type Feedback struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	BookingID uint   `json:"booking_id,omitempty"`
	Rating    int    `json:"rating"`
	Comments  string `json:"comments,omitempty"`

	Booking *Booking `gorm:"foreignKey:booking_id" json:"booking,omitempty"`

	types.Timestamps
}
