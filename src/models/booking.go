package models

import (
	"strings"
	"time"

	"boatsafari/src/types"

	"github.com/shopspring/decimal"
)

type Booking struct {
	ID            uint                `gorm:"primarykey" json:"id"`
	TripID        uint                `json:"trip_id,omitempty"`
	CustomerID    uint                `json:"customer_id,omitempty"`
	Name          string              `json:"name,omitempty"`
	Contact       string              `json:"contact,omitempty"`
	Email         string              `json:"email,omitempty"`
	Passengers    int                 `json:"passengers,omitempty"`
	Status        types.BookingStatus `gorm:"default:'PROVISIONAL'" json:"status,omitempty"`
	HoldExpiresAt *time.Time          `json:"hold_expires_at,omitempty"`
	TotalCost     decimal.Decimal     `gorm:"type:numeric(12,2)" json:"total_cost"`
	PaymentID     *uint               `json:"payment_id,omitempty"`

	Trip     *Trip    `gorm:"foreignKey:trip_id" json:"trip,omitempty"`
	Customer *User    `gorm:"foreignKey:customer_id" json:"customer,omitempty"`
	Payment  *Payment `gorm:"foreignKey:payment_id" json:"payment,omitempty"`

	types.Timestamps
}

// HoldExpired reports whether the provisional hold has lapsed. Bookings
// without a hold timestamp never expire this way.
func (b Booking) HoldExpired(now time.Time) bool {
	return b.HoldExpiresAt != nil && b.HoldExpiresAt.Before(now)
}

// Provisional matches the stored status case-insensitively, the same
// way confirmation does.
func (b Booking) Provisional() bool {
	return strings.EqualFold(string(b.Status), string(types.BOOKING_PROVISIONAL))
}

// CountsTowardCapacity is the capacity rule: confirmed bookings always
// hold their seats, provisional ones only while the hold is alive.
// Expired and cancelled bookings release their seats.
func (b Booking) CountsTowardCapacity(now time.Time) bool {
	switch {
	case strings.EqualFold(string(b.Status), string(types.BOOKING_CONFIRMED)):
		return true
	case b.Provisional():
		return !b.HoldExpired(now)
	default:
		return false
	}
}
