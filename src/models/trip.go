package models

import (
	"time"

	"boatsafari/src/types"

	"github.com/shopspring/decimal"
)

type Trip struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	Name        string          `json:"name,omitempty"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date,omitempty"`
	StartTime   string          `json:"startTime,omitempty"`
	EndTime     string          `json:"endTime,omitempty"`
	Duration    int             `json:"duration,omitempty"`
	Capacity    int             `json:"capacity,omitempty"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2)" json:"price"`
	Location    string          `json:"location,omitempty"`
	Route       string          `json:"route,omitempty"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	BoatID      *uint           `json:"boat_id,omitempty"`
	GuideID     *uint           `json:"guide_id,omitempty"`

	Boat     *Boat     `gorm:"foreignKey:boat_id" json:"boat,omitempty"`
	Guide    *User     `gorm:"foreignKey:guide_id" json:"guide,omitempty"`
	Bookings []Booking `gorm:"foreignKey:trip_id" json:"bookings,omitempty"`

	types.Timestamps
}
