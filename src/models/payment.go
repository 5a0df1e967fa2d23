package models

import (
	"time"

	"boatsafari/src/types"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID             uint                `gorm:"primarykey" json:"id"`
	BookingID      uint                `json:"booking_id,omitempty"`
	PaymentMethod  string              `json:"paymentMethod,omitempty"`
	PaymentDate    time.Time           `json:"paymentDate,omitempty"`
	Amount         decimal.Decimal     `gorm:"type:numeric(12,2)" json:"amount"`
	Status         types.PaymentStatus `gorm:"default:'PENDING'" json:"status,omitempty"`
	CardLast4      string              `json:"cardLast4,omitempty"`
	CardHolderName string              `json:"cardHolderName,omitempty"`
	Metadata       *types.JSONB        `gorm:"type:jsonb" json:"metadata,omitempty"`

	types.Timestamps
}

// MaskCard keeps only the last four digits of a card number.
func MaskCard(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}
