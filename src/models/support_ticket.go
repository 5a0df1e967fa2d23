package models

import "boatsafari/src/types"

type SupportTicket struct {
	ID               uint               `gorm:"primarykey" json:"ticketId"`
	Name             string             `json:"name,omitempty"`
	Email            string             `json:"email,omitempty"`
	Phone            string             `json:"phone,omitempty"`
	Subject          string             `json:"subject,omitempty"`
	Message          string             `gorm:"type:text" json:"message,omitempty"`
	Status           types.TicketStatus `gorm:"default:'NEW'" json:"status,omitempty"`
	PreferredContact string             `json:"preferredContact,omitempty"`

	types.Timestamps
}
