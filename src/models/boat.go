package models

import "boatsafari/src/types"

type Boat struct {
	ID                 uint             `gorm:"primarykey" json:"id"`
	BoatName           string           `json:"boatName,omitempty"`
	Model              string           `json:"model,omitempty"`
	Features           string           `json:"features,omitempty"`
	RegistrationNumber string           `json:"registrationNumber,omitempty"`
	Status             types.BoatStatus `gorm:"default:'AVAILABLE'" json:"status,omitempty"`
	Capacity           int              `json:"capacity,omitempty"`
	Description        string           `json:"description,omitempty"`
	Type               string           `json:"type,omitempty"`

	types.Timestamps
}
