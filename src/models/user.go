package models

import "boatsafari/src/types"

// User is a single-table record for every account type. Role is the
// discriminator; Certification applies to guides and captains,
// Department to IT staff, Specialization to guides.
type User struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	FirstName      string     `json:"firstName,omitempty"`
	SecondName     string     `json:"secondName,omitempty"`
	Password       string     `json:"-"`
	Email          string     `gorm:"uniqueIndex" json:"email,omitempty"`
	ContactNo      string     `json:"contactNo,omitempty"`
	Address        string     `json:"address,omitempty"`
	City           string     `json:"city,omitempty"`
	Street         string     `json:"street,omitempty"`
	PostalCode     string     `json:"postalCode,omitempty"`
	HireDate       string     `json:"hireDate,omitempty"`
	Certification  string     `json:"certification,omitempty"`
	Department     string     `json:"department,omitempty"`
	Specialization string     `json:"specialization,omitempty"`
	Role           types.Role `gorm:"default:'CUSTOMER'" json:"role,omitempty"`

	Bookings []Booking `gorm:"foreignKey:customer_id" json:"bookings,omitempty"`

	types.Timestamps
}

// WithRole rebuilds the record under a new role tag. Every shared
// attribute carries over and the identifier is preserved, so the change
// is a type substitution under one identity, never a new account.
func (u User) WithRole(role types.Role) User {
	updated := User{
		ID:            u.ID,
		FirstName:     u.FirstName,
		SecondName:    u.SecondName,
		Password:      u.Password,
		Email:         u.Email,
		ContactNo:     u.ContactNo,
		Address:       u.Address,
		City:          u.City,
		Street:        u.Street,
		PostalCode:    u.PostalCode,
		HireDate:      u.HireDate,
		Certification: u.Certification,
		Role:          role,
		Timestamps:    u.Timestamps,
	}
	// Role-specific fields survive only where the target shape has them.
	switch role {
	case types.ROLE_IT_SUPPORT, types.ROLE_IT_ASSISTANT:
		updated.Department = u.Department
	case types.ROLE_GUIDE, types.ROLE_CAPTAIN:
		updated.Specialization = u.Specialization
	}
	return updated
}

func (u User) FullName() string {
	if u.SecondName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.SecondName
}
