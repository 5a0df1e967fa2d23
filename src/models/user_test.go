package models

import (
	"testing"

	"boatsafari/src/types"

	"github.com/stretchr/testify/assert"
)

func TestWithRolePreservesIdentityAndSharedFields(t *testing.T) {
	user := User{
		ID:         7,
		FirstName:  "Jane",
		SecondName: "Doe",
		Password:   "hash",
		Email:      "jane@example.com",
		ContactNo:  "0771234567",
		Address:    "12 Harbour Rd",
		City:       "Galle",
		Street:     "Harbour Rd",
		PostalCode: "80000",
		HireDate:   "2024-02-01",
		Role:       types.ROLE_CUSTOMER,
	}

	staff := user.WithRole(types.ROLE_STAFF)

	assert.Equal(t, uint(7), staff.ID)
	assert.Equal(t, types.ROLE_STAFF, staff.Role)
	assert.Equal(t, "Jane", staff.FirstName)
	assert.Equal(t, "Doe", staff.SecondName)
	assert.Equal(t, "hash", staff.Password)
	assert.Equal(t, "jane@example.com", staff.Email)
	assert.Equal(t, "0771234567", staff.ContactNo)
	assert.Equal(t, "12 Harbour Rd", staff.Address)
	assert.Equal(t, "Galle", staff.City)
	assert.Equal(t, "Harbour Rd", staff.Street)
	assert.Equal(t, "80000", staff.PostalCode)
	assert.Equal(t, "2024-02-01", staff.HireDate)
}

func TestWithRoleDropsFieldsTheTargetShapeLacks(t *testing.T) {
	support := User{
		ID:             3,
		FirstName:      "Sam",
		Department:     "Infrastructure",
		Specialization: "Reef tours",
		Role:           types.ROLE_IT_SUPPORT,
	}

	guide := support.WithRole(types.ROLE_GUIDE)
	assert.Equal(t, types.ROLE_GUIDE, guide.Role)
	assert.Empty(t, guide.Department)
	assert.Equal(t, "Reef tours", guide.Specialization)

	customer := support.WithRole(types.ROLE_CUSTOMER)
	assert.Empty(t, customer.Department)
	assert.Empty(t, customer.Specialization)

	assistant := support.WithRole(types.ROLE_IT_ASSISTANT)
	assert.Equal(t, "Infrastructure", assistant.Department)
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Jane Doe", User{FirstName: "Jane", SecondName: "Doe"}.FullName())
	assert.Equal(t, "Jane", User{FirstName: "Jane"}.FullName())
}
