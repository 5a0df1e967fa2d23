package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"CUSTOMER", "STAFF", "GUIDE", "IT_SUPPORT", "IT_ASSISTANT", "ADMIN", "CAPTAIN"} {
		role, ok := ParseRole(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, Role(valid), role)
	}

	role, ok := ParseRole("  captain ")
	assert.True(t, ok)
	assert.Equal(t, ROLE_CAPTAIN, role)

	for _, invalid := range []string{"", "WIZARD", "SUPERADMIN", "customer_x"} {
		_, ok := ParseRole(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestRoleOneOf(t *testing.T) {
	assert.True(t, ROLE_ADMIN.OneOf(StaffRoles...))
	assert.True(t, ROLE_CAPTAIN.OneOf(GuideRoles...))
	assert.False(t, ROLE_CUSTOMER.OneOf(StaffRoles...))
	assert.False(t, ROLE_GUIDE.OneOf(SupportRoles...))
	assert.False(t, ROLE_STAFF.OneOf())
}
