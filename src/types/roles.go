package types

import "strings"

// Role is the discriminator tag for the single Users table. A user is
// exactly one of these at a time; reassignment swaps the tag while the
// record identity stays put.
type Role string

const (
	ROLE_CUSTOMER     Role = "CUSTOMER"
	ROLE_STAFF        Role = "STAFF"
	ROLE_GUIDE        Role = "GUIDE"
	ROLE_IT_SUPPORT   Role = "IT_SUPPORT"
	ROLE_IT_ASSISTANT Role = "IT_ASSISTANT"
	ROLE_ADMIN        Role = "ADMIN"
	ROLE_CAPTAIN      Role = "CAPTAIN"
)

var allRoles = []Role{
	ROLE_CUSTOMER,
	ROLE_STAFF,
	ROLE_GUIDE,
	ROLE_IT_SUPPORT,
	ROLE_IT_ASSISTANT,
	ROLE_ADMIN,
	ROLE_CAPTAIN,
}

// ParseRole maps a request value onto the closed role set.
func ParseRole(value string) (Role, bool) {
	candidate := Role(strings.ToUpper(strings.TrimSpace(value)))
	for _, r := range allRoles {
		if r == candidate {
			return r, true
		}
	}
	return "", false
}

func (r Role) OneOf(roles ...Role) bool {
	for _, candidate := range roles {
		if r == candidate {
			return true
		}
	}
	return false
}

// StaffRoles are the roles allowed into the staff dashboard area.
var StaffRoles = []Role{ROLE_ADMIN, ROLE_STAFF, ROLE_GUIDE, ROLE_IT_SUPPORT, ROLE_IT_ASSISTANT, ROLE_CAPTAIN}

// SupportRoles may manage support tickets.
var SupportRoles = []Role{ROLE_ADMIN, ROLE_IT_SUPPORT, ROLE_IT_ASSISTANT}

// GuideRoles may record passenger check-ins.
var GuideRoles = []Role{ROLE_ADMIN, ROLE_GUIDE, ROLE_CAPTAIN}
