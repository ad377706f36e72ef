package models

import "strings"

// Role identifies which account table a user lives in.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// Roles lists every supported role in display order.
var Roles = []Role{RoleStudent, RoleTeacher, RoleAdmin}

// ParseRole maps user input onto a Role. Matching is case-insensitive.
func ParseRole(raw string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(raw)))
	return r, r.Valid()
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// IDPrefix is the prefix of generated sequential ids, e.g. "student" in "student007".
func (r Role) IDPrefix() string {
	return string(r)
}
