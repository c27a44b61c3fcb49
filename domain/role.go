// Package domain contains the value shapes shared by every chat contract.
// All types here are immutable values constructed from validated input.
// No runtime, network, or UI logic should be added here.
package domain

// Role is the ordered privilege level of a user. The labels are stable wire
// values; the ordering is the deployment's privilege ladder.
type Role string

const (
	RoleUnregistered Role = "UNREGISTERED"
	RoleUser         Role = "USER"
	RoleAdmin        Role = "ADMIN"
)

// Roles lists every role, lowest privilege first.
var Roles = []Role{RoleUnregistered, RoleUser, RoleAdmin}

var roleRank = map[Role]int{
	RoleUnregistered: 0,
	RoleUser:         1,
	RoleAdmin:        2,
}

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r grants at least the privilege of other.
// Unknown roles never satisfy any requirement.
func (r Role) AtLeast(other Role) bool {
	rr, ok := roleRank[r]
	or, ok2 := roleRank[other]
	return ok && ok2 && rr >= or
}
