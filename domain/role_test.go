package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRole_Ordering(t *testing.T) {
	req := require.New(t)

	// The ladder is total over the three roles.
	req.True(RoleAdmin.AtLeast(RoleUser))
	req.True(RoleAdmin.AtLeast(RoleUnregistered))
	req.True(RoleUser.AtLeast(RoleUnregistered))
	req.True(RoleUser.AtLeast(RoleUser))

	req.False(RoleUnregistered.AtLeast(RoleUser))
	req.False(RoleUser.AtLeast(RoleAdmin))

	// Unknown roles satisfy nothing and are satisfied by nothing.
	req.False(Role("SUPERUSER").AtLeast(RoleUnregistered))
	req.False(RoleAdmin.AtLeast(Role("SUPERUSER")))
}

func TestRole_Valid(t *testing.T) {
	req := require.New(t)
	for _, r := range Roles {
		req.True(r.Valid(), "role %q", r)
	}
	req.False(Role("").Valid())
	req.False(Role("admin").Valid())
}
