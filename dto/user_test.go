package dto

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"chat-contracts/domain"
	"chat-contracts/validation"
)

func TestEditUserRequest_AtLeastOneField(t *testing.T) {
	tests := []struct {
		name   string
		r      EditUserRequest
		wantOK bool
	}{
		{"nothing set", EditUserRequest{}, false},
		{"firstname only", EditUserRequest{Firstname: lo.ToPtr("Alice")}, true},
		{"lastname only", EditUserRequest{Lastname: lo.ToPtr("Dupont")}, true},
		{"avatar only", EditUserRequest{Avatar: lo.ToPtr("https://cdn.example.com/a.png")}, true},
		{"remove avatar only", EditUserRequest{RemoveAvatar: true}, true},
		{"blank optional middlename counts as present", EditUserRequest{Middlename: lo.ToPtr("")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			err := tt.r.Validate()
			if tt.wantOK {
				req.NoError(err)
			} else {
				req.Error(err)
			}
		})
	}
}

func TestEditUserRequest_RefinementRunsAfterFieldChecks(t *testing.T) {
	req := require.New(t)

	// A bad field must surface as a field issue, not as the cross-field one.
	err := EditUserRequest{Firstname: lo.ToPtr("Alice2")}.Validate()
	req.Error(err)

	var issues validation.Issues
	req.ErrorAs(err, &issues)
	req.Len(issues, 1)
	req.Equal("firstname", issues[0].Path)
	req.Equal(validation.MsgNameInvalid, issues[0].Message)
}

func TestEditUserRequest_BlankedFirstnameRejected(t *testing.T) {
	req := require.New(t)
	// Firstname is required on the user, so an edit cannot blank it.
	req.Error(EditUserRequest{Firstname: lo.ToPtr("")}.Validate())
}

func TestRoleChangeRequest_Validate(t *testing.T) {
	req := require.New(t)

	req.NoError(RoleChangeRequest{Role: domain.RoleAdmin}.Validate())
	req.NoError(RoleChangeRequest{Role: domain.RoleUser}.Validate())
	req.Error(RoleChangeRequest{Role: "SUPERUSER"}.Validate())
	req.Error(RoleChangeRequest{}.Validate())
}

func TestElevationRequest_Validate(t *testing.T) {
	req := require.New(t)
	req.NoError(ElevationRequest{SecretKey: "s3cret"}.Validate())
	req.Error(ElevationRequest{}.Validate())
}
