package dto

import (
	"chat-contracts/domain"
	"chat-contracts/validation"
)

// EditUserRequest is a partial update: every field is optional, but an
// update that changes nothing is rejected. Avatar removal is requested by
// the explicit RemoveAvatar flag; a nil Avatar always means "unchanged",
// never "delete".
type EditUserRequest struct {
	Firstname    *string `json:"firstname,omitempty"`
	Middlename   *string `json:"middlename,omitempty" validate:"omitempty,personname"`
	Lastname     *string `json:"lastname,omitempty" validate:"omitempty,personname"`
	Avatar       *string `json:"avatar,omitempty" validate:"omitempty,url"`
	RemoveAvatar bool    `json:"removeAvatar,omitempty"`
}

func (r EditUserRequest) Validate() error {
	issues := validation.Struct(r)
	// Firstname stays a primitive check: it is required on the user, so an
	// edit may omit it but never blank it.
	if r.Firstname != nil {
		issues = append(issues, validation.PersonName("firstname", *r.Firstname, true)...)
	}
	if len(issues) > 0 {
		return issues
	}
	// Cross-field refinement, run only once every field passed.
	if r.Firstname == nil && r.Middlename == nil && r.Lastname == nil &&
		r.Avatar == nil && !r.RemoveAvatar {
		issues.Add("", "at least one field must be provided")
	}
	return issues.AsError()
}

// RoleChangeRequest assigns a new role to a user. Who may perform the
// change is the authorization layer's decision, not this one's.
type RoleChangeRequest struct {
	Role domain.Role `json:"role" validate:"required,role"`
}

func (r RoleChangeRequest) Validate() error {
	return validation.Struct(r).AsError()
}

// ElevationRequest trades a deployment secret for admin privileges.
type ElevationRequest struct {
	SecretKey string `json:"secretKey" validate:"required"`
}

func (r ElevationRequest) Validate() error {
	return validation.Struct(r).AsError()
}
