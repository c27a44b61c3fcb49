// Package dto defines the request and response contracts of the chat API.
// Requests carry a Validate method that reports every violated rule as a
// validation.Issues list; responses are plain shapes the resolver fills in.
package dto

import (
	"github.com/golang-jwt/jwt/v5"

	"chat-contracts/validation"
)

// RegisterRequest is the account-creation intake. The password is validated
// here and only here; the DTO is never stored.
type RegisterRequest struct {
	Username   string  `json:"username"`
	Firstname  string  `json:"firstname"`
	Middlename *string `json:"middlename,omitempty" validate:"omitempty,personname"`
	Lastname   *string `json:"lastname,omitempty" validate:"omitempty,personname"`
	Password   string  `json:"password"`
	Avatar     *string `json:"avatar,omitempty" validate:"omitempty,url"`
}

// Validate mixes the two layers on purpose: the tag engine covers the
// optional fields, the primitives cover username, firstname and password,
// whose empty-versus-malformed distinction tags cannot express.
func (r RegisterRequest) Validate() error {
	issues := validation.Struct(r)
	issues = append(issues, validation.Username("username", r.Username)...)
	issues = append(issues, validation.PersonName("firstname", r.Firstname, true)...)
	issues = append(issues, validation.Password("password", r.Password)...)
	return issues.AsError()
}

// LoginRequest deliberately reuses none of the registration format rules:
// both fields only need to be present. A login failure must not reveal
// which composition rule a legacy password would violate today.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var issues validation.Issues
	issues = append(issues, validation.NonEmpty("username", r.Username, validation.MsgUsernameRequired)...)
	issues = append(issues, validation.NonEmpty("password", r.Password, "password is required")...)
	return issues.AsError()
}

// AuthResponse is the body of a successful register or login. The refresh
// token travels in an httpOnly cookie and is absent from the body on
// purpose.
type AuthResponse struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	Firstname   string  `json:"firstname"`
	Middlename  *string `json:"middlename,omitempty"`
	Lastname    *string `json:"lastname,omitempty"`
	Avatar      *string `json:"avatar,omitempty"`
	AccessToken string  `json:"accessToken"`
}

// RefreshResponse carries the re-issued access token.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// EventStreamQuery is the query contract for opening the SSE stream. The
// token is checked for JWT well-formedness only; signature and expiry are
// the auth layer's concern.
type EventStreamQuery struct {
	AccessToken string `json:"accessToken"`
}

var jwtParser = jwt.NewParser()

func (q EventStreamQuery) Validate() error {
	var issues validation.Issues
	if q.AccessToken == "" {
		issues.Add("accessToken", "is required")
		return issues.AsError()
	}
	if _, _, err := jwtParser.ParseUnverified(q.AccessToken, jwt.MapClaims{}); err != nil {
		issues.Add("accessToken", "must be a well-formed JWT")
	}
	return issues.AsError()
}
