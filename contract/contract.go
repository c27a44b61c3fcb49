//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"chat-contracts/domain"
	"chat-contracts/dto"
)

// EventPusher is the push-delivery collaborator. It receives a validated
// dispatch batch and resolves targetId / targetRoles / broadcast into open
// SSE connections. Delivery mechanics are entirely its problem.
type EventPusher interface {
	Push(ctx context.Context, batch dto.DispatchRequest) error
}

// TokenIssuer mints the access token embedded in auth responses. The
// refresh token never appears in a response body, so it is returned
// separately for the transport to set as a cookie.
type TokenIssuer interface {
	Issue(ctx context.Context, user domain.User) (access, refresh string, err error)
}

// MessageResolver picks which of the two message view shapes a caller gets.
// The role decision lives behind this interface, never in the schemas.
type MessageResolver interface {
	Resolve(ctx context.Context, viewer domain.Role, messages []domain.Message) ([]dto.MessageView, error)
}
