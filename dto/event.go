package dto

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"

	"chat-contracts/api"
	"chat-contracts/domain"
	"chat-contracts/validation"
)

// Reason is the closed set of causes an event can announce.
type Reason string

const (
	ReasonMessageCreated Reason = "MESSAGE_CREATED"
	ReasonMessageEdited  Reason = "MESSAGE_EDITED"
	ReasonMessageDeleted Reason = "MESSAGE_DELETED"
	ReasonMessageLiked   Reason = "MESSAGE_LIKED"
	ReasonUserJoined     Reason = "USER_JOINED"
	ReasonUserUpdated    Reason = "USER_UPDATED"
	ReasonUserDeleted    Reason = "USER_DELETED"
	ReasonRoleChanged    Reason = "ROLE_CHANGED"
)

var reasons = map[Reason]struct{}{
	ReasonMessageCreated: {},
	ReasonMessageEdited:  {},
	ReasonMessageDeleted: {},
	ReasonMessageLiked:   {},
	ReasonUserJoined:     {},
	ReasonUserUpdated:    {},
	ReasonUserDeleted:    {},
	ReasonRoleChanged:    {},
}

// Valid reports whether r belongs to the closed reason set.
func (r Reason) Valid() bool {
	_, ok := reasons[r]
	return ok
}

// TransmissionType selects how an event is delivered: to one connection, to
// every holder of the listed roles, or to everyone.
type TransmissionType string

const (
	Unicast   TransmissionType = "unicast"
	Multicast TransmissionType = "multicast"
	Broadcast TransmissionType = "broadcast"
)

// EventPayload is the sealed union of the three payload kinds. The event
// name tag on the spec decides which concrete type is required.
type EventPayload interface {
	isEventPayload()
}

// UserEventPayload announces a change to a single user.
type UserEventPayload struct {
	Reason   Reason `json:"reason"`
	OriginID int64  `json:"originId"`
}

// MessageEventPayload announces a change to a message. Structurally the
// same as UserEventPayload, kept distinct so the event-name tag genuinely
// selects a branch type.
type MessageEventPayload struct {
	Reason   Reason `json:"reason"`
	OriginID int64  `json:"originId"`
}

// MultiEventPayload announces a cross-entity change, e.g. a role change
// that both the acting admin and the affected user must see. Target fields
// are optional.
type MultiEventPayload struct {
	Reason     Reason       `json:"reason"`
	OriginID   int64        `json:"originId"`
	TargetID   *int64       `json:"targetId,omitempty"`
	TargetRole *domain.Role `json:"targetRole,omitempty"`
}

func (UserEventPayload) isEventPayload()    {}
func (MessageEventPayload) isEventPayload() {}
func (MultiEventPayload) isEventPayload()   {}

// EventSpec is one deliverable event: the conjunction of an event-kind
// branch (EventName decides the payload type) and a delivery-mode branch
// (TransmissionType decides the target fields). Both branches must hold at
// once; a valid payload with a broken delivery mode fails as a whole.
type EventSpec struct {
	EventName        api.EventName    `json:"eventName"`
	Payload          EventPayload     `json:"payload"`
	TransmissionType TransmissionType `json:"transmissionType"`
	TargetID         *int64           `json:"targetId,omitempty"`
	TargetRoles      []domain.Role    `json:"targetRoles,omitempty"`
}

// eventSpecWire defers payload decoding until the event name is known.
type eventSpecWire struct {
	EventName        api.EventName    `json:"eventName"`
	Payload          json.RawMessage  `json:"payload"`
	TransmissionType TransmissionType `json:"transmissionType"`
	TargetID         *int64           `json:"targetId,omitempty"`
	TargetRoles      []domain.Role    `json:"targetRoles,omitempty"`
}

// UnmarshalJSON decodes the payload according to the event-name tag. An
// unknown name leaves the payload nil and is reported by Validate, so a bad
// entry surfaces with its array index instead of aborting the whole batch
// decode.
func (e *EventSpec) UnmarshalJSON(data []byte) error {
	var w eventSpecWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	e.EventName = w.EventName
	e.TransmissionType = w.TransmissionType
	e.TargetID = w.TargetID
	e.TargetRoles = w.TargetRoles
	e.Payload = nil
	if len(w.Payload) == 0 || string(w.Payload) == "null" {
		return nil
	}
	switch w.EventName {
	case api.UserEvent:
		var p UserEventPayload
		if err := json.Unmarshal(w.Payload, &p); err != nil {
			return err
		}
		e.Payload = p
	case api.MessageEvent:
		var p MessageEventPayload
		if err := json.Unmarshal(w.Payload, &p); err != nil {
			return err
		}
		e.Payload = p
	case api.MultiEvent:
		var p MultiEventPayload
		if err := json.Unmarshal(w.Payload, &p); err != nil {
			return err
		}
		e.Payload = p
	}
	return nil
}

// Validate checks both branches of the spec. Issues from the two branches
// accumulate; neither short-circuits the other.
func (e EventSpec) Validate() validation.Issues {
	issues := e.validateKind()
	return append(issues, e.validateDelivery()...)
}

func (e EventSpec) validateKind() validation.Issues {
	var issues validation.Issues
	if !e.EventName.Valid() {
		issues.Add("eventName", "must be one of MESSAGE_EVENT, USER_EVENT, MULTI_EVENT")
		return issues
	}
	switch p := e.Payload.(type) {
	case UserEventPayload:
		if e.EventName != api.UserEvent {
			issues.Add("payload", "does not match the event name")
			break
		}
		issues = append(issues, validatePayloadCommon(p.Reason, p.OriginID)...)
	case MessageEventPayload:
		if e.EventName != api.MessageEvent {
			issues.Add("payload", "does not match the event name")
			break
		}
		issues = append(issues, validatePayloadCommon(p.Reason, p.OriginID)...)
	case MultiEventPayload:
		if e.EventName != api.MultiEvent {
			issues.Add("payload", "does not match the event name")
			break
		}
		issues = append(issues, validatePayloadCommon(p.Reason, p.OriginID)...)
		if p.TargetRole != nil && !p.TargetRole.Valid() {
			issues.Add("payload.targetRole", "must be a known role")
		}
	case nil:
		issues.Add("payload", "is required")
	default:
		issues.Add("payload", "does not match the event name")
	}
	return issues
}

func validatePayloadCommon(reason Reason, originID int64) validation.Issues {
	var issues validation.Issues
	if !reason.Valid() {
		issues.Add("payload.reason", "must be a known event reason")
	}
	if originID <= 0 {
		issues.Add("payload.originId", "must identify the acting user")
	}
	return issues
}

func (e EventSpec) validateDelivery() validation.Issues {
	var issues validation.Issues
	switch e.TransmissionType {
	case Unicast:
		if e.TargetID == nil {
			issues.Add("targetId", "is required for unicast delivery")
		} else if *e.TargetID <= 0 {
			issues.Add("targetId", "must be a positive id")
		}
		if len(e.TargetRoles) > 0 {
			issues.Add("targetRoles", "is not allowed for unicast delivery")
		}
	case Multicast:
		if len(e.TargetRoles) == 0 {
			issues.Add("targetRoles", "is required for multicast delivery")
		} else if !lo.EveryBy(e.TargetRoles, func(r domain.Role) bool { return r.Valid() }) {
			issues.Add("targetRoles", "must contain only known roles")
		}
		if e.TargetID != nil {
			issues.Add("targetId", "is not allowed for multicast delivery")
		}
	case Broadcast:
		if e.TargetID != nil {
			issues.Add("targetId", "is not allowed for broadcast delivery")
		}
		if len(e.TargetRoles) > 0 {
			issues.Add("targetRoles", "is not allowed for broadcast delivery")
		}
	default:
		issues.Add("transmissionType", "must be one of unicast, multicast, broadcast")
	}
	return issues
}

// DispatchRequest asks the push layer to deliver a batch of events. An
// empty batch is a valid no-op, and entries validate independently: one bad
// entry reports its own index without touching its neighbours.
type DispatchRequest struct {
	Events []EventSpec `json:"events"`
}

func (r DispatchRequest) Validate() error {
	var issues validation.Issues
	for i, e := range r.Events {
		issues = append(issues, e.Validate().Prefix(fmt.Sprintf("events[%d]", i))...)
	}
	return issues.AsError()
}

// NewUserEvent builds a USER_EVENT spec without a delivery mode; chain one
// of ToUser, ToRoles or ToAll.
func NewUserEvent(reason Reason, originID int64) EventSpec {
	return EventSpec{
		EventName: api.UserEvent,
		Payload:   UserEventPayload{Reason: reason, OriginID: originID},
	}
}

// NewMessageEvent builds a MESSAGE_EVENT spec without a delivery mode.
func NewMessageEvent(reason Reason, originID int64) EventSpec {
	return EventSpec{
		EventName: api.MessageEvent,
		Payload:   MessageEventPayload{Reason: reason, OriginID: originID},
	}
}

// NewMultiEvent builds a MULTI_EVENT spec without a delivery mode.
func NewMultiEvent(reason Reason, originID int64, targetID *int64, targetRole *domain.Role) EventSpec {
	return EventSpec{
		EventName: api.MultiEvent,
		Payload: MultiEventPayload{
			Reason:     reason,
			OriginID:   originID,
			TargetID:   targetID,
			TargetRole: targetRole,
		},
	}
}

// ToUser returns a copy delivered unicast to one connection owner.
func (e EventSpec) ToUser(targetID int64) EventSpec {
	e.TransmissionType = Unicast
	e.TargetID = lo.ToPtr(targetID)
	e.TargetRoles = nil
	return e
}

// ToRoles returns a copy delivered multicast to every holder of the roles.
func (e EventSpec) ToRoles(roles ...domain.Role) EventSpec {
	e.TransmissionType = Multicast
	e.TargetID = nil
	e.TargetRoles = roles
	return e
}

// ToAll returns a copy delivered broadcast to every connected client.
func (e EventSpec) ToAll() EventSpec {
	e.TransmissionType = Broadcast
	e.TargetID = nil
	e.TargetRoles = nil
	return e
}
