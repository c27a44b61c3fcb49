package dto

import (
	"strconv"
	"strings"
	"time"

	"chat-contracts/domain"
	"chat-contracts/validation"
)

// CreateMessageRequest posts a new message. The body bound (1-2000 runes)
// applies after trimming.
type CreateMessageRequest struct {
	Message string `json:"message"`
}

func (r CreateMessageRequest) Validate() error {
	return validation.MessageBody("message", r.Message).AsError()
}

// Trimmed returns the body as it should be stored.
func (r CreateMessageRequest) Trimmed() string {
	return strings.TrimSpace(r.Message)
}

// EditMessageRequest rewrites an existing message. MessageID arrives as a
// route parameter, not a body field; use ParseMessageID to coerce it.
type EditMessageRequest struct {
	MessageID int64  `json:"-"`
	Message   string `json:"message"`
}

func (r EditMessageRequest) Validate() error {
	var issues validation.Issues
	if r.MessageID <= 0 {
		issues.Add("messageId", "must be a positive numeric id")
	}
	issues = append(issues, validation.MessageBody("message", r.Message)...)
	return issues.AsError()
}

// Trimmed returns the body as it should be stored.
func (r EditMessageRequest) Trimmed() string {
	return strings.TrimSpace(r.Message)
}

// ParseMessageID coerces the route parameter into a message id. The route
// value is the only place the API accepts a number as a string.
func ParseMessageID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		var issues validation.Issues
		issues.Add("messageId", "must be a positive numeric id")
		return 0, issues
	}
	return id, nil
}

// MessageView is the sealed union of the two message response shapes. Which
// shape a caller receives is the resolver's role decision; this layer only
// defines both arms.
type MessageView interface {
	isMessageView()
}

// MessageWithAuthor is the privileged shape: the full author is nested.
// User stays nil for anonymous guest messages.
type MessageWithAuthor struct {
	MessageID  int64        `json:"messageId"`
	Message    string       `json:"message"`
	User       *domain.User `json:"user"`
	Edited     bool         `json:"edited"`
	Liked      bool         `json:"liked"`
	Bookmarked bool         `json:"bookmarked"`
	Likes      int          `json:"likes"`
	Bookmarks  int          `json:"bookmarks"`
	Timestamp  time.Time    `json:"timestamp"`
}

// MessageWithoutAuthor is the same message with the author suppressed.
type MessageWithoutAuthor struct {
	MessageID  int64     `json:"messageId"`
	Message    string    `json:"message"`
	Edited     bool      `json:"edited"`
	Liked      bool      `json:"liked"`
	Bookmarked bool      `json:"bookmarked"`
	Likes      int       `json:"likes"`
	Bookmarks  int       `json:"bookmarks"`
	Timestamp  time.Time `json:"timestamp"`
}

func (MessageWithAuthor) isMessageView()    {}
func (MessageWithoutAuthor) isMessageView() {}
