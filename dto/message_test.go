package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chat-contracts/domain"
)

func TestCreateMessageRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		message string
		wantOK  bool
	}{
		{"plain", "hello there", true},
		{"exactly 2000", strings.Repeat("a", 2000), true},
		{"2001", strings.Repeat("a", 2001), false},
		{"empty", "", false},
		{"all whitespace", strings.Repeat(" ", 500), false},
		{"whitespace padding trimmed before counting", " " + strings.Repeat("a", 2000) + " ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			err := CreateMessageRequest{Message: tt.message}.Validate()
			if tt.wantOK {
				req.NoError(err)
			} else {
				req.Error(err)
			}
		})
	}
}

func TestEditMessageRequest_RequiresRouteID(t *testing.T) {
	req := require.New(t)

	req.NoError(EditMessageRequest{MessageID: 7, Message: "updated"}.Validate())
	req.Error(EditMessageRequest{Message: "updated"}.Validate())
	req.Error(EditMessageRequest{MessageID: 7, Message: "  "}.Validate())
}

func TestParseMessageID(t *testing.T) {
	req := require.New(t)

	id, err := ParseMessageID("42")
	req.NoError(err)
	req.Equal(int64(42), id)

	id, err = ParseMessageID(" 42 ")
	req.NoError(err)
	req.Equal(int64(42), id)

	for _, raw := range []string{"", "abc", "-1", "0", "4.2"} {
		_, err := ParseMessageID(raw)
		req.Error(err, "raw=%q", raw)
	}
}

func TestMessageViews_AuthorSuppression(t *testing.T) {
	req := require.New(t)
	at := time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)

	author := &domain.User{ID: 1, Username: "alice", Firstname: "Alice", Role: domain.RoleUser}
	full := MessageWithAuthor{MessageID: 9, Message: "hi", User: author, Likes: 2, Timestamp: at}
	hidden := MessageWithoutAuthor{MessageID: 9, Message: "hi", Likes: 2, Timestamp: at}

	// Both arms belong to the same sealed union.
	views := []MessageView{full, hidden}
	req.Len(views, 2)

	// The hidden shape never serializes a user field.
	raw, err := json.Marshal(hidden)
	req.NoError(err)
	req.NotContains(string(raw), `"user"`)

	raw, err = json.Marshal(full)
	req.NoError(err)
	req.Contains(string(raw), `"user"`)
}

func TestMessageWithAuthor_AnonymousAuthorIsNull(t *testing.T) {
	req := require.New(t)
	raw, err := json.Marshal(MessageWithAuthor{MessageID: 1, Message: "anon"})
	req.NoError(err)
	req.Contains(string(raw), `"user":null`)
}
