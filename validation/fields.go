package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Grammars of the shared text fields. Usernames are ASCII word characters
// only; the character class already excludes every kind of whitespace.
// Person names are Unicode letter runs, optionally hyphen-joined.
var (
	usernameRe   = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	personNameRe = regexp.MustCompile(`^\p{L}+(-\p{L}+)*$`)
)

// User-facing messages. The empty-value and bad-format cases are distinct
// on purpose: clients show different hints for each.
const (
	MsgUsernameRequired = "username is required"
	MsgUsernameInvalid  = "username may only contain letters, digits, and underscores"
	MsgNameRequired     = "name is required"
	MsgNameInvalid      = "name may only contain letters, optionally joined by hyphens"
	MsgBodyRequired     = "message cannot be empty"
	MsgBodyTooLong      = "message cannot exceed 2000 characters"
)

// MaxMessageRunes bounds a message body after trimming.
const MaxMessageRunes = 2000

// Username validates the shared username rule: trimmed, non-empty, word
// characters only.
func Username(path, value string) Issues {
	v := strings.TrimSpace(value)
	if v == "" {
		return Issues{{Path: path, Message: MsgUsernameRequired}}
	}
	if !usernameRe.MatchString(v) {
		return Issues{{Path: path, Message: MsgUsernameInvalid}}
	}
	return nil
}

// PersonName validates a first/middle/last name. A blank value is an error
// only for required fields; optional name fields may be present and empty.
func PersonName(path, value string, required bool) Issues {
	v := strings.TrimSpace(value)
	if v == "" {
		if required {
			return Issues{{Path: path, Message: MsgNameRequired}}
		}
		return nil
	}
	if !personNameRe.MatchString(v) {
		return Issues{{Path: path, Message: MsgNameInvalid}}
	}
	return nil
}

// MessageBody validates a chat message body: 1 to MaxMessageRunes runes
// after trimming. All-whitespace bodies are empty.
func MessageBody(path, value string) Issues {
	v := strings.TrimSpace(value)
	if v == "" {
		return Issues{{Path: path, Message: MsgBodyRequired}}
	}
	if utf8.RuneCountInString(v) > MaxMessageRunes {
		return Issues{{Path: path, Message: MsgBodyTooLong}}
	}
	return nil
}

// NonEmpty is the loose rule used by login: trimmed and non-empty, nothing
// more. Login deliberately skips the format and strength rules so a failed
// attempt never reveals which rule a legacy credential would break.
func NonEmpty(path, value, message string) Issues {
	if strings.TrimSpace(value) == "" {
		return Issues{{Path: path, Message: message}}
	}
	return nil
}
