package api

import "strings"

// EventName tags an SSE payload kind. The values are wire identifiers shared
// with every connected client.
type EventName string

const (
	MessageEvent EventName = "MESSAGE_EVENT"
	UserEvent    EventName = "USER_EVENT"
	MultiEvent   EventName = "MULTI_EVENT"
)

// Valid reports whether n is one of the three supported event names.
func (n EventName) Valid() bool {
	switch n {
	case MessageEvent, UserEvent, MultiEvent:
		return true
	}
	return false
}

// Frame is the text format of one server-sent event. Rendering is defined
// here; writing the frame to a connection is the transport's job.
type Frame struct {
	Event EventName
	Data  string
	ID    string // optional last-event id
}

// String renders the frame as SSE text. Multi-line data is split into one
// "data:" line per line, as the SSE format requires.
func (f Frame) String() string {
	var b strings.Builder
	if f.ID != "" {
		b.WriteString("id: ")
		b.WriteString(f.ID)
		b.WriteByte('\n')
	}
	b.WriteString("event: ")
	b.WriteString(string(f.Event))
	b.WriteByte('\n')
	for _, line := range strings.Split(f.Data, "\n") {
		b.WriteString("data: ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}
