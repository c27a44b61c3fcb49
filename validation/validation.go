// Package validation holds the field validators shared by every request
// contract: the issue model, the struct-tag engine, and the composite
// checks (password strength, avatar files) that tags cannot express.
//
// Everything here is pure: same input, same issues, no I/O. A failed
// validation is data, never a panic.
package validation

import "strings"

// Issue is one violated rule, addressed by the json path of the field.
// Fatal marks an issue that stops further refinement of the same field
// (only the avatar size check uses it today).
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Fatal   bool   `json:"-"`
}

// Issues is the complete list of violations found in one validation pass.
// A nil or empty list means the value is valid.
type Issues []Issue

// Error joins every issue on its own line so the list reads as a report.
func (is Issues) Error() string {
	lines := make([]string, 0, len(is))
	for _, issue := range is {
		if issue.Path == "" {
			lines = append(lines, issue.Message)
			continue
		}
		lines = append(lines, issue.Path+": "+issue.Message)
	}
	return strings.Join(lines, "\n")
}

// Add appends a non-fatal issue.
func (is *Issues) Add(path, message string) {
	*is = append(*is, Issue{Path: path, Message: message})
}

// Prefix returns a copy with every path nested under p. An empty path
// becomes p itself; "body" becomes "p.body". Used for array entries, e.g.
// events[2].targetId.
func (is Issues) Prefix(p string) Issues {
	if len(is) == 0 {
		return nil
	}
	out := make(Issues, len(is))
	for i, issue := range is {
		if issue.Path != "" {
			issue.Path = p + "." + issue.Path
		} else {
			issue.Path = p
		}
		out[i] = issue
	}
	return out
}

// AsError returns the list as an error, or nil when there is nothing to
// report. Callers must not return a typed nil Issues as error directly.
func (is Issues) AsError() error {
	if len(is) == 0 {
		return nil
	}
	return is
}
