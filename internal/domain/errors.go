package domain

import (
	"fmt"
	"strings"
)

// ValidationError reports malformed generation input. It is raised
// before any filesystem I/O, so no partial state exists when it fires.
type ValidationError struct {
	Reason string
	// Missing lists every absent required variable, not just the first.
	Missing []string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("missing required variables: %s", strings.Join(e.Missing, ", "))
	}
	return e.Reason
}
