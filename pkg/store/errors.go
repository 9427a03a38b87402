package store

import (
	"fmt"
	"strings"
)

// NotFoundError reports a lookup for an identifier the store does not
// know about. Known carries the full sorted identifier set so callers
// can show users what would have been accepted.
type NotFoundError struct {
	Identifier string
	Known      []string
}

func (e *NotFoundError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("store: unknown license %q", e.Identifier)
	}
	return fmt.Sprintf("store: unknown license %q (known: %s)", e.Identifier, strings.Join(e.Known, ", "))
}
