package license

import (
	"fmt"
	"strings"
)

// InvalidIdentifierError reports a construction attempt with an
// identifier the source does not know. Valid carries the sorted set of
// accepted identifiers for user-facing display.
type InvalidIdentifierError struct {
	Identifier string
	Valid      []string
}

func (e *InvalidIdentifierError) Error() string {
	if len(e.Valid) == 0 {
		return fmt.Sprintf("license: invalid identifier %q", e.Identifier)
	}
	return fmt.Sprintf("license: invalid identifier %q, available licenses: %s", e.Identifier, strings.Join(e.Valid, ", "))
}
