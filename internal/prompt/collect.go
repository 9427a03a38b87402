// Package prompt drives the interactive variable-collection session
// for a license instance. The substitution contract lives with the
// caller: a blank answer leaves the %%name%% marker in the output, the
// EmptySentinel answer removes it.
package prompt

import (
	"context"
	"fmt"
	"strings"
)

// EmptySentinel is the literal answer that applies an empty value,
// removing the marker from the output entirely. A blank answer leaves
// the marker untouched instead.
const EmptySentinel = "[empty]"

// Filler is the subset of a license instance Collect drives.
type Filler interface {
	Variables() ([]string, error)
	Apply(name, value string) error
}

// Collect prompts for every template variable and applies the answers.
// Names present in preset are applied without prompting. It returns
// the names that were skipped, in prompt order, so the caller can
// report them.
func Collect(ctx context.Context, drv Driver, lic Filler, preset map[string]string) ([]string, error) {
	names, err := lic.Variables()
	if err != nil {
		return nil, err
	}

	var skipped []string
	for _, name := range names {
		if value, ok := preset[name]; ok {
			if err := lic.Apply(name, value); err != nil {
				return nil, err
			}
			continue
		}

		answer, err := drv.Input(ctx, InputConfig{
			Message: fmt.Sprintf("Value for %s", name),
			Help:    fmt.Sprintf("Leave blank to keep the %%%%%s%%%% marker, answer %s to remove it", name, EmptySentinel),
		})
		if err != nil {
			return nil, err
		}

		answer = strings.TrimSpace(answer)
		if answer == "" {
			skipped = append(skipped, name)
			continue
		}
		if answer == EmptySentinel {
			answer = ""
		}
		if err := lic.Apply(name, answer); err != nil {
			return nil, err
		}
	}

	return skipped, nil
}
