package license

import (
	"errors"
	"regexp"
	"sort"
	"strings"
)

// Source is the template lookup a License reads from. *store.Store
// satisfies it; tests can substitute counting stubs.
type Source interface {
	Has(identifier string) bool
	Identifiers() []string
	Load(identifier string) (string, error)
}

// markerPattern matches %%name%% placeholders. Markers never span
// lines and never nest.
var markerPattern = regexp.MustCompile(`%%(.*?)%%`)

// License is one in-progress license generation: an identifier plus a
// lazily loaded working copy of its template text. The identifier is
// validated once at construction and immutable afterwards.
type License struct {
	id     string
	src    Source
	text   string
	loaded bool
}

// New validates identifier against src and returns a license instance
// for it. This is the single validation gate; unknown identifiers fail
// with *InvalidIdentifierError and nothing downstream re-checks.
func New(identifier string, src Source) (*License, error) {
	if src == nil {
		return nil, errors.New("license: source is required")
	}
	if !src.Has(identifier) {
		return nil, &InvalidIdentifierError{Identifier: identifier, Valid: src.Identifiers()}
	}
	return &License{id: identifier, src: src}, nil
}

// ID returns the SPDX identifier this instance was built for.
func (l *License) ID() string {
	return l.id
}

// Read returns the template text, fetching it from the source on the
// first call and reusing the in-memory copy afterwards. Substitutions
// made by Apply are visible in subsequent reads.
func (l *License) Read() (string, error) {
	if !l.loaded {
		text, err := l.src.Load(l.id)
		if err != nil {
			return "", err
		}
		l.text = text
		l.loaded = true
	}
	return l.text, nil
}

// Variables returns the placeholder names found in the template,
// deduplicated and sorted so that prompting order is stable across
// templates and across calls. Names are trimmed of surrounding
// whitespace; a marker with an empty name is ignored.
func (l *License) Variables() ([]string, error) {
	text, err := l.Read()
	if err != nil {
		return nil, err
	}

	matches := markerPattern.FindAllStringSubmatch(text, -1)
	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Apply replaces every occurrence of the %%name%% marker with value.
// The replacement is an exact substring substitution: value is inert
// text and is never rescanned for markers. Names absent from the
// current text are a silent no-op so callers can apply values
// speculatively.
func (l *License) Apply(name, value string) error {
	if _, err := l.Read(); err != nil {
		return err
	}
	l.text = strings.ReplaceAll(l.text, "%%"+name+"%%", value)
	return nil
}

// Render produces the final output: trailing whitespace is stripped
// from every line and from the end of the whole document, while
// leading indentation is preserved. Render does not mutate the
// instance and is idempotent absent further Apply calls.
func (l *License) Render() (string, error) {
	text, err := l.Read()
	if err != nil {
		return "", err
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), " \t\r\n"), nil
}
