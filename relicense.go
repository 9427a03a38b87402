package relicense

import (
	"sync"

	"github.com/noaione/relicense/pkg/license"
	"github.com/noaione/relicense/pkg/store"
	"github.com/noaione/relicense/pkg/templates"
)

var (
	defaultOnce  sync.Once
	defaultStore *store.Store
	defaultErr   error
)

// DefaultStore returns the store over the embedded template corpus.
// It is built on first use and shared by all callers afterwards.
func DefaultStore() (*store.Store, error) {
	defaultOnce.Do(func() {
		defaultStore, defaultErr = store.New(templates.FS())
	})
	return defaultStore, defaultErr
}

// New constructs a license instance for the given SPDX identifier,
// backed by the default store. Unknown identifiers fail with
// *license.InvalidIdentifierError.
func New(identifier string) (*license.License, error) {
	s, err := DefaultStore()
	if err != nil {
		return nil, err
	}
	return license.New(identifier, s)
}

// Generate renders the named license with the supplied variable values
// in one call. Variables missing from vars keep their literal %%name%%
// markers; extra keys in vars are ignored.
func Generate(identifier string, vars map[string]string) (string, error) {
	lic, err := New(identifier)
	if err != nil {
		return "", err
	}

	names, err := lic.Variables()
	if err != nil {
		return "", err
	}
	for _, name := range names {
		value, ok := vars[name]
		if !ok {
			continue
		}
		if err := lic.Apply(name, value); err != nil {
			return "", err
		}
	}

	return lic.Render()
}

// Version reports the module version plus the SPDX snapshot the
// bundled corpus was generated from.
func Version() string {
	return templates.Version()
}
