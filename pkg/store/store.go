package store

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// templateExtensions lists the file suffixes recognized as license
// templates when scanning a corpus.
var templateExtensions = []string{".template", ".txt"}

// Store maps SPDX identifiers to template files inside a corpus
// filesystem. It is built once by New and read-only afterwards, so a
// single store can back any number of license instances.
type Store struct {
	fsys  fs.FS
	paths map[string]string
	ids   []string
}

// New scans the root of fsys for template files and indexes them by
// base name without extension. The identifier set is fixed for the
// lifetime of the store; identifiers are case-sensitive.
func New(fsys fs.FS) (*Store, error) {
	if fsys == nil {
		return nil, errors.New("store: filesystem is required")
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("store: scan templates: %w", err)
	}

	paths := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := path.Ext(name)
		if !isTemplateExt(ext) {
			continue
		}
		stem := strings.TrimSuffix(name, ext)
		if stem == "" {
			continue
		}
		if prev, ok := paths[stem]; ok {
			return nil, fmt.Errorf("store: duplicate identifier %q (%s and %s)", stem, prev, name)
		}
		paths[stem] = name
	}

	ids := make([]string, 0, len(paths))
	for id := range paths {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return &Store{fsys: fsys, paths: paths, ids: ids}, nil
}

// Identifiers returns every known identifier in lexicographic order.
// The returned slice is a copy and safe for the caller to mutate.
func (s *Store) Identifiers() []string {
	return append([]string(nil), s.ids...)
}

// Has reports whether identifier names a template in the store.
func (s *Store) Has(identifier string) bool {
	_, ok := s.paths[identifier]
	return ok
}

// Load returns the raw UTF-8 text of the named template. Unknown
// identifiers fail with *NotFoundError; a known identifier whose
// backing file cannot be read reports a wrapped read error instead,
// since that means the install itself is broken.
func (s *Store) Load(identifier string) (string, error) {
	name, ok := s.paths[identifier]
	if !ok {
		return "", &NotFoundError{Identifier: identifier, Known: s.Identifiers()}
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return "", fmt.Errorf("store: read template %s: %w", name, err)
	}
	return string(data), nil
}

// Complete returns the identifiers starting with prefix, sorted. An
// empty prefix yields the full set.
func (s *Store) Complete(prefix string) []string {
	matches := make([]string, 0, len(s.ids))
	for _, id := range s.ids {
		if strings.HasPrefix(id, prefix) {
			matches = append(matches, id)
		}
	}
	return matches
}

func isTemplateExt(ext string) bool {
	for _, known := range templateExtensions {
		if ext == known {
			return true
		}
	}
	return false
}
