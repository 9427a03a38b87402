package templates

import (
	"embed"
	"io/fs"
)

//go:embed data/*.template
var embedded embed.FS

// FS exposes the bundled license corpus rooted at the template files,
// ready to hand to store.New.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// Should never happen; fall back to the raw FS so the bundle
		// remains reachable.
		return embedded
	}
	return sub
}
