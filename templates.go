package relicense

import (
	"io/fs"

	"github.com/noaione/relicense/pkg/templates"
)

// TemplatesFS exposes the bundled license template corpus so callers
// can build their own stores or inspect the raw templates directly.
func TemplatesFS() fs.FS {
	return templates.FS()
}
