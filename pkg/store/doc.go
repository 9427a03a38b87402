// Package store resolves SPDX license identifiers to raw template
// text. A store is built once over an fs.FS and immutable afterwards.
package store
