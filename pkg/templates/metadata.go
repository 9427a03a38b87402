package templates

// SPDXCommit is the short commit of the spdx/license-list-data
// snapshot the bundled corpus was generated from.
const SPDXCommit = "e5dcb29"

const moduleVersion = "0.1.0"

// Version reports the module version together with the SPDX snapshot,
// formatted like "0.1.0+spdx.e5dcb29".
func Version() string {
	return moduleVersion + "+spdx." + SPDXCommit
}
