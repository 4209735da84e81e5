// Package docs bundles the long-form Markdown documentation into the
// mdq binary.
package docs

import "embed"

//go:embed guide reference
var FS embed.FS
