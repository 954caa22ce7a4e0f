// Package site holds the embedded default content of the XYZ Company site:
// the page shell, page fragments, structured content records and public
// assets. An on-disk copy written by `xyzsite init` has the same layout.
package site

import "embed"

//go:embed layout.html content.yml pages partials public
var FS embed.FS
