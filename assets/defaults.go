// Package assets embeds default files materialized on first run.
package assets

import (
	_ "embed"
)

// DefaultReadmeTemplate contains the embedded starter documentation template.
//
//go:embed defaults/project-readme.md
var DefaultReadmeTemplate []byte
