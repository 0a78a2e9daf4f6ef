// Package migrations embeds the HIU schema migration files so tooling can
// apply them without access to the source tree.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
