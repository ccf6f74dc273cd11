// Package migrations embeds the forward/backward schema scripts applied by
// goose at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
