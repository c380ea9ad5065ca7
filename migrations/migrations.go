// Package migrations embebe los scripts SQL para que el binario pueda
// migrar su esquema sin archivos externos.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
