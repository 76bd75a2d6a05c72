// Package stdlib embeds the prelude loaded at interpreter startup (§6:
// "a single file whose path is passed to load at startup").
package stdlib

import _ "embed"

//go:embed prelude.lspy
var Prelude string
