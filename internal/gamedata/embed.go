// Package gamedata provides the embedded monster roster and item lists.
package gamedata

import "embed"

// dataFS embeds the JSON data files at build time.
//
//go:embed monsters.json items.json
var dataFS embed.FS
