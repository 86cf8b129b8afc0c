// Package gamedata provides the map registry: static map records (layers,
// entity placements, walls and trigger scripts) embedded at build time or
// loaded from disk.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
