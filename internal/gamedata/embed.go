// Package gamedata provides embedded sprite and level data and utilities for loading it.
package gamedata

import "embed"

// dataFS embeds sprites.json and levels.json at build time.
//
//go:embed *.json
var dataFS embed.FS
