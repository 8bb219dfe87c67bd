// Package world provides the Digger board and level loading.
package world

import "github.com/samdwyer/digger/internal/entity"

// Tile is the level-file rune for one cell.
type Tile rune

const (
	// TileEmpty is a dug-out cell.
	TileEmpty Tile = ' '
	// TileEmptyAlt is accepted as empty so levels stay readable.
	TileEmptyAlt Tile = '.'
	TilePlayer   Tile = 'P'
	TileTerrain  Tile = 'T'
	TileSack     Tile = 'S'
	TileGold     Tile = 'G'
	TileMonster  Tile = 'M'
)

// Creature returns a new creature for the tile.
// ok is false for runes that are not part of the level alphabet.
func (t Tile) Creature() (c entity.Creature, ok bool) {
	switch t {
	case TileEmpty, TileEmptyAlt:
		return nil, true
	case TilePlayer:
		return entity.New(entity.KindPlayer), true
	case TileTerrain:
		return entity.New(entity.KindTerrain), true
	case TileSack:
		return entity.New(entity.KindSack), true
	case TileGold:
		return entity.New(entity.KindGold), true
	case TileMonster:
		return entity.New(entity.KindMonster), true
	default:
		return nil, false
	}
}

// TileOf returns the level rune for a creature.
func TileOf(c entity.Creature) Tile {
	if c == nil {
		return TileEmpty
	}
	switch c.Kind() {
	case entity.KindPlayer:
		return TilePlayer
	case entity.KindTerrain:
		return TileTerrain
	case entity.KindSack:
		return TileSack
	case entity.KindGold:
		return TileGold
	case entity.KindMonster:
		return TileMonster
	default:
		return TileEmpty
	}
}

// Rune returns the tile's level character.
func (t Tile) Rune() rune {
	return rune(t)
}
