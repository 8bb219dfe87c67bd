package world

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samdwyer/digger/internal/entity"
)

const (
	// Default board dimensions for generated levels
	DefaultWidth  = 30
	DefaultHeight = 16
)

// ErrInvalidLevel is returned when level text cannot be turned into a board.
var ErrInvalidLevel = errors.New("invalid level")

// Map is the Digger board. Each cell holds at most one creature.
type Map struct {
	width  int
	height int
	cells  [][]entity.Creature // cells[y][x], nil for an empty cell
}

// NewMap creates an empty board.
func NewMap(width, height int) *Map {
	cells := make([][]entity.Creature, height)
	for y := range cells {
		cells[y] = make([]entity.Creature, width)
	}

	return &Map{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// Parse builds a board from level rows. Every row must have the same width.
func Parse(rows []string) (*Map, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidLevel)
	}

	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, fmt.Errorf("%w: empty first row", ErrInvalidLevel)
	}

	m := NewMap(width, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrInvalidLevel, y, len(runes), width)
		}
		for x, r := range runes {
			c, ok := Tile(r).Creature()
			if !ok {
				return nil, fmt.Errorf("%w: unknown tile %q at (%d,%d)", ErrInvalidLevel, r, x, y)
			}
			m.cells[y][x] = c
		}
	}
	return m, nil
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// InBounds returns true if the position is on the board.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// At returns the creature at the given position, or nil when the cell is
// empty or off the board.
func (m *Map) At(x, y int) entity.Creature {
	if !m.InBounds(x, y) {
		return nil
	}
	return m.cells[y][x]
}

// Set places a creature (or nil) at the given position. Off-board writes are ignored.
func (m *Map) Set(x, y int, c entity.Creature) {
	if !m.InBounds(x, y) {
		return
	}
	m.cells[y][x] = c
}

// Each calls fn for every occupied cell, column by column.
func (m *Map) Each(fn func(x, y int, c entity.Creature)) {
	for x := 0; x < m.width; x++ {
		for y := 0; y < m.height; y++ {
			if c := m.cells[y][x]; c != nil {
				fn(x, y, c)
			}
		}
	}
}

// Find returns the first position holding a creature of the given kind.
func (m *Map) Find(kind entity.Kind) (x, y int, ok bool) {
	for x := 0; x < m.width; x++ {
		for y := 0; y < m.height; y++ {
			if entity.Is(m.cells[y][x], kind) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// Count returns how many creatures of the given kind are on the board.
func (m *Map) Count(kind entity.Kind) int {
	count := 0
	m.Each(func(_, _ int, c entity.Creature) {
		if c.Kind() == kind {
			count++
		}
	})
	return count
}

// Rows renders the board back to level text.
func (m *Map) Rows() []string {
	rows := make([]string, m.height)
	for y := 0; y < m.height; y++ {
		var b strings.Builder
		for x := 0; x < m.width; x++ {
			b.WriteRune(TileOf(m.cells[y][x]).Rune())
		}
		rows[y] = b.String()
	}
	return rows
}
