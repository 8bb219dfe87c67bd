// Package entity provides the creatures that live on the Digger board and
// the rules each of them follows on every tick.
package entity

// Kind identifies the type of a creature.
type Kind int

const (
	KindPlayer Kind = iota
	KindTerrain
	KindSack
	KindGold
	KindMonster
)

// String returns the creature kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindTerrain:
		return "Terrain"
	case KindSack:
		return "Sack"
	case KindGold:
		return "Gold"
	case KindMonster:
		return "Monster"
	default:
		return "Unknown"
	}
}

// Key is the direction signal read by the player on each tick.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// String returns a human-readable key name.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	default:
		return "none"
	}
}

// World is the read view of the simulation handed to creatures.
// A nil creature from At means the tile is empty.
type World interface {
	At(x, y int) Creature
	Width() int
	Height() int
	KeyPressed() Key
	IsOver() bool
	AddScore(points int)
}

// Creature is implemented by everything that can occupy a tile.
type Creature interface {
	// Kind reports the creature type.
	Kind() Kind

	// Act decides the creature's move for this tick from its tile (x, y).
	Act(w World, x, y int) Command

	// DeadInConflict reports whether this creature dies when it ends up on
	// the same tile as other.
	DeadInConflict(w World, other Creature) bool

	// DrawingPriority orders creatures for rendering. Lower values are drawn on top.
	DrawingPriority() int

	// ImageFileName is the sprite asset name for this creature.
	ImageFileName() string
}

// New creates a fresh creature of the given kind, or nil for an unknown kind.
func New(kind Kind) Creature {
	switch kind {
	case KindPlayer:
		return &Player{}
	case KindTerrain:
		return &Terrain{}
	case KindSack:
		return &Sack{}
	case KindGold:
		return &Gold{}
	case KindMonster:
		return &Monster{}
	default:
		return nil
	}
}

// Is reports whether c is non-nil and of the given kind.
func Is(c Creature, kind Kind) bool {
	return c != nil && c.Kind() == kind
}

// inBounds reports whether (x, y) is a tile of w.
func inBounds(w World, x, y int) bool {
	return x >= 0 && x < w.Width() && y >= 0 && y < w.Height()
}
