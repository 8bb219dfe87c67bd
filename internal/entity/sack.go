package entity

// Sack falls while nothing holds it up. A sack that has dropped more than
// one tile bursts into gold when it lands.
type Sack struct {
	fieldsFell int // Consecutive ticks spent falling
}

// Kind returns KindSack.
func (s *Sack) Kind() Kind { return KindSack }

// FieldsFell returns the number of consecutive ticks the sack has been falling.
func (s *Sack) FieldsFell() int { return s.fieldsFell }

// Act drops the sack one tile when the tile below is empty. Once falling,
// it keeps going through a player or monster below, crushing it.
func (s *Sack) Act(w World, x, y int) Command {
	if y+1 < w.Height() {
		below := w.At(x, y+1)
		if below == nil || (s.fieldsFell > 0 && (Is(below, KindPlayer) || Is(below, KindMonster))) {
			s.fieldsFell++
			return Command{DeltaY: 1}
		}
	}

	if s.fieldsFell > 1 {
		s.fieldsFell = 0
		return Command{TransformTo: &Gold{}}
	}

	s.fieldsFell = 0
	return Stay()
}

// DeadInConflict returns false: a sack crushes whatever it lands on.
func (s *Sack) DeadInConflict(w World, other Creature) bool { return false }

// DrawingPriority returns 5.
func (s *Sack) DrawingPriority() int { return 5 }

// ImageFileName returns the sack sprite.
func (s *Sack) ImageFileName() string { return "Sack.png" }
