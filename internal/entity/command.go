package entity

// Command is the move a creature asks the driver to carry out this tick.
type Command struct {
	DeltaX, DeltaY int      // One-tile step, at most one axis non-zero
	TransformTo    Creature // Replacement creature after the move (nil keeps the creature)
}

// Stay returns the command that keeps a creature where it is.
func Stay() Command {
	return Command{}
}

// IsStay reports whether the command neither moves nor transforms.
func (c Command) IsStay() bool {
	return c.DeltaX == 0 && c.DeltaY == 0 && c.TransformTo == nil
}

// Target returns the tile the command leads to from (x, y).
func (c Command) Target(x, y int) (int, int) {
	return x + c.DeltaX, y + c.DeltaY
}
