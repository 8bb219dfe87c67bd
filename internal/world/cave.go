package world

// Cave is a rectangular hollow dug out of a generated level.
type Cave struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the cave
}

// Center returns the center coordinates of the cave.
func (c Cave) Center() (int, int) {
	return c.X + c.Width/2, c.Y + c.Height/2
}

// Contains returns true if the given point is inside the cave.
func (c Cave) Contains(x, y int) bool {
	return x >= c.X && x < c.X+c.Width && y >= c.Y && y < c.Y+c.Height
}

// Intersects returns true if this cave overlaps or touches another cave.
func (c Cave) Intersects(other Cave) bool {
	return c.X <= other.X+other.Width &&
		c.X+c.Width >= other.X &&
		c.Y <= other.Y+other.Height &&
		c.Y+c.Height >= other.Y
}
