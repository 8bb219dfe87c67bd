package entity

// Monster chases the digger through dug tunnels.
type Monster struct{}

// Kind returns KindMonster.
func (m *Monster) Kind() Kind { return KindMonster }

// Act steps toward the player. When the player is neither on the same row
// nor the same column the monster closes the horizontal gap first.
// Monsters cannot dig, push sacks or share a tile with another monster.
func (m *Monster) Act(w World, x, y int) Command {
	if w.IsOver() {
		return Stay()
	}

	cmd := m.chase(w, x, y)

	tx, ty := cmd.Target(x, y)
	if !inBounds(w, tx, ty) {
		return Stay()
	}
	if target := w.At(tx, ty); target != nil {
		switch target.Kind() {
		case KindTerrain, KindSack, KindMonster:
			return Stay()
		}
	}
	return cmd
}

func (m *Monster) chase(w World, x, y int) Command {
	var cmd Command

	px, py, ok := findPlayer(w)
	if !ok {
		return cmd
	}

	switch {
	case py == y:
		cmd.DeltaX = sign(px - x)
	case px == x:
		cmd.DeltaY = sign(py - y)
	default:
		cmd.DeltaX = sign(px - x)
	}
	return cmd
}

// DeadInConflict kills the monster under a sack or when two monsters meet.
func (m *Monster) DeadInConflict(w World, other Creature) bool {
	return Is(other, KindMonster) || Is(other, KindSack)
}

// DrawingPriority returns 3.
func (m *Monster) DrawingPriority() int { return 3 }

// ImageFileName returns the monster sprite.
func (m *Monster) ImageFileName() string { return "Monster.png" }

// findPlayer scans the board column by column for the player.
func findPlayer(w World) (int, int, bool) {
	for x := 0; x < w.Width(); x++ {
		for y := 0; y < w.Height(); y++ {
			if Is(w.At(x, y), KindPlayer) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
