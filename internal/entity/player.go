package entity

// GoldReward is the score for picking up one gold.
const GoldReward = 10

// Player is the digger controlled from the keyboard.
type Player struct{}

// Kind returns KindPlayer.
func (p *Player) Kind() Kind { return KindPlayer }

// Act turns the pressed key into a one-tile step. The digger refuses to
// leave the board or to walk into a sack.
func (p *Player) Act(w World, x, y int) Command {
	var cmd Command

	switch w.KeyPressed() {
	case KeyRight:
		cmd.DeltaX = 1
	case KeyLeft:
		cmd.DeltaX = -1
	case KeyUp:
		cmd.DeltaY = -1
	case KeyDown:
		cmd.DeltaY = 1
	default:
		return Stay()
	}

	tx, ty := cmd.Target(x, y)
	if !inBounds(w, tx, ty) || Is(w.At(tx, ty), KindSack) {
		return Stay()
	}
	return cmd
}

// DeadInConflict collects gold and dies under a sack or to a monster.
func (p *Player) DeadInConflict(w World, other Creature) bool {
	if other == nil {
		return false
	}
	switch other.Kind() {
	case KindGold:
		w.AddScore(GoldReward)
		return false
	case KindSack, KindMonster:
		return true
	default:
		return false
	}
}

// DrawingPriority returns 0.
func (p *Player) DrawingPriority() int { return 0 }

// ImageFileName returns the digger sprite.
func (p *Player) ImageFileName() string { return "Digger.png" }
