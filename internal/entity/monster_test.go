package entity

import "testing"

func TestMonsterChase(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		x, y   int
		dx, dy int
	}{
		{"player left on row", []string{"P  M"}, 3, 0, -1, 0},
		{"player right on row", []string{"M  P"}, 0, 0, 1, 0},
		{"player above in column", []string{"P", " ", "M"}, 0, 2, 0, -1},
		{"player below in column", []string{"M", " ", "P"}, 0, 0, 0, 1},
		{"diagonal goes horizontal", []string{"   P", "    ", "M   "}, 0, 2, 1, 0},
		{"diagonal left goes horizontal", []string{"P   ", "   M"}, 3, 1, -1, 0},
		{"no player", []string{" M  "}, 1, 0, 0, 0},
		{"terrain blocks", []string{"P TM"}, 3, 0, 0, 0},
		{"sack blocks", []string{"P SM"}, 3, 0, 0, 0},
		{"monster blocks", []string{"P MM"}, 3, 0, 0, 0},
		{"gold does not block", []string{"P GM"}, 3, 0, -1, 0},
		{"steps onto player", []string{"PM"}, 1, 0, -1, 0},
		{"diagonal blocked by terrain", []string{"P  ", "  T", "TM "}, 1, 2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newStubWorld(t, tt.rows...)
			cmd := w.At(tt.x, tt.y).Act(w, tt.x, tt.y)
			if cmd.DeltaX != tt.dx || cmd.DeltaY != tt.dy {
				t.Errorf("Act() = (%d,%d), want (%d,%d)", cmd.DeltaX, cmd.DeltaY, tt.dx, tt.dy)
			}
			assertCardinal(t, cmd)
		})
	}
}

func TestMonsterStaysWhenGameOver(t *testing.T) {
	w := newStubWorld(t, "P  M")
	w.over = true
	if cmd := w.At(3, 0).Act(w, 3, 0); !cmd.IsStay() {
		t.Errorf("monster moved after game over: (%d,%d)", cmd.DeltaX, cmd.DeltaY)
	}
}

func TestMonsterDeadInConflict(t *testing.T) {
	tests := []struct {
		other Creature
		dead  bool
	}{
		{&Monster{}, true},
		{&Sack{}, true},
		{&Player{}, false},
		{&Gold{}, false},
		{&Terrain{}, false},
	}

	w := newStubWorld(t, "M")
	m := &Monster{}
	for _, tt := range tests {
		if got := m.DeadInConflict(w, tt.other); got != tt.dead {
			t.Errorf("DeadInConflict(%v) = %v, want %v", tt.other.Kind(), got, tt.dead)
		}
	}
}
