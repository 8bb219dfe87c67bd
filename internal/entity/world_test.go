package entity

import "testing"

// stubWorld is a minimal World backed by a grid of creatures.
type stubWorld struct {
	cells [][]Creature // cells[y][x]
	key   Key
	over  bool
	score int
}

// newStubWorld builds a board from rows using the level runes P T S G M.
func newStubWorld(t *testing.T, rows ...string) *stubWorld {
	t.Helper()
	w := &stubWorld{cells: make([][]Creature, len(rows))}
	for y, row := range rows {
		w.cells[y] = make([]Creature, len(row))
		for x, r := range row {
			switch r {
			case 'P':
				w.cells[y][x] = &Player{}
			case 'T':
				w.cells[y][x] = &Terrain{}
			case 'S':
				w.cells[y][x] = &Sack{}
			case 'G':
				w.cells[y][x] = &Gold{}
			case 'M':
				w.cells[y][x] = &Monster{}
			case '.', ' ':
			default:
				t.Fatalf("unknown rune %q in row %d", r, y)
			}
		}
	}
	return w
}

func (w *stubWorld) At(x, y int) Creature {
	if x < 0 || y < 0 || y >= len(w.cells) || x >= len(w.cells[y]) {
		return nil
	}
	return w.cells[y][x]
}

func (w *stubWorld) Width() int {
	if len(w.cells) == 0 {
		return 0
	}
	return len(w.cells[0])
}

func (w *stubWorld) Height() int         { return len(w.cells) }
func (w *stubWorld) KeyPressed() Key     { return w.key }
func (w *stubWorld) IsOver() bool        { return w.over }
func (w *stubWorld) AddScore(points int) { w.score += points }

// assertCardinal checks that a command is a single cardinal step or none.
func assertCardinal(t *testing.T, cmd Command) {
	t.Helper()
	for _, d := range []int{cmd.DeltaX, cmd.DeltaY} {
		if d < -1 || d > 1 {
			t.Errorf("delta out of range: (%d,%d)", cmd.DeltaX, cmd.DeltaY)
		}
	}
	if cmd.DeltaX != 0 && cmd.DeltaY != 0 {
		t.Errorf("diagonal command: (%d,%d)", cmd.DeltaX, cmd.DeltaY)
	}
}
