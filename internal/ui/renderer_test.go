package ui

import (
	"testing"

	"github.com/samdwyer/digger/internal/gamedata"
	"github.com/samdwyer/digger/internal/world"
)

func TestRenderDrawsSprites(t *testing.T) {
	screen, err := NewSimulationScreen(40, 10)
	if err != nil {
		t.Fatalf("NewSimulationScreen() error: %v", err)
	}
	defer screen.Close()

	board, err := world.Parse([]string{"PTSGM "})
	if err != nil {
		t.Fatal(err)
	}

	sprites := gamedata.MustLoadSpriteRegistry()
	r := NewRenderer(screen, sprites)
	r.Render(board, Status{Level: "test", Score: 20, Tick: 3, State: "playing"})

	for x := 0; x < board.Width(); x++ {
		c := board.At(x, 0)
		if c == nil {
			if got := screen.Rune(x, 0); got != ' ' && got != 0 {
				t.Errorf("empty cell %d drawn as %q", x, got)
			}
			continue
		}
		want := sprites.GetByImage(c.ImageFileName()).GlyphRune()
		if got := screen.Rune(x, 0); got != want {
			t.Errorf("cell %d (%v) drawn as %q, want %q", x, c.Kind(), got, want)
		}
	}

	// Status line sits one row below the board.
	status := "test  score 20  tick 3"
	for i, ch := range status {
		if got := screen.Rune(i, board.Height()+1); got != ch {
			t.Fatalf("status line char %d = %q, want %q", i, got, ch)
		}
	}
}
