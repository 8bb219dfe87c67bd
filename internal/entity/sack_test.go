package entity

import "testing"

func TestSackFallThenTransform(t *testing.T) {
	// Sack at the top of a shaft two tiles deep.
	w := newStubWorld(t,
		"S",
		" ",
		" ",
		"T",
	)
	sack := w.At(0, 0).(*Sack)

	cmd := sack.Act(w, 0, 0)
	if cmd.DeltaY != 1 || cmd.DeltaX != 0 || sack.FieldsFell() != 1 {
		t.Fatalf("tick 1: got (%d,%d) fell=%d, want (0,1) fell=1", cmd.DeltaX, cmd.DeltaY, sack.FieldsFell())
	}
	w.cells[0][0], w.cells[1][0] = nil, sack

	cmd = sack.Act(w, 0, 1)
	if cmd.DeltaY != 1 || sack.FieldsFell() != 2 {
		t.Fatalf("tick 2: got (%d,%d) fell=%d, want (0,1) fell=2", cmd.DeltaX, cmd.DeltaY, sack.FieldsFell())
	}
	w.cells[1][0], w.cells[2][0] = nil, sack

	cmd = sack.Act(w, 0, 2)
	if cmd.DeltaX != 0 || cmd.DeltaY != 0 {
		t.Errorf("tick 3: got (%d,%d), want (0,0)", cmd.DeltaX, cmd.DeltaY)
	}
	if !Is(cmd.TransformTo, KindGold) {
		t.Errorf("tick 3: expected transform to gold, got %v", cmd.TransformTo)
	}
	if sack.FieldsFell() != 0 {
		t.Errorf("tick 3: fell = %d, want 0", sack.FieldsFell())
	}
}

func TestSackShortFallDoesNotTransform(t *testing.T) {
	w := newStubWorld(t,
		"S",
		" ",
		"T",
	)
	sack := w.At(0, 0).(*Sack)

	if cmd := sack.Act(w, 0, 0); cmd.DeltaY != 1 {
		t.Fatalf("expected fall, got (%d,%d)", cmd.DeltaX, cmd.DeltaY)
	}
	w.cells[0][0], w.cells[1][0] = nil, sack

	cmd := sack.Act(w, 0, 1)
	if !cmd.IsStay() {
		t.Errorf("expected stay after a single fall, got (%d,%d) transform=%v", cmd.DeltaX, cmd.DeltaY, cmd.TransformTo)
	}
	if sack.FieldsFell() != 0 {
		t.Errorf("fell = %d, want 0", sack.FieldsFell())
	}
}

func TestSackRestingDoesNotCrush(t *testing.T) {
	for _, below := range []string{"P", "M"} {
		w := newStubWorld(t, "S", below)
		sack := w.At(0, 0).(*Sack)
		if cmd := sack.Act(w, 0, 0); !cmd.IsStay() {
			t.Errorf("resting sack above %s moved: (%d,%d)", below, cmd.DeltaX, cmd.DeltaY)
		}
	}
}

func TestSackFallingCrushesCreature(t *testing.T) {
	for _, below := range []string{"P", "M"} {
		w := newStubWorld(t, "S", " ", below)
		sack := w.At(0, 0).(*Sack)
		sack.Act(w, 0, 0)
		w.cells[0][0], w.cells[1][0] = nil, sack

		cmd := sack.Act(w, 0, 1)
		if cmd.DeltaY != 1 {
			t.Errorf("falling sack above %s: got (%d,%d), want (0,1)", below, cmd.DeltaX, cmd.DeltaY)
		}
		if sack.FieldsFell() != 2 {
			t.Errorf("falling sack above %s: fell = %d, want 2", below, sack.FieldsFell())
		}
	}
}

func TestSackBlockedByGoldOrTerrain(t *testing.T) {
	for _, below := range []string{"G", "T", "S"} {
		w := newStubWorld(t, "S", " ", below)
		sack := w.At(0, 0).(*Sack)
		sack.Act(w, 0, 0)
		w.cells[0][0], w.cells[1][0] = nil, sack

		if cmd := sack.Act(w, 0, 1); !cmd.IsStay() {
			t.Errorf("sack above %s should stop, got (%d,%d)", below, cmd.DeltaX, cmd.DeltaY)
		}
	}
}

func TestSackBottomRow(t *testing.T) {
	w := newStubWorld(t, " ", "S")
	sack := w.At(0, 1).(*Sack)
	if cmd := sack.Act(w, 0, 1); !cmd.IsStay() {
		t.Errorf("sack on the bottom row moved: (%d,%d)", cmd.DeltaX, cmd.DeltaY)
	}

	// A sack that reaches the bottom after a long fall still turns to gold.
	sack.fieldsFell = 2
	cmd := sack.Act(w, 0, 1)
	if !Is(cmd.TransformTo, KindGold) {
		t.Error("sack landing on the bottom row after two falls should turn to gold")
	}
}

func TestSackNeverDies(t *testing.T) {
	w := newStubWorld(t, "S")
	sack := &Sack{}
	for _, other := range []Creature{&Player{}, &Terrain{}, &Sack{}, &Gold{}, &Monster{}} {
		if sack.DeadInConflict(w, other) {
			t.Errorf("Sack.DeadInConflict(%v) = true", other.Kind())
		}
	}
}
