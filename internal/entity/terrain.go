package entity

// Terrain is diggable earth. It never moves and gives way to anything that
// enters its tile.
type Terrain struct{}

func (t *Terrain) Kind() Kind                                  { return KindTerrain }
func (t *Terrain) Act(w World, x, y int) Command               { return Stay() }
func (t *Terrain) DeadInConflict(w World, other Creature) bool { return true }
func (t *Terrain) DrawingPriority() int                        { return 1 }
func (t *Terrain) ImageFileName() string                       { return "Terrain.png" }

// Gold lies still until something takes its tile.
type Gold struct{}

func (g *Gold) Kind() Kind                                  { return KindGold }
func (g *Gold) Act(w World, x, y int) Command               { return Stay() }
func (g *Gold) DeadInConflict(w World, other Creature) bool { return true }
func (g *Gold) DrawingPriority() int                        { return 4 }
func (g *Gold) ImageFileName() string                       { return "Gold.png" }
