package ui

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/digger/internal/entity"
	"github.com/samdwyer/digger/internal/gamedata"
	"github.com/samdwyer/digger/internal/world"
)

// Status is the information shown under the board.
type Status struct {
	Level string
	Score int
	Tick  int
	State string // "playing", "paused" or "over"
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	sprites *gamedata.SpriteRegistry
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, sprites *gamedata.SpriteRegistry) *Renderer {
	return &Renderer{screen: screen, sprites: sprites}
}

// placed is a creature with its board position, ready to draw.
type placed struct {
	x, y     int
	creature entity.Creature
}

// Render draws the board and the status line to the screen.
func (r *Renderer) Render(board *world.Map, status Status) {
	r.screen.Clear()

	// Higher priority values are drawn first so lower values end up on top.
	var drawList []placed
	board.Each(func(x, y int, c entity.Creature) {
		drawList = append(drawList, placed{x: x, y: y, creature: c})
	})
	sort.SliceStable(drawList, func(i, j int) bool {
		return drawList[i].creature.DrawingPriority() > drawList[j].creature.DrawingPriority()
	})

	for _, p := range drawList {
		glyph, style := r.spriteStyle(p.creature)
		r.screen.SetContent(p.x, p.y, glyph, style)
	}

	r.renderStatus(board.Height()+1, status)
	r.screen.Show()
}

// spriteStyle looks up the glyph and style for a creature's image.
func (r *Renderer) spriteStyle(c entity.Creature) (rune, tcell.Style) {
	sprite := r.sprites.GetByImage(c.ImageFileName())
	if sprite == nil {
		return '?', tcell.StyleDefault.Foreground(tcell.ColorPurple)
	}
	style := tcell.StyleDefault.Foreground(sprite.TCellColor())
	if c.Kind() == entity.KindPlayer {
		style = style.Bold(true)
	}
	return sprite.GlyphRune(), style
}

// renderStatus draws the score line at row y.
func (r *Renderer) renderStatus(y int, status Status) {
	line := fmt.Sprintf("%s  score %d  tick %d", status.Level, status.Score, status.Tick)
	r.RenderMessage(line, y)

	switch status.State {
	case "over":
		r.RenderMessage("GAME OVER - r to restart, q to quit", y+1)
	case "paused":
		r.RenderMessage("PAUSED - p to resume", y+1)
	default:
		r.RenderMessage("arrows move, p pause, q quit", y+1)
	}
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
