package gamedata

// =============================================================================
// SPRITES
// =============================================================================
//
// Every creature names its sprite by image file ("Digger.png", "Sack.png"...).
// The terminal has no images, so sprites.json maps each file name to a glyph
// and a colour:
//
// {
//   "image": "Digger.png",
//   "name": "Digger",
//   "glyph": "@",
//   "color": "#FFD700"
// }
//
// Colours are "#RRGGBB" or any tcell colour name ("yellow", "darkgray").

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// SpriteDef defines how one image is drawn in the terminal.
type SpriteDef struct {
	Image string `json:"image"` // Image file name reported by the creature
	Name  string `json:"name"`  // Display name
	Glyph string `json:"glyph"` // Single character for rendering
	Color string `json:"color"` // Hex colour or tcell colour name
}

// GlyphRune returns the glyph as a rune for rendering.
func (s *SpriteDef) GlyphRune() rune {
	for _, r := range s.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the sprite colour, white when it cannot be parsed.
func (s *SpriteDef) TCellColor() tcell.Color {
	color, err := ParseColor(s.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// SpritesFile represents the structure of sprites.json.
type SpritesFile struct {
	Sprites []SpriteDef `json:"sprites"`
}

// LoadSprites loads sprite definitions from the embedded sprites.json file.
func LoadSprites() ([]SpriteDef, error) {
	file, err := Load[SpritesFile]("sprites.json")
	if err != nil {
		return nil, err
	}
	return file.Sprites, nil
}

// ParseColor converts "#RRGGBB", "RRGGBB" or a tcell colour name to a tcell.Color.
func ParseColor(s string) (tcell.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 6 {
		if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
			return tcell.NewRGBColor(int32(v>>16&0xFF), int32(v>>8&0xFF), int32(v&0xFF)), nil
		}
	}

	if c, ok := tcell.ColorNames[strings.ToLower(s)]; ok {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("invalid colour %q", s)
}
