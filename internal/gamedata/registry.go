package gamedata

import (
	"errors"
)

// SpriteRegistry holds loaded sprite definitions keyed by image file name.
type SpriteRegistry struct {
	sprites map[string]*SpriteDef
	all     []SpriteDef
}

// NewSpriteRegistry creates a registry from loaded sprite definitions.
func NewSpriteRegistry(sprites []SpriteDef) *SpriteRegistry {
	registry := &SpriteRegistry{
		sprites: make(map[string]*SpriteDef),
		all:     sprites,
	}
	for i := range sprites {
		registry.sprites[sprites[i].Image] = &sprites[i]
	}
	return registry
}

// LoadSpriteRegistry loads and creates a registry from the embedded sprites.json.
func LoadSpriteRegistry() (*SpriteRegistry, error) {
	sprites, err := LoadSprites()
	if err != nil {
		return nil, err
	}
	if len(sprites) == 0 {
		return nil, errors.New("no sprites loaded from sprites.json")
	}
	return NewSpriteRegistry(sprites), nil
}

// MustLoadSpriteRegistry loads a registry, panicking on error.
func MustLoadSpriteRegistry() *SpriteRegistry {
	registry, err := LoadSpriteRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByImage returns the sprite for an image file name, or nil if not found.
func (r *SpriteRegistry) GetByImage(image string) *SpriteDef {
	return r.sprites[image]
}

// All returns all sprite definitions.
func (r *SpriteRegistry) All() []SpriteDef {
	return r.all
}

// Count returns the number of sprites in the registry.
func (r *SpriteRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// LevelRegistry
// =============================================================================

// LevelRegistry holds the built-in levels in file order.
type LevelRegistry struct {
	levels []LevelDef
}

// NewLevelRegistry creates a registry from loaded level definitions.
func NewLevelRegistry(levels []LevelDef) *LevelRegistry {
	return &LevelRegistry{levels: levels}
}

// LoadLevelRegistry loads and creates a registry from the embedded levels.json.
func LoadLevelRegistry() (*LevelRegistry, error) {
	levels, err := LoadLevels()
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, errors.New("no levels loaded from levels.json")
	}
	return NewLevelRegistry(levels), nil
}

// GetByID returns the level with the given ID, or nil if not found.
func (r *LevelRegistry) GetByID(id string) *LevelDef {
	for i := range r.levels {
		if r.levels[i].ID == id {
			return &r.levels[i]
		}
	}
	return nil
}

// First returns the first level, or nil for an empty registry.
func (r *LevelRegistry) First() *LevelDef {
	if len(r.levels) == 0 {
		return nil
	}
	return &r.levels[0]
}

// All returns all level definitions.
func (r *LevelRegistry) All() []LevelDef {
	return r.levels
}

// Count returns the number of levels in the registry.
func (r *LevelRegistry) Count() int {
	return len(r.levels)
}
