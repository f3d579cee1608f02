package gamedata

import (
	"errors"

	"github.com/samdwyer/skirmish/internal/mask"
)

// MaskRegistry holds the loaded mask catalog in file order.
type MaskRegistry struct {
	masks []mask.Pattern
}

// NewMaskRegistry creates a registry from parsed masks.
func NewMaskRegistry(masks []mask.Pattern) *MaskRegistry {
	return &MaskRegistry{masks: masks}
}

// LoadMaskRegistry loads and creates a registry from the embedded masks.json.
func LoadMaskRegistry() (*MaskRegistry, error) {
	masks, err := LoadMasks()
	if err != nil {
		return nil, err
	}
	if len(masks) == 0 {
		return nil, errors.New("no masks loaded from masks.json")
	}
	return NewMaskRegistry(masks), nil
}

// GetByName returns the mask with the given name.
func (r *MaskRegistry) GetByName(name string) (mask.Pattern, bool) {
	for _, m := range r.masks {
		if m.Name == name {
			return m, true
		}
	}
	return mask.Pattern{}, false
}

// All returns the catalog.
func (r *MaskRegistry) All() []mask.Pattern {
	return r.masks
}

// Count returns the number of masks in the registry.
func (r *MaskRegistry) Count() int {
	return len(r.masks)
}

// LevelRegistry holds loaded level definitions.
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

// MustLoadLevelRegistry loads a registry, panicking on error.
func MustLoadLevelRegistry() *LevelRegistry {
	registry, err := LoadLevelRegistry()
	if err != nil {
		panic(err)
	}
	return registry
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

// All returns all level definitions.
func (r *LevelRegistry) All() []LevelDef {
	return r.levels
}

// Count returns the number of levels in the registry.
func (r *LevelRegistry) Count() int {
	return len(r.levels)
}
