package gamedata

import "github.com/samdwyer/skirmish/internal/mask"

// MaskDef is an authored targeting mask. Rows use '@' for the pivot, '#'
// for targeted cells and '.' for the rest.
type MaskDef struct {
	Name string   `json:"name"`
	Rows []string `json:"rows"`
}

// Pattern parses the definition.
func (d MaskDef) Pattern() mask.Pattern {
	return mask.Parse(d.Name, d.Rows)
}

// MasksFile represents the structure of masks.json.
type MasksFile struct {
	Masks []MaskDef `json:"masks"`
}

// LoadMasks loads the mask catalog, in file order.
func LoadMasks() ([]mask.Pattern, error) {
	file, err := Load[MasksFile]("masks.json")
	if err != nil {
		return nil, err
	}
	patterns := make([]mask.Pattern, len(file.Masks))
	for i, d := range file.Masks {
		patterns[i] = d.Pattern()
	}
	return patterns, nil
}
