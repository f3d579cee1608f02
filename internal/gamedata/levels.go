package gamedata

// LevelDef is a playable map loaded from JSON. Elevation is indexed
// [z][x]; null leaves a column without a tile.
type LevelDef struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Elevation [][]*int `json:"elevation"`
}

// Depth returns the number of rows.
func (l *LevelDef) Depth() int {
	return len(l.Elevation)
}

// Width returns the length of the longest row.
func (l *LevelDef) Width() int {
	w := 0
	for _, row := range l.Elevation {
		w = max(w, len(row))
	}
	return w
}

// Tiles returns the number of filled columns.
func (l *LevelDef) Tiles() int {
	n := 0
	for _, row := range l.Elevation {
		for _, e := range row {
			if e != nil {
				n++
			}
		}
	}
	return n
}

// LevelsFile represents the structure of levels.json.
type LevelsFile struct {
	Levels []LevelDef `json:"levels"`
}

// LoadLevels loads level definitions from the embedded levels.json file.
func LoadLevels() ([]LevelDef, error) {
	file, err := Load[LevelsFile]("levels.json")
	if err != nil {
		return nil, err
	}
	return file.Levels, nil
}
