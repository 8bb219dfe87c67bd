package gamedata

// LevelDef is a hand-built level.
type LevelDef struct {
	ID   string   `json:"id"`   // Unique identifier (e.g., "classic")
	Name string   `json:"name"` // Display name
	Rows []string `json:"rows"` // Board rows using the level alphabet P T S G M and space
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
