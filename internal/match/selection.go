package match

// Selection is the character whose turn it is: either NoSelection or a
// CharacterSelection.
type Selection interface {
	isSelection()
}

// NoSelection is held before Setup picks the first character.
type NoSelection struct{}

// CharacterSelection points at a character in the roster.
type CharacterSelection struct {
	CharacterID string
}

func (NoSelection) isSelection()        {}
func (CharacterSelection) isSelection() {}
