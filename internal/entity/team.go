package entity

import "github.com/google/uuid"

// DefaultTeamName is used for teams created without a name.
const DefaultTeamName = "Unnamed Team"

// TeamProperties describes a team to create. Zero values fall back to defaults.
type TeamProperties struct {
	ID   string
	Name string
}

// Team groups characters on the same side.
type Team struct {
	ID   string
	Name string
}

// NewTeam creates a team from props, generating an ID when none is given.
func NewTeam(props TeamProperties) *Team {
	t := &Team{ID: props.ID, Name: props.Name}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Name == "" {
		t.Name = DefaultTeamName
	}
	return t
}

// Snapshot returns a detached copy of the team.
func (t *Team) Snapshot() TeamState {
	return TeamState{ID: t.ID, Name: t.Name}
}

// TeamState is a flat, detached view of a team.
type TeamState struct {
	ID   string
	Name string
}

// Record returns the state as a keyed structural value.
func (s TeamState) Record() map[string]any {
	return map[string]any{
		"id":   s.ID,
		"name": s.Name,
	}
}

// TeamPropertiesFromRecord reads team properties from a keyed structural value.
func TeamPropertiesFromRecord(r map[string]any) TeamProperties {
	var p TeamProperties
	p.ID, _ = r["id"].(string)
	p.Name, _ = r["name"].(string)
	return p
}
