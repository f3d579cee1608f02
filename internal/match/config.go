package match

// Defaults applied to zero Config fields.
const (
	DefaultMoveBudget        = 3.0
	DefaultMaxMoveDistance   = 0.5
	DefaultCharactersPerTeam = 2
	DefaultTeams             = 2
	DefaultMask              = "spear"
)

// Config holds match tuning options.
type Config struct {
	// Seed for random number generation. Used for reproducible placement,
	// team assignment and mask selection. A seed of 0 means a random seed
	// will be generated.
	Seed int64 `env:"SKIRMISH_SEED"`

	// MoveBudget bounds the movable area around the selected character.
	MoveBudget float64 `env:"SKIRMISH_MOVE_BUDGET" envDefault:"3"`

	// MaxMoveDistance is the largest snap error a move request tolerates.
	MaxMoveDistance float64 `env:"SKIRMISH_MAX_MOVE_DISTANCE" envDefault:"0.5"`

	// Generated roster size, used when no character and team records are given.
	CharactersPerTeam int `env:"SKIRMISH_CHARACTERS_PER_TEAM" envDefault:"2"`
	Teams             int `env:"SKIRMISH_TEAMS" envDefault:"2"`

	// Mask names the targeting mask active before the first end of turn.
	Mask string `env:"SKIRMISH_MASK" envDefault:"spear"`
}

// withDefaults fills zero fields.
func (c Config) withDefaults() Config {
	if c.MoveBudget <= 0 {
		c.MoveBudget = DefaultMoveBudget
	}
	if c.MaxMoveDistance <= 0 {
		c.MaxMoveDistance = DefaultMaxMoveDistance
	}
	if c.CharactersPerTeam <= 0 {
		c.CharactersPerTeam = DefaultCharactersPerTeam
	}
	if c.Teams <= 0 {
		c.Teams = DefaultTeams
	}
	if c.Mask == "" {
		c.Mask = DefaultMask
	}
	return c
}
