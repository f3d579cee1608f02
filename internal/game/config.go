package game

import "github.com/samdwyer/skirmish/internal/match"

// Config holds game configuration options.
type Config struct {
	// Level is the ID of the embedded level to play.
	Level string `env:"SKIRMISH_LEVEL" envDefault:"proving-grounds"`

	// Match tunes the rules. A Match.Seed of 0 means a random seed will be
	// generated.
	Match match.Config
}
