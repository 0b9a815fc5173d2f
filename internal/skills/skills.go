// Package skills expands a player shot according to the abilities the player
// queued before firing
package skills

import (
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// Skill names
const (
	Spread  = "spread"
	Nova    = "nova"
	Scatter = "scatter"
)

const (
	spreadAngle  = 15.0
	novaSize     = 8
	scatterSides = 4
	scatterStep  = 10.0
)

// Skill is a castable ability that adds bullets to a shot
type Skill struct {
	Name string
	Cost int

	extra func(base entities.Bullet, roller dice.Roller) ([]entities.Bullet, error)
}

// Config holds the dependencies for the skill book
type Config struct {
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

// Book is the set of skills a player can cast
type Book struct {
	roller dice.Roller
	skills map[string]Skill
}

// NewBook creates the standard skill book
func NewBook(cfg *Config) (*Book, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Book{
		roller: cfg.Roller,
		skills: map[string]Skill{
			Spread:  {Name: Spread, Cost: 1, extra: spread},
			Nova:    {Name: Nova, Cost: 3, extra: nova},
			Scatter: {Name: Scatter, Cost: 2, extra: scatter},
		},
	}, nil
}

// Lookup finds a skill by name
func (b *Book) Lookup(name string) (Skill, bool) {
	s, ok := b.skills[name]
	return s, ok
}

// Names lists the known skill names in sorted order
func (b *Book) Names() []string {
	names := make([]string, 0, len(b.skills))
	for name := range b.skills {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extra returns the bullets the skill adds on top of base
func (b *Book) Extra(s Skill, base entities.Bullet) ([]entities.Bullet, error) {
	return s.extra(base, b.roller)
}

// spread adds two wing bullets
func spread(base entities.Bullet, _ dice.Roller) ([]entities.Bullet, error) {
	return []entities.Bullet{
		base.Rotated(spreadAngle),
		base.Rotated(-spreadAngle),
	}, nil
}

// nova completes an evenly spaced ring around the aim direction
func nova(base entities.Bullet, _ dice.Roller) ([]entities.Bullet, error) {
	step := 360.0 / novaSize
	out := make([]entities.Bullet, 0, novaSize-1)
	for i := 1; i < novaSize; i++ {
		out = append(out, base.Rotated(step*float64(i)))
	}
	return out, nil
}

// scatter rolls 1d4 pellets fanned out at alternating angles: +10, -10, +20, -20
func scatter(base entities.Bullet, roller dice.Roller) ([]entities.Bullet, error) {
	n, err := roller.Roll(scatterSides)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll scatter pellets")
	}

	out := make([]entities.Bullet, 0, n)
	for k := 1; k <= n; k++ {
		angle := scatterStep * float64((k+1)/2)
		if k%2 == 0 {
			angle = -angle
		}
		out = append(out, base.Rotated(angle))
	}
	return out, nil
}
