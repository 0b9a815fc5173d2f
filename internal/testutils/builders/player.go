// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

// PlayerStatsBuilder provides a fluent interface for building test PlayerStats
type PlayerStatsBuilder struct {
	stats entities.PlayerStats
}

// NewPlayerStatsBuilder creates a new builder starting from the default stats
func NewPlayerStatsBuilder() *PlayerStatsBuilder {
	return &PlayerStatsBuilder{stats: entities.DefaultPlayerStats}
}

// At sets the starting position
func (b *PlayerStatsBuilder) At(x, y float64) *PlayerStatsBuilder {
	b.stats.X = x
	b.stats.Y = y
	return b
}

// WithHP sets the starting and maximum HP
func (b *PlayerStatsBuilder) WithHP(hp int) *PlayerStatsBuilder {
	b.stats.HP = hp
	return b
}

// WithMP sets the starting and maximum MP
func (b *PlayerStatsBuilder) WithMP(mp int) *PlayerStatsBuilder {
	b.stats.MP = mp
	return b
}

// WithSpeed sets the walking speed
func (b *PlayerStatsBuilder) WithSpeed(speed float64) *PlayerStatsBuilder {
	b.stats.Speed = speed
	return b
}

// Build returns the built stats
func (b *PlayerStatsBuilder) Build() *entities.PlayerStats {
	stats := b.stats
	return &stats
}

// BuildPlayer returns a player with the built stats
func (b *PlayerStatsBuilder) BuildPlayer(id string) *entities.Player {
	return entities.NewPlayer(id, b.stats)
}
