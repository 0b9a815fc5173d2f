// Package testutils holds shared fixtures for battle tests
package testutils

import (
	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

// Enemy fixtures matching the stage factory's defaults
const (
	TestEnemyID = "enemy_1"
	TestEnemyX  = 30.0
	TestEnemyY  = 30.0
	TestEnemyHP = 10
)

// EnemyBulletAt creates a stationary enemy bullet. It hits whatever stands
// on it without drifting between ticks.
func EnemyBulletAt(x, y float64) entities.Bullet {
	return entities.NewBullet(x, y, 0, 1, 0, false)
}

// PlayerBulletAt creates a stationary player bullet
func PlayerBulletAt(x, y float64) entities.Bullet {
	return entities.NewBullet(x, y, 0, 1, 0, true)
}
