package enemies

import (
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

// SpreadAngle is the angle between the aimed bullet and its two wing bullets
const SpreadAngle = 30.0

// Level1 fires a three-way spread every VolleyInterval
type Level1 struct {
	base
}

// NewLevel1 creates the second stage enemy
func NewLevel1(id string) *Level1 {
	return &Level1{base: newBase(id, 1)}
}

// Tick implements Enemy
func (e *Level1) Tick(delta time.Duration, player *entities.Player) Action {
	if e.dead() {
		return ActionDie
	}

	if e.elapsed(delta, VolleyInterval) {
		aimed := e.aimedBullet(player)
		e.bullets = append(e.bullets,
			aimed,
			aimed.Rotated(SpreadAngle),
			aimed.Rotated(-SpreadAngle),
		)
	}

	return ActionIdle
}
