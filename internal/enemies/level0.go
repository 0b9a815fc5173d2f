package enemies

import (
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

// Level0 fires one aimed bullet every VolleyInterval
type Level0 struct {
	base
}

// NewLevel0 creates the first stage enemy
func NewLevel0(id string) *Level0 {
	return &Level0{base: newBase(id, 0)}
}

// Tick implements Enemy
func (e *Level0) Tick(delta time.Duration, player *entities.Player) Action {
	if e.dead() {
		return ActionDie
	}

	if e.elapsed(delta, VolleyInterval) {
		e.bullets = append(e.bullets, e.aimedBullet(player))
	}

	return ActionIdle
}
