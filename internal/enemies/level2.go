package enemies

import (
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
)

const (
	// RingSize is the number of bullets in one ring volley
	RingSize = 12

	// RingVolleys is how many staggered rings make up one barrage
	RingVolleys = 3

	// RingStagger is the extra base rotation applied to each successive ring
	RingStagger = 5.0

	// RingInterval is the time between rings within a barrage
	RingInterval = 800 * time.Millisecond
)

// Level2 alternates between idling and a barrage of staggered rings
type Level2 struct {
	base

	// shooting is false while idle. While shooting, volley is the index of
	// the next ring; reaching RingVolleys returns the enemy to idle.
	shooting bool
	volley   int
}

// NewLevel2 creates the third stage enemy
func NewLevel2(id string) *Level2 {
	return &Level2{base: newBase(id, 2)}
}

// Shooting reports whether a barrage is in progress and the index of the
// next ring
func (e *Level2) Shooting() (bool, int) {
	return e.shooting, e.volley
}

// Tick implements Enemy
func (e *Level2) Tick(delta time.Duration, player *entities.Player) Action {
	if e.dead() {
		return ActionDie
	}

	switch {
	case !e.shooting:
		if e.elapsed(delta, VolleyInterval) {
			e.shooting = true
			e.volley = 0
		}
	case e.volley < RingVolleys:
		if e.elapsed(delta, RingInterval) {
			e.bullets = append(e.bullets, e.ring(player, RingStagger*float64(e.volley))...)
			e.volley++
		}
	default:
		e.timer += delta
		e.shooting = false
		e.volley = 0
	}

	return ActionIdle
}

// ring builds RingSize bullets evenly spaced around the aim direction, with
// the whole ring rotated by stagger degrees. Ring bullets start at the enemy.
func (e *Level2) ring(player *entities.Player, stagger float64) []entities.Bullet {
	dx, dy := e.aim(player)
	first := entities.NewBullet(e.x, e.y, dx, dy, BulletSpeed, false)

	step := 360.0 / RingSize
	bullets := make([]entities.Bullet, RingSize)
	for i := range bullets {
		bullets[i] = first.Rotated(stagger + step*float64(i))
	}
	return bullets
}
