// Package enemies implements the scripted stage enemies and the factory that
// picks one per stage
package enemies

//go:generate mockgen -destination=mock/mock_enemy.go -package=enemiesmock github.com/KirkDiggler/rpg-arena/internal/enemies Enemy,Factory

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/vmath"
)

const (
	// EntityType is the rpg-toolkit entity type of every enemy
	EntityType = "enemy"

	// HitRadius is how close a player bullet must be to land a hit
	HitRadius = 3.0

	// BulletSpeed is the speed of every enemy bullet in units per second
	BulletSpeed = 6.0

	// AimedBulletOffset is how far ahead of the enemy an aimed bullet spawns
	AimedBulletOffset = 2.5

	// VolleyInterval is the time between aimed volleys, and the idle time
	// before a ring barrage starts
	VolleyInterval = 2 * time.Second

	defaultX  = 30.0
	defaultY  = 30.0
	defaultHP = 10
)

// Action is what an enemy asks the battle to do after a tick
type Action int

const (
	// ActionIdle means the enemy is alive and its bullets may be drained
	ActionIdle Action = iota
	// ActionDie means the enemy is out of HP and must be replaced
	ActionDie
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case ActionIdle:
		return "idle"
	case ActionDie:
		return "die"
	default:
		return "unknown"
	}
}

// Enemy is the contract shared by every stage enemy
type Enemy interface {
	core.Entity

	// Level is the stage variant, 0 for Level0 and so on
	Level() int

	// Position returns the enemy's world position
	Position() (float64, float64)

	// HP returns the remaining hit points
	HP() int

	// Tick advances the enemy's timers and attack pattern. An enemy with no
	// HP left returns ActionDie without changing any state.
	Tick(delta time.Duration, player *entities.Player) Action

	// DrainBullets returns the bullets fired since the last drain and clears
	// the buffer
	DrainBullets() []entities.Bullet

	// Hurt flags every player bullet in range for removal and loses one HP
	// per bullet. The slice is modified in place and never resized.
	Hurt(bullets []entities.Bullet)
}

// base holds the state and behaviour every variant shares
type base struct {
	id      string
	level   int
	x       float64
	y       float64
	hp      int
	timer   time.Duration
	bullets []entities.Bullet
}

func newBase(id string, level int) base {
	return base{
		id:    id,
		level: level,
		x:     defaultX,
		y:     defaultY,
		hp:    defaultHP,
	}
}

// GetID returns the enemy's ID
func (e *base) GetID() string {
	return e.id
}

// GetType returns the entity type for rpg-toolkit
func (e *base) GetType() string {
	return EntityType
}

// Level returns the stage variant
func (e *base) Level() int {
	return e.level
}

// Position returns the enemy's world position
func (e *base) Position() (float64, float64) {
	return e.x, e.y
}

// HP returns the remaining hit points
func (e *base) HP() int {
	return e.hp
}

// DrainBullets returns the buffered bullets and clears the buffer
func (e *base) DrainBullets() []entities.Bullet {
	out := e.bullets
	e.bullets = nil
	return out
}

// Hurt registers hits from player bullets within HitRadius
func (e *base) Hurt(bullets []entities.Bullet) {
	for i := range bullets {
		b := &bullets[i]
		if !b.IsPlayer || b.PendingRemoval {
			continue
		}
		if b.Within(e.x, e.y, HitRadius) {
			b.PendingRemoval = true
			e.hp = max(e.hp-1, 0)
		}
	}
}

func (e *base) dead() bool {
	return e.hp <= 0
}

// aim returns the unit direction toward the player. A player standing on
// the enemy is shot straight down.
func (e *base) aim(player *entities.Player) (float64, float64) {
	dx, dy := vmath.Normalize(player.X-e.x, player.Y-e.y)
	if dx == 0 && dy == 0 {
		return 0, -1
	}
	return dx, dy
}

// aimedBullet is the single bullet Level0 fires and Level1 fans out
func (e *base) aimedBullet(player *entities.Player) entities.Bullet {
	dx, dy := e.aim(player)
	return entities.NewBullet(
		e.x+AimedBulletOffset*dx,
		e.y+AimedBulletOffset*dy,
		dx, dy,
		BulletSpeed,
		false,
	)
}

// elapsed adds delta to the timer and reports whether it passed interval,
// resetting the timer when it did
func (e *base) elapsed(delta, interval time.Duration) bool {
	e.timer += delta
	if e.timer > interval {
		e.timer = 0
		return true
	}
	return false
}
