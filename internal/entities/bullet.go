package entities

import "github.com/KirkDiggler/rpg-arena/internal/pkg/vmath"

// Bullet is a projectile in the shared bullet pool. Bullets are value objects:
// the pool owns them and mutates them in place each tick.
type Bullet struct {
	X  float64
	Y  float64
	VX float64
	VY float64

	// IsPlayer is the ownership tag. It decides which side the bullet can hit
	// and never changes after creation.
	IsPlayer bool

	// PendingRemoval marks the bullet for pruning at the end of the tick
	PendingRemoval bool
}

// NewBullet creates a bullet at (x, y) travelling along the unit direction
// (dirX, dirY) at the given speed
func NewBullet(x, y, dirX, dirY, speed float64, isPlayer bool) Bullet {
	return Bullet{
		X:        x,
		Y:        y,
		VX:       dirX * speed,
		VY:       dirY * speed,
		IsPlayer: isPlayer,
	}
}

// Rotated returns a copy of the bullet with its velocity rotated by degrees
func (b Bullet) Rotated(degrees float64) Bullet {
	b.VX, b.VY = vmath.Rotate(b.VX, b.VY, degrees)
	return b
}

// Integrate advances the bullet by its velocity over dt seconds
func (b *Bullet) Integrate(dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// Within reports whether the bullet is within radius of (x, y), edge included
func (b Bullet) Within(x, y, radius float64) bool {
	return vmath.Distance(b.X, b.Y, x, y) <= radius
}

// Prune drops every bullet marked for removal, reusing the backing array
func Prune(bullets []Bullet) []Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		if !b.PendingRemoval {
			kept = append(kept, b)
		}
	}
	clear(bullets[len(kept):])
	return kept
}

// KeepPlayerOwned drops every enemy-owned bullet, reusing the backing array
func KeepPlayerOwned(bullets []Bullet) []Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		if b.IsPlayer {
			kept = append(kept, b)
		}
	}
	clear(bullets[len(kept):])
	return kept
}
