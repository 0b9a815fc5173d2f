package entities

import "github.com/KirkDiggler/rpg-arena/internal/pkg/vmath"

const (
	// PlayerBulletSpeed is the speed of player bullets in units per second
	PlayerBulletSpeed = 10.0

	// PlayerBulletOffset is how far ahead of the player a bullet spawns
	PlayerBulletOffset = 1.5
)

// PlayerStats holds the starting stats of a player
type PlayerStats struct {
	X      float64
	Y      float64
	HP     int
	MP     int
	Speed  float64
	Radius float64
}

// DefaultPlayerStats are the stats a new battle starts with
var DefaultPlayerStats = PlayerStats{
	HP:     10,
	MP:     20,
	Speed:  10,
	Radius: 1,
}

// Player is the player-controlled entity. It lives for the whole battle.
type Player struct {
	ID string

	X float64
	Y float64

	// FaceX, FaceY is the facing direction: zero until the player first
	// moves, a unit vector afterwards
	FaceX float64
	FaceY float64

	HP    int
	MaxHP int
	MP    int
	MaxMP int

	Speed  float64
	Radius float64

	// Skills are the ability names queued for the next shot
	Skills []string
}

// NewPlayer creates a player with full HP and MP
func NewPlayer(id string, stats PlayerStats) *Player {
	return &Player{
		ID:     id,
		X:      stats.X,
		Y:      stats.Y,
		HP:     stats.HP,
		MaxHP:  stats.HP,
		MP:     stats.MP,
		MaxMP:  stats.MP,
		Speed:  stats.Speed,
		Radius: stats.Radius,
	}
}

// GetID returns the player's ID
func (p *Player) GetID() string {
	return p.ID
}

// GetType returns the entity type for rpg-toolkit
func (p *Player) GetType() string {
	return "player"
}

// Walk moves the player by the given delta. Facing follows the direction of
// movement and is kept while the player stands still.
func (p *Player) Walk(deltaX, deltaY float64) {
	p.X += deltaX
	p.Y += deltaY

	fx, fy := vmath.Normalize(deltaX, deltaY)
	if fx != 0 || fy != 0 {
		p.FaceX, p.FaceY = fx, fy
	}
}

// Aim returns the unit direction a shot would travel. A nil target aims along
// the facing direction. Falls back to straight up when no direction exists.
func (p *Player) Aim(target *vmath.Point) (float64, float64) {
	var dx, dy float64
	if target != nil {
		dx, dy = vmath.Normalize(target.X-p.X, target.Y-p.Y)
	} else {
		dx, dy = vmath.Normalize(p.FaceX, p.FaceY)
	}
	if dx == 0 && dy == 0 {
		return 0, 1
	}
	return dx, dy
}

// SpawnBullet creates a player-owned bullet aimed at target, or along the
// facing direction when target is nil. It does not touch MP.
func (p *Player) SpawnBullet(target *vmath.Point) Bullet {
	dx, dy := p.Aim(target)
	return NewBullet(
		p.X+PlayerBulletOffset*dx,
		p.Y+PlayerBulletOffset*dy,
		dx, dy,
		PlayerBulletSpeed,
		true,
	)
}

// Damage removes n HP, stopping at zero
func (p *Player) Damage(n int) {
	p.HP = max(p.HP-n, 0)
}

// SpendMP removes cost MP if the player can afford it
func (p *Player) SpendMP(cost int) bool {
	if cost > p.MP {
		return false
	}
	p.MP -= cost
	return true
}

// IsAlive reports whether the player has HP left
func (p *Player) IsAlive() bool {
	return p.HP > 0
}

// QueueSkill queues an ability name for the next shot
func (p *Player) QueueSkill(name string) {
	p.Skills = append(p.Skills, name)
}

// TakeSkills returns the queued ability names and clears the queue
func (p *Player) TakeSkills() []string {
	skills := p.Skills
	p.Skills = nil
	return skills
}

// Clone returns a copy that shares no memory with p
func (p *Player) Clone() Player {
	c := *p
	if p.Skills != nil {
		c.Skills = append([]string(nil), p.Skills...)
	}
	return c
}
