package input

import (
	"strings"

	"github.com/KirkDiggler/rpg-arena/internal/pkg/vmath"
)

// Viewport maps screen-grid coordinates to world coordinates. Screen rows
// grow downward while world Y grows upward, so the Y axis is flipped.
type Viewport struct {
	Screen vmath.Rect
	World  vmath.Rect
}

// ToWorld converts a screen cell to the world point it shows
func (v Viewport) ToWorld(screenX, screenY float64) vmath.Point {
	return vmath.Point{
		X: vmath.Remap(screenX, v.World.MinX, v.World.MaxX, v.Screen.MinX, v.Screen.MaxX),
		Y: vmath.Remap(screenY, v.World.MaxY, v.World.MinY, v.Screen.MinY, v.Screen.MaxY),
	}
}

// Click turns a click on the screen into an aimed shot
func (v Viewport) Click(screenX, screenY float64) Shoot {
	target := v.ToWorld(screenX, screenY)
	return Shoot{Target: &target}
}

// FromKey translates a key name into an event. Arrow keys and WASD move one
// unit, space fires along the facing direction.
func FromKey(key string) (Event, bool) {
	switch strings.ToLower(key) {
	case "right", "d":
		return Move{DX: 1}, true
	case "left", "a":
		return Move{DX: -1}, true
	case "up", "w":
		return Move{DY: 1}, true
	case "down", "s":
		return Move{DY: -1}, true
	case "space", " ":
		return Shoot{}, true
	default:
		return nil, false
	}
}
