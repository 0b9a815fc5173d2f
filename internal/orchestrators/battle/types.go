package battle

import (
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/input"
)

// Outcome is the overall state of a battle
type Outcome int

const (
	// OutcomeOngoing means an enemy is still alive and so is the player
	OutcomeOngoing Outcome = iota
	// OutcomeVictory means every stage is cleared. Remaining player bullets
	// keep flying until they leave the arena.
	OutcomeVictory
	// OutcomeDefeat means the player ran out of HP. The world is frozen.
	OutcomeDefeat
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeOngoing:
		return "ongoing"
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Terminal reports whether the battle can no longer change hands
func (o Outcome) Terminal() bool {
	return o != OutcomeOngoing
}

// QueueEventsInput defines the request for queuing input events
type QueueEventsInput struct {
	Events []input.Event
}

// QueueEventsOutput defines the response for queuing input events
type QueueEventsOutput struct {
	Pending int
}

// TickInput defines the request for advancing the battle one step
type TickInput struct {
	Delta time.Duration
}

// TickOutput defines the response for advancing the battle one step
type TickOutput struct {
	Tick      uint64
	Outcome   Outcome
	Stage     int
	PlayerHP  int
	Bullets   int
	EnemyDied bool
}

// GetStateInput defines the request for a read-only snapshot
type GetStateInput struct {
	// LogLimit caps how many of the most recent log lines are returned.
	// Zero returns the whole log.
	LogLimit int
}

// GetStateOutput is a settled post-tick snapshot. It shares no memory with
// the battle.
type GetStateOutput struct {
	BattleID string
	Running  bool
	Outcome  Outcome
	Stage    int
	Tick     uint64
	Player   entities.Player
	Enemy    *EnemyState
	Bullets  []entities.Bullet
	Logs     []string
}

// EnemyState describes the active enemy for presentation
type EnemyState struct {
	ID    string
	Level int
	X     float64
	Y     float64
	HP    int
}

// QuitInput defines the request for stopping the battle
type QuitInput struct{}

// QuitOutput defines the response for stopping the battle
type QuitOutput struct {
	Ticks uint64
}
