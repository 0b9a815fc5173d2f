package battle

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event types published on the event bus
const (
	EventShotFired    = "arena.shot_fired"
	EventNotEnoughMP  = "arena.not_enough_mp"
	EventSkillFizzled = "arena.skill_fizzled"
	EventSkillUnknown = "arena.skill_unknown"
	EventPlayerHit    = "arena.player_hit"
	EventEnemyHit     = "arena.enemy_hit"
	EventEnemyDied    = "arena.enemy_died"
	EventStageStarted = "arena.stage_started"
	EventVictory      = "arena.victory"
	EventDefeat       = "arena.defeat"
)

// Event payload keys
const (
	KeyBullets = "bullets"
	KeySkill   = "skill"
	KeyHits    = "hits"
	KeyHP      = "hp"
	KeyStage   = "stage"
	KeyLevel   = "level"
)

// EventTypes lists every event type a battle publishes
var EventTypes = []string{
	EventShotFired,
	EventNotEnoughMP,
	EventSkillFizzled,
	EventSkillUnknown,
	EventPlayerHit,
	EventEnemyHit,
	EventEnemyDied,
	EventStageStarted,
	EventVictory,
	EventDefeat,
}

// Event is a battle occurrence published on the event bus
type Event struct {
	*events.GameEvent

	BattleID string
	Data     map[string]any
}

// NewEvent creates a battle event. Source and target may be nil.
func NewEvent(battleID, eventType string, source, target core.Entity, data map[string]any) *Event {
	return &Event{
		GameEvent: events.NewGameEvent(eventType, source, target),
		BattleID:  battleID,
		Data:      data,
	}
}

// Int returns an integer payload value, zero when absent
func (e *Event) Int(key string) int {
	n, _ := e.Data[key].(int)
	return n
}

// Text returns a string payload value, empty when absent
func (e *Event) Text(key string) string {
	s, _ := e.Data[key].(string)
	return s
}

// Describe renders a battle event as a log line
func Describe(ev events.Event) string {
	e, ok := ev.(*Event)
	if !ok {
		return ev.Type()
	}

	switch e.Type() {
	case EventShotFired:
		n := e.Int(KeyBullets)
		if n == 1 {
			return "Player fired a bullet"
		}
		return fmt.Sprintf("Player fired %d bullets", n)
	case EventNotEnoughMP:
		return "Not enough MP to shoot"
	case EventSkillFizzled:
		return fmt.Sprintf("Not enough MP to cast %s", e.Text(KeySkill))
	case EventSkillUnknown:
		return fmt.Sprintf("Unknown skill %q", e.Text(KeySkill))
	case EventPlayerHit:
		return fmt.Sprintf("Player took %d hit(s), HP %d", e.Int(KeyHits), e.Int(KeyHP))
	case EventEnemyHit:
		return fmt.Sprintf("Enemy took %d hit(s), HP %d", e.Int(KeyHits), e.Int(KeyHP))
	case EventEnemyDied:
		return fmt.Sprintf("Enemy level %d defeated", e.Int(KeyLevel))
	case EventStageStarted:
		return fmt.Sprintf("Stage %d: enemy level %d appears", e.Int(KeyStage)+1, e.Int(KeyLevel))
	case EventVictory:
		return "All stages cleared"
	case EventDefeat:
		return "Player was defeated"
	default:
		return ev.Type()
	}
}
