// Package battle implements the battle orchestrator: one player against a
// sequence of stage enemies sharing a single bullet pool
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/KirkDiggler/rpg-arena/internal/orchestrators/battle Service

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-arena/internal/enemies"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/input"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/vmath"
	"github.com/KirkDiggler/rpg-arena/internal/skills"
)

// ShotCost is the MP a single shot costs before skills
const ShotCost = 1

// logPriority is the bus priority of the battle's own log subscriber
const logPriority = 100

// Service defines the interface for battle operations.
//
// Tick publishes battle events on the bus while holding the battle's state
// lock, and bus handlers run synchronously. A subscriber must not call back
// into the Service from its handler; GetState would deadlock.
type Service interface {
	// QueueEvents appends input events for the next tick. Safe to call from
	// any goroutine.
	QueueEvents(ctx context.Context, input *QueueEventsInput) (*QueueEventsOutput, error)

	// Tick advances the world by one step
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)

	// GetState returns a snapshot of the world after the last tick
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// Quit stops the battle. Further ticks fail.
	Quit(ctx context.Context, input *QuitInput) (*QuitOutput, error)
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	EventBus     events.EventBus
	EnemyFactory enemies.Factory
	SkillBook    *skills.Book
	IDGenerator  idgen.Generator

	// PlayerStats overrides entities.DefaultPlayerStats when set
	PlayerStats *entities.PlayerStats

	// Arena bounds the player and culls bullets that leave it. The zero
	// value leaves the world unbounded.
	Arena vmath.Rect
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.EnemyFactory == nil {
		vb.RequiredField("EnemyFactory")
	}
	if c.SkillBook == nil {
		vb.RequiredField("SkillBook")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.PlayerStats != nil {
		if c.PlayerStats.HP <= 0 {
			vb.Field("PlayerStats.HP", "must be positive")
		}
		if c.PlayerStats.MP < 0 {
			vb.Field("PlayerStats.MP", "must not be negative")
		}
		errors.ValidatePositive("PlayerStats.Speed", c.PlayerStats.Speed, vb)
		errors.ValidatePositive("PlayerStats.Radius", c.PlayerStats.Radius, vb)
	}
	if !c.Arena.IsZero() && (c.Arena.MinX >= c.Arena.MaxX || c.Arena.MinY >= c.Arena.MaxY) {
		vb.Field("Arena", "min corner must be below and left of max corner")
	}

	return vb.Build()
}

type orchestrator struct {
	id      string
	bus     events.EventBus
	factory enemies.Factory
	book    *skills.Book
	arena   vmath.Rect

	queue   *input.Queue
	running atomic.Bool
	subs    []string

	mu      sync.RWMutex
	tick    uint64
	player  *entities.Player
	stage   int
	enemy   enemies.Enemy
	bullets []entities.Bullet
	logs    []string
	outcome Outcome
}

// NewOrchestrator creates a battle with the player at full HP and MP and the
// first stage enemy in place
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	stats := entities.DefaultPlayerStats
	if cfg.PlayerStats != nil {
		stats = *cfg.PlayerStats
	}

	o := &orchestrator{
		id:      cfg.IDGenerator.Generate(),
		bus:     cfg.EventBus,
		factory: cfg.EnemyFactory,
		book:    cfg.SkillBook,
		arena:   cfg.Arena,
		queue:   input.NewQueue(),
		player:  entities.NewPlayer(cfg.IDGenerator.Generate(), stats),
	}
	o.running.Store(true)

	for _, eventType := range EventTypes {
		o.subs = append(o.subs, o.bus.SubscribeFunc(eventType, logPriority, o.record))
	}

	// The constructor holds no lock yet, so the subscriber can append freely.
	o.startStage(context.Background())

	slog.Info("Battle created",
		"battle_id", o.id,
		"player_id", o.player.ID,
		"arena_bounded", !o.arena.IsZero(),
	)

	return o, nil
}

// QueueEvents appends input events for the next tick
func (o *orchestrator) QueueEvents(_ context.Context, input *QueueEventsInput) (*QueueEventsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !o.running.Load() {
		return nil, errors.FailedPrecondition("battle is not running")
	}
	for i, ev := range input.Events {
		if ev == nil {
			return nil, errors.InvalidArgumentf("event %d is nil", i)
		}
	}

	o.queue.Push(input.Events...)

	return &QueueEventsOutput{Pending: o.queue.Len()}, nil
}

// Tick advances the world by one step
func (o *orchestrator) Tick(ctx context.Context, input *TickInput) (*TickOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Delta < 0 {
		return nil, errors.InvalidArgumentf("delta must not be negative, got %s", input.Delta)
	}
	if !o.running.Load() {
		return nil, errors.FailedPrecondition("battle is not running")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	// Quit may have won the lock while this tick waited for it
	if !o.running.Load() {
		return nil, errors.FailedPrecondition("battle is not running")
	}

	o.tick++
	pending := o.queue.Drain()
	dt := input.Delta.Seconds()

	switch o.outcome {
	case OutcomeDefeat:
		return o.tickOutput(false), nil
	case OutcomeVictory:
		// input is dropped; only the remaining player bullets move on
		o.moveBullets(dt)
		return o.tickOutput(false), nil
	}

	move, shot := o.applyInput(pending)

	o.walk(move, dt)
	if shot != nil {
		o.fire(ctx, shot)
	}

	for i := range o.bullets {
		o.bullets[i].Integrate(dt)
	}

	o.collidePlayer(ctx)
	if !o.player.IsAlive() {
		o.defeat(ctx)
	}
	died := o.tickEnemy(ctx, input.Delta)
	o.cullArena()
	o.bullets = entities.Prune(o.bullets)

	return o.tickOutput(died), nil
}

// GetState returns a snapshot of the world after the last tick
func (o *orchestrator) GetState(_ context.Context, input *GetStateInput) (*GetStateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.LogLimit < 0 {
		return nil, errors.InvalidArgumentf("log limit must not be negative, got %d", input.LogLimit)
	}

	o.mu.RLock()
	defer o.mu.RUnlock()

	logs := o.logs
	if input.LogLimit > 0 && len(logs) > input.LogLimit {
		logs = logs[len(logs)-input.LogLimit:]
	}

	out := &GetStateOutput{
		BattleID: o.id,
		Running:  o.running.Load(),
		Outcome:  o.outcome,
		Stage:    o.stage,
		Tick:     o.tick,
		Player:   o.player.Clone(),
		Bullets:  append([]entities.Bullet(nil), o.bullets...),
		Logs:     append([]string(nil), logs...),
	}
	if o.enemy != nil {
		x, y := o.enemy.Position()
		out.Enemy = &EnemyState{
			ID:    o.enemy.GetID(),
			Level: o.enemy.Level(),
			X:     x,
			Y:     y,
			HP:    o.enemy.HP(),
		}
	}

	return out, nil
}

// Quit stops the battle and detaches its log subscriber from the bus
func (o *orchestrator) Quit(ctx context.Context, input *QuitInput) (*QuitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !o.running.CompareAndSwap(true, false) {
		return nil, errors.FailedPrecondition("battle is not running")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	for _, id := range o.subs {
		if err := o.bus.Unsubscribe(id); err != nil {
			slog.WarnContext(ctx, "Failed to unsubscribe battle log",
				"battle_id", o.id,
				"subscription_id", id,
				"error", err,
			)
		}
	}
	o.subs = nil
	o.logs = append(o.logs, "Battle ended")

	slog.InfoContext(ctx, "Battle quit",
		"battle_id", o.id,
		"ticks", o.tick,
		"outcome", o.outcome.String(),
	)

	return &QuitOutput{Ticks: o.tick}, nil
}

// applyInput sums the move deltas, queues cast skills and returns the last
// shoot request of the tick
func (o *orchestrator) applyInput(pending []input.Event) (vmath.Point, *input.Shoot) {
	var move vmath.Point
	var shot *input.Shoot

	for _, ev := range pending {
		switch e := ev.(type) {
		case input.Move:
			move.X += e.DX
			move.Y += e.DY
		case input.Shoot:
			s := e
			shot = &s
		case input.Cast:
			o.player.QueueSkill(e.Skill)
		}
	}

	return move, shot
}

func (o *orchestrator) walk(move vmath.Point, dt float64) {
	if move.X == 0 && move.Y == 0 {
		return
	}
	o.player.Walk(move.X*o.player.Speed*dt, move.Y*o.player.Speed*dt)
	if !o.arena.IsZero() {
		o.player.X, o.player.Y = o.arena.Clamp(o.player.X, o.player.Y)
	}
}

// fire spends MP on a shot and expands it with the queued skills. The skill
// queue is emptied whether or not the shot goes off.
func (o *orchestrator) fire(ctx context.Context, shot *input.Shoot) {
	queued := o.player.TakeSkills()

	if o.player.MP <= 0 {
		o.publish(ctx, EventNotEnoughMP, o.player, nil, nil)
		return
	}

	base := o.player.SpawnBullet(shot.Target)
	o.player.SpendMP(ShotCost)
	fired := []entities.Bullet{base}

	for _, name := range queued {
		skill, ok := o.book.Lookup(name)
		if !ok {
			o.publish(ctx, EventSkillUnknown, o.player, nil, map[string]any{KeySkill: name})
			continue
		}
		if !o.player.SpendMP(skill.Cost) {
			o.publish(ctx, EventSkillFizzled, o.player, nil, map[string]any{KeySkill: name})
			continue
		}
		extra, err := o.book.Extra(skill, base)
		if err != nil {
			slog.WarnContext(ctx, "Skill failed",
				"battle_id", o.id,
				"skill", name,
				"error", err,
			)
			continue
		}
		fired = append(fired, extra...)
	}

	o.bullets = append(o.bullets, fired...)
	o.publish(ctx, EventShotFired, o.player, o.enemy, map[string]any{KeyBullets: len(fired)})
}

// collidePlayer flags enemy bullets touching the player, one HP per bullet
func (o *orchestrator) collidePlayer(ctx context.Context) {
	hits := 0
	for i := range o.bullets {
		b := &o.bullets[i]
		if b.IsPlayer || b.PendingRemoval {
			continue
		}
		if b.Within(o.player.X, o.player.Y, o.player.Radius) {
			b.PendingRemoval = true
			hits++
		}
	}
	if hits == 0 {
		return
	}

	o.player.Damage(hits)
	o.publish(ctx, EventPlayerHit, o.enemy, o.player, map[string]any{
		KeyHits: hits,
		KeyHP:   o.player.HP,
	})
}

// tickEnemy runs the active enemy and reports whether it died this tick
func (o *orchestrator) tickEnemy(ctx context.Context, delta time.Duration) bool {
	if o.enemy == nil {
		return false
	}

	switch o.enemy.Tick(delta, o.player) {
	case enemies.ActionDie:
		dead := o.enemy
		o.publish(ctx, EventEnemyDied, o.player, dead, map[string]any{KeyLevel: dead.Level()})
		slog.InfoContext(ctx, "Enemy defeated",
			"battle_id", o.id,
			"enemy_id", dead.GetID(),
			"stage", o.stage,
		)

		o.stage++
		o.bullets = entities.KeepPlayerOwned(o.bullets)
		if o.outcome == OutcomeDefeat {
			// a dead player does not see the next stage
			o.enemy = nil
			return true
		}
		o.startStage(ctx)
		return true

	default:
		o.bullets = append(o.bullets, o.enemy.DrainBullets()...)

		before := o.enemy.HP()
		o.enemy.Hurt(o.bullets)
		if hits := before - o.enemy.HP(); hits > 0 {
			o.publish(ctx, EventEnemyHit, o.player, o.enemy, map[string]any{
				KeyHits: hits,
				KeyHP:   o.enemy.HP(),
			})
		}
		return false
	}
}

// startStage asks the factory for the current stage's enemy, or declares
// victory when there is none
func (o *orchestrator) startStage(ctx context.Context) {
	next, ok := o.factory.Create(o.stage)
	if !ok {
		o.enemy = nil
		o.outcome = OutcomeVictory
		o.publish(ctx, EventVictory, o.player, nil, map[string]any{KeyStage: o.stage})
		slog.InfoContext(ctx, "Battle won",
			"battle_id", o.id,
			"stages", o.stage,
		)
		return
	}

	o.enemy = next
	o.publish(ctx, EventStageStarted, o.player, next, map[string]any{
		KeyStage: o.stage,
		KeyLevel: next.Level(),
	})
}

// defeat ends the battle for a player who ran out of HP. It runs before the
// enemy update so a player dying alongside the last enemy still loses.
func (o *orchestrator) defeat(ctx context.Context) {
	o.outcome = OutcomeDefeat
	o.publish(ctx, EventDefeat, o.player, o.enemy, nil)
	slog.InfoContext(ctx, "Battle lost",
		"battle_id", o.id,
		"stage", o.stage,
		"tick", o.tick,
	)
}

// moveBullets integrates, culls and prunes the bullet pool
func (o *orchestrator) moveBullets(dt float64) {
	for i := range o.bullets {
		o.bullets[i].Integrate(dt)
	}
	o.cullArena()
	o.bullets = entities.Prune(o.bullets)
}

// cullArena flags bullets that left the arena
func (o *orchestrator) cullArena() {
	if o.arena.IsZero() {
		return
	}
	for i := range o.bullets {
		b := &o.bullets[i]
		if !o.arena.Contains(b.X, b.Y) {
			b.PendingRemoval = true
		}
	}
}

func (o *orchestrator) tickOutput(died bool) *TickOutput {
	return &TickOutput{
		Tick:      o.tick,
		Outcome:   o.outcome,
		Stage:     o.stage,
		PlayerHP:  o.player.HP,
		Bullets:   len(o.bullets),
		EnemyDied: died,
	}
}

// publish sends a battle event on the bus. Handlers run synchronously, so
// callers already hold the state lock.
func (o *orchestrator) publish(ctx context.Context, eventType string, source, target core.Entity, data map[string]any) {
	if err := o.bus.Publish(ctx, NewEvent(o.id, eventType, source, target, data)); err != nil {
		slog.WarnContext(ctx, "Failed to publish battle event",
			"battle_id", o.id,
			"event_type", eventType,
			"error", err,
		)
	}
}

// record appends a log line for every event this battle published
func (o *orchestrator) record(_ context.Context, ev events.Event) error {
	if e, ok := ev.(*Event); !ok || e.BattleID != o.id {
		return nil
	}
	o.logs = append(o.logs, Describe(ev))
	return nil
}
