// Package input defines the discrete events the battle consumes and the
// small translation helpers a presentation layer needs to produce them
package input

import (
	"sync"

	"github.com/KirkDiggler/rpg-arena/internal/pkg/vmath"
)

// Event is one discrete input. The set is closed: Move, Shoot and Cast.
type Event interface {
	isEvent()
}

// Move asks the player to walk along (DX, DY). Moves queued in the same
// tick add up.
type Move struct {
	DX float64
	DY float64
}

// Shoot asks the player to fire. A nil Target fires along the facing
// direction. Only the last Shoot queued in a tick is honored.
type Shoot struct {
	Target *vmath.Point
}

// Cast queues an ability for the next shot
type Cast struct {
	Skill string
}

func (Move) isEvent()  {}
func (Shoot) isEvent() {}
func (Cast) isEvent()  {}

// Queue is a FIFO of pending events. Producers may push from any goroutine;
// the battle drains it at the start of every tick.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends events in order
func (q *Queue) Push(events ...Event) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.events = append(q.events, events...)
}

// Drain returns every pending event in arrival order and empties the queue
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.events
	q.events = nil
	return out
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.events)
}
