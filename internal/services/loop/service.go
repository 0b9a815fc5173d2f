// Package loop drives a battle in real time: it measures the time between
// frames with a clock and feeds it to the battle as the tick delta.
package loop

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
)

// Service defines the frame loop operations
type Service interface {
	// Step ticks the battle once with the time elapsed since the previous
	// step. The first step ticks with a zero delta.
	Step(ctx context.Context) (*battle.TickOutput, error)

	// Run steps once per frame until the context ends, the battle reaches a
	// terminal outcome, MaxTicks steps have run, or a tick fails. It returns
	// the last tick output.
	Run(ctx context.Context) (*battle.TickOutput, error)
}

// Config holds the dependencies for the frame loop
type Config struct {
	Battle        battle.Service
	Clock         clock.Clock
	FrameInterval time.Duration

	// MaxTicks stops Run after this many steps. Zero means no limit.
	MaxTicks uint64
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Battle == nil {
		vb.RequiredField("Battle")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.FrameInterval <= 0 {
		vb.Fieldf("FrameInterval", "must be positive, got %s", c.FrameInterval)
	}

	return vb.Build()
}

type service struct {
	battle   battle.Service
	clock    clock.Clock
	interval time.Duration
	maxTicks uint64

	last  time.Time
	steps uint64
}

// NewService creates a frame loop for the configured battle
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{
		battle:   cfg.Battle,
		clock:    cfg.Clock,
		interval: cfg.FrameInterval,
		maxTicks: cfg.MaxTicks,
	}, nil
}

// Step ticks the battle with the time elapsed since the previous step
func (s *service) Step(ctx context.Context) (*battle.TickOutput, error) {
	now := s.clock.Now()

	var delta time.Duration
	if !s.last.IsZero() {
		// a clock stepping backwards stalls the world for a frame
		delta = max(now.Sub(s.last), 0)
	}
	s.last = now
	s.steps++

	out, err := s.battle.Tick(ctx, &battle.TickInput{Delta: delta})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to tick battle at step %d", s.steps)
	}

	return out, nil
}

// Run steps the battle once per frame of the clock's ticker
func (s *service) Run(ctx context.Context) (*battle.TickOutput, error) {
	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "Frame loop started",
		"frame_interval", s.interval,
		"max_ticks", s.maxTicks,
	)

	var last *battle.TickOutput
	for {
		if ctx.Err() != nil {
			slog.InfoContext(ctx, "Frame loop stopped", "steps", s.steps)
			return last, nil
		}

		select {
		case <-ctx.Done():
			continue
		case <-ticker.C():
		}

		out, err := s.Step(ctx)
		if err != nil {
			return last, err
		}
		last = out

		if out.Outcome.Terminal() {
			slog.InfoContext(ctx, "Battle finished",
				"outcome", out.Outcome.String(),
				"steps", s.steps,
			)
			return last, nil
		}
		if s.maxTicks > 0 && s.steps >= s.maxTicks {
			slog.InfoContext(ctx, "Frame loop hit tick limit", "steps", s.steps)
			return last, nil
		}
	}
}
