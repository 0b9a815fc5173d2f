package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-arena/internal/input"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
)

var (
	simScript   string
	simStep     time.Duration
	simMaxTicks uint64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a scripted battle with a fixed time step",
	Long: `Simulate replays an input script against a fresh battle using a fixed
time step, then keeps ticking until the battle ends or the tick limit is hit.
The same script always produces the same battle.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&simScript, "script", "-", "input script file, - for stdin")
	simulateCmd.Flags().DurationVar(&simStep, "step", 16*time.Millisecond, "simulated time per tick")
	simulateCmd.Flags().Uint64Var(&simMaxTicks, "max-ticks", 10000, "stop after this many ticks")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if simStep <= 0 {
		return fmt.Errorf("step must be positive, got %s", simStep)
	}

	steps, err := readScript(cmd.InOrStdin(), simScript)
	if err != nil {
		return err
	}

	svc, err := newBattle(idgen.NewSequential("sim"), events.NewBus())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if _, err := simulate(ctx, svc, steps, simStep, simMaxTicks); err != nil {
		return err
	}

	st, err := svc.GetState(ctx, &battle.GetStateInput{})
	if err != nil {
		return fmt.Errorf("failed to read battle state: %w", err)
	}
	printSummary(cmd.OutOrStdout(), st)
	return nil
}

func readScript(stdin io.Reader, path string) ([]input.Step, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		r = f
	}

	steps, err := input.ParseScript(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	return steps, nil
}

// simulate feeds the script to the battle. Events between two waits land in
// the same tick; a wait ticks with the fixed step until the time has passed.
// After the script it ticks until the battle ends or maxTicks is reached.
func simulate(ctx context.Context, svc battle.Service, steps []input.Step, step time.Duration, maxTicks uint64) (*battle.TickOutput, error) {
	var (
		out     *battle.TickOutput
		ticks   uint64
		pending []input.Event
	)

	tick := func() error {
		if len(pending) > 0 {
			if _, err := svc.QueueEvents(ctx, &battle.QueueEventsInput{Events: pending}); err != nil {
				return fmt.Errorf("failed to queue events: %w", err)
			}
			pending = nil
		}

		var err error
		out, err = svc.Tick(ctx, &battle.TickInput{Delta: step})
		if err != nil {
			return fmt.Errorf("failed to tick: %w", err)
		}
		ticks++
		return nil
	}
	done := func() bool {
		return ticks >= maxTicks || (out != nil && out.Outcome.Terminal())
	}

	for _, s := range steps {
		if done() {
			return out, nil
		}
		if s.Event != nil {
			pending = append(pending, s.Event)
			continue
		}
		for waited := time.Duration(0); waited < s.Wait && !done(); waited += step {
			if err := tick(); err != nil {
				return out, err
			}
		}
	}

	for !done() {
		if err := tick(); err != nil {
			return out, err
		}
	}

	return out, nil
}
