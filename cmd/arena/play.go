package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-arena/internal/enemies"
	"github.com/KirkDiggler/rpg-arena/internal/input"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/vmath"
	"github.com/KirkDiggler/rpg-arena/internal/services/loop"
)

var (
	playFPS      int
	playDuration time.Duration
	playMaxTicks uint64
	playReport   time.Duration
)

// screen is the terminal grid clicks are given in
var screen = vmath.Rect{MinX: 0, MinY: 0, MaxX: 80, MaxY: 40}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a battle in real time, reading commands from stdin",
	Long: `Play runs the battle on a real-time frame loop. Each stdin line is one
command: the script commands (move, shoot, cast, key) plus "click <col> <row>"
to shoot at a screen cell and "quit" to stop. Status and new log lines are
printed as the battle goes.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&playFPS, "fps", 60, "frames per second")
	playCmd.Flags().DurationVar(&playDuration, "duration", 0, "stop after this long, 0 for no limit")
	playCmd.Flags().Uint64Var(&playMaxTicks, "max-ticks", 0, "stop after this many ticks, 0 for no limit")
	playCmd.Flags().DurationVar(&playReport, "report", time.Second, "status report interval")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if playFPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", playFPS)
	}
	if playReport <= 0 {
		return fmt.Errorf("report interval must be positive, got %s", playReport)
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if playDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, playDuration)
		defer cancel()
	}

	svc, err := newBattle(idgen.NewUUID("arena"), events.NewBus())
	if err != nil {
		return err
	}

	frames, err := loop.NewService(&loop.Config{
		Battle:        svc,
		Clock:         clock.New(),
		FrameInterval: time.Second / time.Duration(playFPS),
		MaxTicks:      playMaxTicks,
	})
	if err != nil {
		return fmt.Errorf("failed to create frame loop: %w", err)
	}

	out := cmd.OutOrStdout()
	if err := play(ctx, svc, frames, cmd.InOrStdin(), out, playReport); err != nil {
		return err
	}

	if _, err := svc.Quit(context.Background(), &battle.QuitInput{}); err != nil {
		slog.Warn("Failed to quit battle", "error", err)
	}

	st, err := svc.GetState(context.Background(), &battle.GetStateInput{})
	if err != nil {
		return fmt.Errorf("failed to read battle state: %w", err)
	}
	fmt.Fprintln(out)
	printSummary(out, st)
	return nil
}

// play runs the frame loop, the command reader and the status reporter
// until the loop finishes or one of them fails
func play(ctx context.Context, svc battle.Service, frames loop.Service, in io.Reader, out io.Writer, report time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Reading stdin cannot be interrupted, so the scanner lives outside the
	// group and hands lines over a channel.
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		if _, err := frames.Run(gctx); err != nil {
			return fmt.Errorf("frame loop failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		viewport := input.Viewport{Screen: screen, World: arenaBounds}
		for {
			select {
			case <-gctx.Done():
				return nil
			case line, ok := <-lines:
				if !ok {
					return nil
				}
				ev, quit, err := parseCommand(viewport, line)
				if err != nil {
					fmt.Fprintf(out, "? %v\n", err)
					continue
				}
				if quit {
					cancel()
					return nil
				}
				if ev == nil {
					continue
				}
				if _, err := svc.QueueEvents(gctx, &battle.QueueEventsInput{Events: []input.Event{ev}}); err != nil {
					return fmt.Errorf("failed to queue input: %w", err)
				}
			}
		}
	})

	g.Go(func() error {
		ticker := time.NewTicker(report)
		defer ticker.Stop()

		printed := 0
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
			}

			st, err := svc.GetState(gctx, &battle.GetStateInput{})
			if err != nil {
				return fmt.Errorf("failed to read battle state: %w", err)
			}
			for _, line := range st.Logs[min(printed, len(st.Logs)):] {
				fmt.Fprintf(out, "* %s\n", line)
			}
			printed = len(st.Logs)
			fmt.Fprintln(out, statusLine(st))
		}
	})

	return g.Wait()
}

// parseCommand turns one stdin line into an input event. Blank lines, comments
// and waits produce no event.
func parseCommand(viewport input.Viewport, line string) (input.Event, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, false, nil
	}

	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "quit", "q", "exit":
		return nil, true, nil
	case "click":
		if len(fields) != 3 {
			return nil, false, fmt.Errorf("click expects 2 arguments, got %d", len(fields)-1)
		}
		col, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, false, fmt.Errorf("click: %w", err)
		}
		row, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, false, fmt.Errorf("click: %w", err)
		}
		return viewport.Click(col, row), false, nil
	}

	step, err := input.ParseLine(line)
	if err != nil {
		return nil, false, err
	}
	return step.Event, false, nil
}

func statusLine(st *battle.GetStateOutput) string {
	enemy := "none"
	if st.Enemy != nil {
		enemy = fmt.Sprintf("L%d HP %d", st.Enemy.Level, st.Enemy.HP)
	}
	return fmt.Sprintf("[tick %d] %s | stage %d | HP %d MP %d | pos (%.1f, %.1f) | enemy %s | bullets %d",
		st.Tick, st.Outcome, min(st.Stage+1, enemies.StageCount),
		st.Player.HP, st.Player.MP,
		st.Player.X, st.Player.Y,
		enemy, len(st.Bullets),
	)
}
