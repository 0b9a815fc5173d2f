package main

import (
	"fmt"
	"io"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-arena/internal/enemies"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/vmath"
	"github.com/KirkDiggler/rpg-arena/internal/skills"
)

// arenaBounds is the playfield both commands use. The stage enemies sit at
// (30, 30), well inside it.
var arenaBounds = vmath.Rect{MinX: -10, MinY: -10, MaxX: 70, MaxY: 70}

// newBattle wires a battle with the standard stages and skill book
func newBattle(idGen idgen.Generator, bus events.EventBus) (battle.Service, error) {
	book, err := skills.NewBook(&skills.Config{Roller: dice.DefaultRoller})
	if err != nil {
		return nil, fmt.Errorf("failed to create skill book: %w", err)
	}

	svc, err := battle.NewOrchestrator(&battle.Config{
		EventBus:     bus,
		EnemyFactory: enemies.NewFactory(idGen),
		SkillBook:    book,
		IDGenerator:  idGen,
		Arena:        arenaBounds,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create battle: %w", err)
	}

	return svc, nil
}

// printSummary writes the final state of a battle
func printSummary(w io.Writer, st *battle.GetStateOutput) {
	fmt.Fprintf(w, "Outcome: %s\n", st.Outcome)
	fmt.Fprintf(w, "Stage:   %d/%d\n", st.Stage, enemies.StageCount)
	fmt.Fprintf(w, "Ticks:   %d\n", st.Tick)
	fmt.Fprintf(w, "Player:  HP %d/%d  MP %d/%d  at (%.1f, %.1f)\n",
		st.Player.HP, st.Player.MaxHP,
		st.Player.MP, st.Player.MaxMP,
		st.Player.X, st.Player.Y,
	)
	if st.Enemy != nil {
		fmt.Fprintf(w, "Enemy:   level %d  HP %d\n", st.Enemy.Level, st.Enemy.HP)
	}
	fmt.Fprintln(w, "\nLog:")
	for _, line := range st.Logs {
		fmt.Fprintf(w, "  %s\n", line)
	}
}
