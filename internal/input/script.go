package input

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/vmath"
)

// Step is one line of an input script: either an event to queue or a pause
type Step struct {
	Event Event
	Wait  time.Duration
}

// ParseScript reads an input script. Each line is one of:
//
//	move <dx> <dy>
//	shoot [<x> <y>]
//	cast <skill>
//	key <name>
//	wait <seconds>
//
// Blank lines and lines starting with # are skipped.
func ParseScript(r io.Reader) ([]Step, error) {
	var steps []Step

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		step, err := ParseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo).WithMeta("line", lineNo)
		}
		steps = append(steps, step)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read script")
	}

	return steps, nil
}

// ParseLine parses a single script line
func ParseLine(line string) (Step, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Step{}, errors.InvalidArgument("empty line")
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "move":
		nums, err := parseFloats(cmd, args, 2)
		if err != nil {
			return Step{}, err
		}
		return Step{Event: Move{DX: nums[0], DY: nums[1]}}, nil

	case "shoot":
		if len(args) == 0 {
			return Step{Event: Shoot{}}, nil
		}
		nums, err := parseFloats(cmd, args, 2)
		if err != nil {
			return Step{}, err
		}
		return Step{Event: Shoot{Target: &vmath.Point{X: nums[0], Y: nums[1]}}}, nil

	case "cast":
		if len(args) != 1 {
			return Step{}, errors.InvalidArgumentf("cast expects 1 argument, got %d", len(args))
		}
		return Step{Event: Cast{Skill: strings.ToLower(args[0])}}, nil

	case "key":
		if len(args) != 1 {
			return Step{}, errors.InvalidArgumentf("key expects 1 argument, got %d", len(args))
		}
		ev, ok := FromKey(args[0])
		if !ok {
			return Step{}, errors.InvalidArgumentf("unknown key %q", args[0])
		}
		return Step{Event: ev}, nil

	case "wait":
		nums, err := parseFloats(cmd, args, 1)
		if err != nil {
			return Step{}, err
		}
		if nums[0] < 0 {
			return Step{}, errors.InvalidArgumentf("wait must not be negative, got %v", nums[0])
		}
		return Step{Wait: time.Duration(nums[0] * float64(time.Second))}, nil

	default:
		return Step{}, errors.InvalidArgumentf("unknown command %q", cmd)
	}
}

func parseFloats(cmd string, args []string, want int) ([]float64, error) {
	if len(args) != want {
		return nil, errors.InvalidArgumentf("%s expects %d arguments, got %d", cmd, want, len(args))
	}

	out := make([]float64, want)
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.InvalidArgumentf("%s: %q is not a finite number", cmd, arg)
		}
		out[i] = v
	}
	return out, nil
}
