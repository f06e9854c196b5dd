// Package render draws a sim.Snapshot as text, one line per floor from the top down.
//
// Each line starts with the floor column: the floor number followed by the count of
// passengers waiting to go up ("3^") and down ("1v"). Then comes one column per car,
// filled only on the car's floor with its state ('w' waiting or exchanging, '^' moving
// up, 'v' moving down), its direction sign and its riders' destinations:
//
//	 2 1v                   wv1
//	 1 1^ 1v
//	 0          w^2,3
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/inference-sim/elevator-sim/sim"
)

const (
	floorWidth = 11 // "NN K^ Kv" with room for three-digit counts
	riderWidth = 2
)

// Draw renders the snapshot. Trailing spaces are trimmed from every line.
func Draw(snap sim.Snapshot) string {
	lines := make([]string, 0, len(snap.Floors))
	for i := len(snap.Floors) - 1; i >= 0; i-- {
		floor := snap.Floors[i]
		parts := []string{pad(drawFloor(floor), floorWidth)}
		for _, e := range snap.Elevators {
			width := carWidth(e.Capacity)
			if e.Floor == floor.Number {
				parts = append(parts, pad(drawCar(e), width))
			} else {
				parts = append(parts, strings.Repeat(" ", width))
			}
		}
		lines = append(lines, strings.TrimRight(strings.Join(parts, " "), " "))
	}
	return strings.Join(lines, "\n")
}

// Header is the status line printed above the frame drawn after tick step.
func Header(step int64, snap sim.Snapshot) string {
	oldest := "None"
	if snap.OldestWait >= 0 {
		oldest = strconv.FormatInt(snap.OldestWait, 10)
	}
	return fmt.Sprintf("step:%d oldest:%s transported:%d", step, oldest, snap.Transported)
}

func carWidth(capacity int) int {
	return 2 + (riderWidth+1)*capacity
}

func drawFloor(f sim.FloorView) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%2d", f.Number)
	if f.Up > 0 {
		fmt.Fprintf(&sb, " %d^", f.Up)
	}
	if f.Down > 0 {
		fmt.Fprintf(&sb, " %dv", f.Down)
	}
	return sb.String()
}

func drawCar(e sim.ElevatorView) string {
	var sb strings.Builder
	sb.WriteByte(stateSymbol(e.Action))
	sb.WriteByte(directionSymbol(e.Direction))
	for i, d := range e.Destinations {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(d))
	}
	return sb.String()
}

func stateSymbol(a sim.Action) byte {
	switch a {
	case sim.ActionGoUp:
		return '^'
	case sim.ActionGoDown:
		return 'v'
	default:
		return 'w'
	}
}

func directionSymbol(d sim.Direction) byte {
	if d == sim.DirectionDown {
		return 'v'
	}
	return '^'
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
