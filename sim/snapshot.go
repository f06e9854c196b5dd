package sim

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"
)

// FloorView is the observable state of one floor.
type FloorView struct {
	Number int
	Up     int // waiting passengers heading up
	Down   int // waiting passengers heading down
}

// ElevatorView is the observable state of one car.
type ElevatorView struct {
	ID             int
	Floor          int
	Capacity       int
	Action         Action
	Direction      Direction
	RemainingTicks int64
	Destinations   []int // one entry per rider, sorted
}

// Snapshot is a read-only view of the building after a tick. It shares no memory
// with the simulator.
type Snapshot struct {
	Tick        int64
	Floors      []FloorView
	Elevators   []ElevatorView
	Transported int
	OldestWait  int64
}

// Snapshot captures the current state for rendering or comparison.
func (sim *Simulator) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        sim.Clock,
		Floors:      make([]FloorView, len(sim.Floors)),
		Elevators:   make([]ElevatorView, len(sim.Elevators)),
		Transported: sim.Metrics.Transported,
		OldestWait:  sim.OldestWait(),
	}
	for i, f := range sim.Floors {
		s.Floors[i] = FloorView{Number: f.Number, Up: f.CountUp(), Down: f.CountDown()}
	}
	for i, e := range sim.Elevators {
		s.Elevators[i] = ElevatorView{
			ID:             e.ID,
			Floor:          e.Floor,
			Capacity:       e.Capacity,
			Action:         e.Action,
			Direction:      e.Direction,
			RemainingTicks: e.RemainingTicks,
			Destinations:   e.Destinations(),
		}
	}
	return s
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	var out Snapshot
	if err := deepcopy.Copy(&out, &s); err != nil {
		panic(fmt.Sprintf("copying snapshot: %v", err))
	}
	return out
}
