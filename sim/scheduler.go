package sim

import (
	"fmt"
	"sort"

	"github.com/inference-sim/elevator-sim/sim/trace"
)

// Scheduler is a dispatch strategy. The Simulator calls the Notify* methods while it
// applies arrivals and boarding, and Decide once per tick.
//
// Strategies never receive passengers and never mutate engine state. They keep their own
// call and target bookkeeping, keyed by floor number and car index.
type Scheduler interface {
	// NotifyCallUp reports a waiting passenger at floor who wants to go up.
	// Idempotent until the call is served.
	NotifyCallUp(floor int)
	// NotifyCallDown reports a waiting passenger at floor who wants to go down.
	// Idempotent until the call is served.
	NotifyCallDown(floor int)
	// NotifyDestination reports that a rider of car elevatorID wants to alight at floor.
	NotifyDestination(elevatorID int, floor int)
	// Decide returns exactly one action per car, in car-id order, given each car's
	// current floor. Decisions for cars still busy with a multi-tick action are ignored.
	Decide(currentFloors []int) []Action
}

// CarRegistrar is implemented by strategies that keep per-car state. The Simulator calls
// RegisterCar for every car it adds, before that car's first Decide.
type CarRegistrar interface {
	RegisterCar(elevatorID int, capacity int, startFloor int)
}

// SchedulerConfig carries what a strategy may know about the building.
type SchedulerConfig struct {
	FloorCount        int
	StartFloor        int
	Capacities        []int // per car; cars seen before RegisterCar and beyond this list are unbounded
	BoardingTicks     int64
	RestingFloor      int
	DropOverflowCalls bool
	// Trace, when non-nil, receives call-assignment records.
	Trace *trace.SimulationTrace
}

const (
	// StrategySweep is the directional-sweep strategy with cost-based car selection.
	StrategySweep = "sweep"
	// StrategyShuttle sweeps every car through the whole building.
	StrategyShuttle = "shuttle"
)

// validStrategies is the set of recognized strategy names.
// Empty string selects the default (sweep).
var validStrategies = map[string]bool{"": true, StrategySweep: true, StrategyShuttle: true}

// IsValidStrategy reports whether name is a recognized strategy.
func IsValidStrategy(name string) bool {
	return validStrategies[name]
}

// ValidStrategyNames returns the non-empty strategy names in sorted order.
func ValidStrategyNames() []string {
	names := make([]string, 0, len(validStrategies))
	for name := range validStrategies {
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// NewScheduler creates a Scheduler by name.
// Valid names: "sweep" (default), "shuttle". Empty string selects sweep.
// Panics on unrecognized names.
func NewScheduler(name string, cfg SchedulerConfig) Scheduler {
	if !IsValidStrategy(name) {
		panic(fmt.Sprintf("unknown strategy %q", name))
	}
	switch name {
	case "", StrategySweep:
		return NewDirectionalSweep(cfg)
	case StrategyShuttle:
		return NewShuttle(cfg)
	default:
		panic(fmt.Sprintf("unhandled strategy %q", name))
	}
}
