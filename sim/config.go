package sim

import "fmt"

// DefaultBoardingTicks is how long a boarding action keeps the doors open.
const DefaultBoardingTicks = 2

// BuildingConfig groups the fixed shape of the building and its cars.
type BuildingConfig struct {
	FloorCount int   // number of floors (must be > 0)
	StartFloor int   // floor every car starts at (typically 0)
	Capacities []int // one entry per car, each > 0
}

// TimingConfig groups action durations and the starvation bound.
type TimingConfig struct {
	BoardingTicks int64 // ticks per boarding action (default 2, must be >= 1)
	MaxWaitTicks  int64 // maximum tolerable wait before a run counts as starved (0 = unbounded)
}

// PolicyConfig groups strategy selection and strategy tuning.
type PolicyConfig struct {
	Strategy     string // "sweep" (default) or "shuttle"
	RestingFloor int    // floor an idle sweep car drifts to (default 0)
	// DropOverflowCalls keeps the legacy behaviour where a call left behind by a full
	// car stopped at that floor is treated as covered by that car, and so dropped once
	// the car leaves. When false (default) the leftover call is reassigned.
	DropOverflowCalls bool
}

// SimConfig groups every scalar the core is constructed from.
// The core never parses text; loaders produce an already-populated SimConfig.
type SimConfig struct {
	BuildingConfig
	TimingConfig
	PolicyConfig
}

// WithDefaults returns a copy with zero-valued optional fields filled in.
func (c SimConfig) WithDefaults() SimConfig {
	if c.BoardingTicks == 0 {
		c.BoardingTicks = DefaultBoardingTicks
	}
	if c.Strategy == "" {
		c.Strategy = StrategySweep
	}
	return c
}

// Validate checks every field. It does not apply defaults.
func (c SimConfig) Validate() error {
	if c.FloorCount <= 0 {
		return fmt.Errorf("floor_count must be positive, got %d", c.FloorCount)
	}
	if c.StartFloor < 0 || c.StartFloor >= c.FloorCount {
		return fmt.Errorf("start_floor %d outside [0, %d): %w", c.StartFloor, c.FloorCount, ErrInvalidFloor)
	}
	if c.RestingFloor < 0 || c.RestingFloor >= c.FloorCount {
		return fmt.Errorf("resting_floor %d outside [0, %d): %w", c.RestingFloor, c.FloorCount, ErrInvalidFloor)
	}
	for i, capacity := range c.Capacities {
		if capacity <= 0 {
			return fmt.Errorf("elevator[%d]: capacity must be positive, got %d", i, capacity)
		}
	}
	if c.BoardingTicks < 0 {
		return fmt.Errorf("boarding_ticks must be non-negative, got %d", c.BoardingTicks)
	}
	if c.MaxWaitTicks < 0 {
		return fmt.Errorf("max_wait_ticks must be non-negative, got %d", c.MaxWaitTicks)
	}
	if !IsValidStrategy(c.Strategy) {
		return fmt.Errorf("unknown strategy %q; valid: %v", c.Strategy, ValidStrategyNames())
	}
	return nil
}

// SchedulerConfig derives the strategy configuration from the simulation configuration,
// so strategy and engine agree on building shape and timing.
func (c SimConfig) SchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		FloorCount:        c.FloorCount,
		StartFloor:        c.StartFloor,
		Capacities:        append([]int(nil), c.Capacities...),
		BoardingTicks:     c.BoardingTicks,
		RestingFloor:      c.RestingFloor,
		DropOverflowCalls: c.DropOverflowCalls,
	}
}
