package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inference-sim/elevator-sim/sim"
)

func collect(next sim.ArrivalFunc, ticks int64) map[int64]sim.Arrival {
	out := make(map[int64]sim.Arrival)
	for tick := int64(0); tick < ticks; tick++ {
		if a, ok := next(tick); ok {
			out[tick] = a
		}
	}
	return out
}

func TestLevelSampler_Deterministic(t *testing.T) {
	level := validLevel()
	a := NewLevelSampler(level, sim.NewPartitionedRNG(sim.NewSimulationKey(level.Seed)))
	b := NewLevelSampler(level, sim.NewPartitionedRNG(sim.NewSimulationKey(level.Seed)))

	assert.Equal(t, collect(a.Next, 500), collect(b.Next, 500))
}

func TestLevelSampler_ArrivalsAreValid(t *testing.T) {
	level := validLevel()
	level.PersonPerStep = 0.5
	s := NewLevelSampler(level, sim.NewPartitionedRNG(sim.NewSimulationKey(3)))

	arrivals := collect(s.Next, 2000)

	// roughly person_per_step of the ticks carry an arrival
	assert.InDelta(t, 1000, len(arrivals), 100)
	for tick, a := range arrivals {
		assert.NotEqual(t, a.Source, a.Destination, "tick %d", tick)
		assert.True(t, a.Source >= 0 && a.Source < level.Floors)
		assert.True(t, a.Destination >= 0 && a.Destination < level.Floors)
	}
}

func TestLevelSampler_DestinationWeightsDoNotShiftTiming(t *testing.T) {
	// GIVEN two levels differing only in destination weights
	plain := validLevel()
	lobby := validLevel()
	lobby.FloorDest = map[int]float64{0: 10, 5: 1}

	a := collect(NewLevelSampler(plain, sim.NewPartitionedRNG(sim.NewSimulationKey(9))).Next, 300)
	b := collect(NewLevelSampler(lobby, sim.NewPartitionedRNG(sim.NewSimulationKey(9))).Next, 300)

	// THEN passengers appear on the same ticks at the same floors
	assert.Equal(t, len(a), len(b))
	for tick, arrival := range a {
		assert.Equal(t, arrival.Source, b[tick].Source, "tick %d", tick)
	}
}

func TestLevelSampler_NoTraffic(t *testing.T) {
	level := validLevel()
	level.PersonPerStep = 0
	s := NewLevelSampler(level, sim.NewPartitionedRNG(sim.NewSimulationKey(1)))
	assert.Empty(t, collect(s.Next, 100))
}
