package workload

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/elevator-sim/sim"
)

// LevelSampler generates a level's probabilistic traffic: at most one passenger per
// tick with probability person_per_step, source and destination drawn from the level's
// floor weights. Arrival timing and destinations use separate RNG streams.
type LevelSampler struct {
	rate         float64
	sources      *FloorSampler
	destinations *FloorSampler
	arrivalRNG   *rand.Rand
	destRNG      *rand.Rand
}

// NewLevelSampler creates the sampler for level, seeded from rng.
func NewLevelSampler(level LevelSpec, rng *sim.PartitionedRNG) *LevelSampler {
	return &LevelSampler{
		rate:         level.PersonPerStep,
		sources:      NewFloorSampler(level.FloorSource, level.Floors),
		destinations: NewFloorSampler(level.FloorDest, level.Floors),
		arrivalRNG:   rng.ForSubsystem(sim.SubsystemArrivals),
		destRNG:      rng.ForSubsystem(sim.SubsystemDestinations),
	}
}

// Next implements sim.ArrivalFunc.
func (s *LevelSampler) Next(tick int64) (sim.Arrival, bool) {
	if s.rate <= 0 || len(s.sources.weights) < 2 {
		return sim.Arrival{}, false
	}
	if s.arrivalRNG.Float64() >= s.rate {
		return sim.Arrival{}, false
	}
	src := s.sources.Sample(s.arrivalRNG, -1)
	dst := s.destinations.Sample(s.destRNG, src)
	logrus.Debugf("[tick %07d] generated arrival %d->%d", tick, src, dst)
	return sim.Arrival{Source: src, Destination: dst}, true
}
