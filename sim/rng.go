package sim

import (
	"hash/fnv"
	"math/rand"
)

// SimulationKey is the seed a run's traffic is drawn from. Equal keys and equal level
// settings give equal arrivals, hence equal results.
type SimulationKey int64

// NewSimulationKey wraps a level or CLI seed.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// Random streams. Each gets its own generator so drawing from one never shifts another.
const (
	// SubsystemArrivals decides whether a passenger shows up on a tick and at which
	// floor. It is seeded with the key itself, so a level seed names a traffic pattern.
	SubsystemArrivals = "arrivals"

	// SubsystemDestinations picks the floor a new passenger asks for.
	SubsystemDestinations = "destinations"
)

// PartitionedRNG hands out one *rand.Rand per named stream. Streams other than
// arrivals are seeded with key ^ fnv1a64(name). Reweighting destinations therefore
// leaves arrival ticks and source floors untouched.
//
// Like the Simulator, it belongs to a single goroutine.
type PartitionedRNG struct {
	key     SimulationKey
	streams map[string]*rand.Rand
}

// NewPartitionedRNG creates the streams for key lazily, on first use.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:     key,
		streams: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns the generator for the named stream, creating it on first use.
// Repeated calls return the same generator.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.streams[name]; ok {
		return rng
	}
	seed := int64(p.key)
	if name != SubsystemArrivals {
		seed ^= fnv1a64(name)
	}
	rng := rand.New(rand.NewSource(seed))
	p.streams[name] = rng
	return rng
}

// Key returns the key the streams derive from.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
