package workload

import (
	"math/rand"
	"sort"
)

// FloorSampler draws floors from relative weights using inverse CDF via binary search.
type FloorSampler struct {
	weights []float64 // per floor, all >= 0
}

// NewFloorSampler creates a sampler over floorCount floors. Floors missing from weights
// get weight 0; an empty or all-zero map means uniform.
func NewFloorSampler(weights map[int]float64, floorCount int) *FloorSampler {
	w := make([]float64, floorCount)
	total := 0.0
	for floor, p := range weights {
		if floor >= 0 && floor < floorCount && p > 0 {
			w[floor] = p
			total += p
		}
	}
	if total == 0 {
		for i := range w {
			w[i] = 1
		}
	}
	return &FloorSampler{weights: w}
}

// Sample returns a floor other than exclude (pass -1 to allow every floor). When every
// allowed floor has weight 0 the choice is uniform over the allowed floors.
func (s *FloorSampler) Sample(rng *rand.Rand, exclude int) int {
	floors := make([]int, 0, len(s.weights))
	cdf := make([]float64, 0, len(s.weights))
	cumulative := 0.0
	for floor, w := range s.weights {
		if floor == exclude || w <= 0 {
			continue
		}
		cumulative += w
		floors = append(floors, floor)
		cdf = append(cdf, cumulative)
	}
	if len(floors) == 0 {
		return s.uniform(rng, exclude)
	}
	u := rng.Float64() * cumulative
	idx := sort.SearchFloat64s(cdf, u)
	if idx < len(cdf) && cdf[idx] == u {
		idx++ // u lies on the boundary, which belongs to the next bucket
	}
	if idx >= len(floors) {
		idx = len(floors) - 1
	}
	return floors[idx]
}

func (s *FloorSampler) uniform(rng *rand.Rand, exclude int) int {
	n := len(s.weights)
	if exclude < 0 || exclude >= n {
		return rng.Intn(n)
	}
	f := rng.Intn(n - 1)
	if f >= exclude {
		f++
	}
	return f
}
