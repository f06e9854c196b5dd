// Tracks simulation-wide and per-elevator statistics such as passengers transported,
// wait times and floors travelled.

package sim

import (
	"fmt"
	"sort"

	"github.com/tiendc/go-deepcopy"
	"gonum.org/v1/gonum/stat"
)

// Metrics aggregates statistics about the simulation for final reporting.
// Fields are exported so a finished run can be serialized as-is.
type Metrics struct {
	Injected    int     `json:"injected"`    // passengers that entered the system
	Transported int     `json:"transported"` // passengers delivered to their destination
	Waits       []int64 `json:"-"`           // per delivered passenger, ticks from arrival to delivery
	TotalMoves  int64   `json:"total_moves"` // floors travelled by all cars

	ElevatorMoves      map[int]int64 `json:"elevator_moves"`      // car id -> floors travelled
	ElevatorDeliveries map[int]int   `json:"elevator_deliveries"` // car id -> passengers delivered
}

// NewMetrics creates an empty Metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		ElevatorMoves:      make(map[int]int64),
		ElevatorDeliveries: make(map[int]int),
	}
}

func (m *Metrics) registerElevator(id int) {
	m.ElevatorMoves[id] = 0
	m.ElevatorDeliveries[id] = 0
}

func (m *Metrics) recordMove(elevatorID int) {
	m.TotalMoves++
	m.ElevatorMoves[elevatorID]++
}

func (m *Metrics) recordDelivery(d Delivery) {
	m.Transported++
	m.Waits = append(m.Waits, d.WaitTicks)
	m.ElevatorDeliveries[d.ElevatorID]++
}

// Clone returns an independent copy, so a report taken mid-run is not changed by
// later ticks.
func (m *Metrics) Clone() *Metrics {
	out := &Metrics{}
	if err := deepcopy.Copy(out, m); err != nil {
		panic(fmt.Sprintf("copying metrics: %v", err))
	}
	return out
}

// WaitSummary describes the distribution of delivered passengers' wait times, in ticks.
type WaitSummary struct {
	Count  int     `json:"count"`
	Min    int64   `json:"min"`
	Max    int64   `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P90    float64 `json:"p90"`
}

// Summary computes wait statistics over every delivered passenger.
// Quantiles are empirical: each is one of the observed waits.
func (m *Metrics) Summary() WaitSummary {
	if len(m.Waits) == 0 {
		return WaitSummary{}
	}
	xs := make([]float64, len(m.Waits))
	for i, w := range m.Waits {
		xs[i] = float64(w)
	}
	sort.Float64s(xs)
	return WaitSummary{
		Count:  len(xs),
		Min:    int64(xs[0]),
		Max:    int64(xs[len(xs)-1]),
		Mean:   stat.Mean(xs, nil),
		Median: stat.Quantile(0.5, stat.Empirical, xs, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, xs, nil),
	}
}
