package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Arrival is one passenger request yielded by a traffic source.
type Arrival struct {
	Source      int `yaml:"source" json:"source"`
	Destination int `yaml:"destination" json:"destination"`
}

// ArrivalFunc is consulted once per tick, before the tick runs. It returns false when
// no passenger arrives at that tick.
type ArrivalFunc func(tick int64) (Arrival, bool)

// TickObserver is called after every tick with the tick just executed and the
// passengers it delivered.
type TickObserver func(tick int64, delivered []Delivery, sim *Simulator)

// RunResult is the outcome of Run.
type RunResult struct {
	RunID       string      `json:"run_id"`
	Strategy    string      `json:"strategy"`
	Ticks       int64       `json:"ticks"`
	Waiting     int         `json:"waiting"`
	Rejected    int         `json:"rejected_arrivals"`
	Starved     bool        `json:"starved"`
	StarvedWait int64       `json:"starved_wait,omitempty"`
	StarvedTick int64       `json:"starved_tick,omitempty"`
	Waits       WaitSummary `json:"waits"`
	Metrics     *Metrics    `json:"metrics"`
}

// NewRunID derives a stable identifier for a run from its seed and a label (typically
// the level name), so repeated runs of the same configuration share an id.
func NewRunID(seed int64, label string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("elevator-sim/%s/%d", label, seed))).String()
}

// Run drives the simulation until the clock reaches steps or a passenger has waited
// longer than MaxWaitTicks. Each iteration injects at most one arrival, then ticks.
// A nil arrivals function runs without new traffic.
func (sim *Simulator) Run(steps int64, arrivals ArrivalFunc, observers ...TickObserver) *RunResult {
	result := &RunResult{Strategy: sim.Config.Strategy}
	for sim.Clock < steps {
		now := sim.Clock
		if arrivals != nil {
			if a, ok := arrivals(now); ok {
				if _, err := sim.InjectArrival(a.Source, a.Destination, now); err != nil {
					logrus.Warnf("[tick %07d] skipping arrival: %v", now, err)
					result.Rejected++
				}
			}
		}

		delivered := sim.Tick()
		for _, observe := range observers {
			observe(now, delivered, sim)
		}

		if sim.Config.MaxWaitTicks > 0 && sim.IsStarved(sim.Config.MaxWaitTicks) {
			result.Starved = true
			result.StarvedWait = sim.OldestWait()
			result.StarvedTick = sim.Clock
			logrus.Warnf("[tick %07d] passenger waited %d ticks, limit %d: stopping", sim.Clock, result.StarvedWait, sim.Config.MaxWaitTicks)
			break
		}
	}

	result.Ticks = sim.Clock
	result.Waiting = sim.Waiting()
	result.Metrics = sim.Metrics.Clone()
	result.Waits = result.Metrics.Summary()
	return result
}

// Print writes a human-readable report.
func (r *RunResult) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	if r.RunID != "" {
		fmt.Fprintf(w, "Run ID               : %s\n", r.RunID)
	}
	fmt.Fprintf(w, "Strategy             : %s\n", r.Strategy)
	fmt.Fprintf(w, "Ticks                : %d\n", r.Ticks)
	fmt.Fprintf(w, "Injected             : %d\n", r.Metrics.Injected)
	fmt.Fprintf(w, "Transported          : %d\n", r.Metrics.Transported)
	fmt.Fprintf(w, "Still Waiting        : %d\n", r.Waiting)
	if r.Rejected > 0 {
		fmt.Fprintf(w, "Rejected Arrivals    : %d\n", r.Rejected)
	}
	fmt.Fprintf(w, "Total Moves          : %d\n", r.Metrics.TotalMoves)
	if r.Waits.Count > 0 {
		fmt.Fprintf(w, "Mean Wait            : %.2f ticks\n", r.Waits.Mean)
		fmt.Fprintf(w, "Median Wait          : %.2f ticks\n", r.Waits.Median)
		fmt.Fprintf(w, "P90 Wait             : %.2f ticks\n", r.Waits.P90)
		fmt.Fprintf(w, "Max Wait             : %d ticks\n", r.Waits.Max)
	}
	if r.Starved {
		fmt.Fprintf(w, "STARVED              : wait of %d ticks at tick %d\n", r.StarvedWait, r.StarvedTick)
	}
}

// SaveResults writes the result as indented JSON to path.
func (r *RunResult) SaveResults(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing results to %s: %w", path, err)
	}
	logrus.Debugf("Successfully wrote results to '%s'", path)
	return nil
}
