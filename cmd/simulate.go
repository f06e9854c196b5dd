package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/elevator-sim/sim"
	"github.com/inference-sim/elevator-sim/sim/render"
	"github.com/inference-sim/elevator-sim/sim/trace"
	"github.com/inference-sim/elevator-sim/sim/workload"
)

// runOptions is everything one level run needs once flags are resolved.
type runOptions struct {
	Name        string
	Level       workload.LevelSpec
	TraceLevel  trace.TraceLevel
	Render      bool
	History     int // frames drawn when the run starves; 0 disables
	ReplayPath  string
	RecordPath  string
	ResultsPath string
}

// simulate runs one level and writes the report (and frames, when rendering) to out.
func simulate(opts runOptions, out io.Writer) (*sim.RunResult, error) {
	level := opts.Level
	var st *trace.SimulationTrace
	if opts.TraceLevel != "" && opts.TraceLevel != trace.TraceLevelNone {
		st = trace.NewSimulationTrace(trace.TraceConfig{Level: opts.TraceLevel})
	}

	s, err := sim.NewTracedSimulator(level.SimConfig(), st)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", opts.Name, err)
	}

	var arrivals sim.ArrivalFunc
	if opts.ReplayPath != "" {
		file, err := workload.LoadReplay(opts.ReplayPath)
		if err != nil {
			return nil, err
		}
		if file.Floors != 0 && file.Floors != level.Floors {
			logrus.Warnf("replay %s was recorded for %d floors, level %s has %d", opts.ReplayPath, file.Floors, opts.Name, level.Floors)
		}
		replay, err := workload.NewReplay(file)
		if err != nil {
			return nil, err
		}
		arrivals = replay.Next
	} else {
		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(level.Seed))
		arrivals = workload.NewLevelSampler(level, rng).Next
	}
	var recorder *workload.Recorder
	if opts.RecordPath != "" {
		recorder = workload.NewRecorder(arrivals)
		arrivals = recorder.Next
	}

	var observers []sim.TickObserver
	if opts.Render {
		observers = append(observers, func(tick int64, _ []sim.Delivery, s *sim.Simulator) {
			snap := s.Snapshot()
			fmt.Fprintln(out, render.Header(tick, snap))
			fmt.Fprintln(out, render.Draw(snap))
			fmt.Fprintln(out)
		})
	}

	var history *sim.History
	if opts.History > 0 {
		history = sim.NewHistory(opts.History)
		observers = append(observers, history.Observe)
	}

	logrus.Infof("Starting level %s: %d floors, elevators=%v, strategy=%s, steps=%d, seed=%d",
		opts.Name, level.Floors, level.Elevators, s.Config.Strategy, level.Steps, level.Seed)

	result := s.Run(level.Steps, arrivals, observers...)
	result.RunID = sim.NewRunID(level.Seed, opts.Name)
	result.Print(out)
	if history != nil && result.Starved {
		printHistory(out, history)
	}

	if st != nil {
		printTraceSummary(out, trace.Summarize(st))
	}
	if opts.ResultsPath != "" {
		if err := result.SaveResults(opts.ResultsPath); err != nil {
			return result, err
		}
	}
	if recorder != nil {
		if err := workload.SaveReplay(opts.RecordPath, recorder.ReplayFile(level.Floors)); err != nil {
			return result, err
		}
	}
	return result, nil
}

// printHistory draws the frames that led up to a starvation. A frame taken after tick
// N carries Tick N+1.
func printHistory(w io.Writer, h *sim.History) {
	fmt.Fprintf(w, "=== Last %d Frames Before Starvation ===\n", h.Len())
	for _, snap := range h.Frames() {
		fmt.Fprintln(w, render.Header(snap.Tick-1, snap))
		fmt.Fprintln(w, render.Draw(snap))
		fmt.Fprintln(w)
	}
}

func printTraceSummary(w io.Writer, ts *trace.TraceSummary) {
	fmt.Fprintln(w, "=== Dispatch Trace ===")
	fmt.Fprintf(w, "Assignments          : %d\n", ts.TotalAssignments)
	fmt.Fprintf(w, "Dropped Calls        : %d\n", ts.DroppedCalls)
	fmt.Fprintf(w, "Mean Chosen Score    : %.2f\n", ts.MeanScore)
	fmt.Fprintf(w, "Max Chosen Score     : %d\n", ts.MaxScore)
	cars := make([]int, 0, len(ts.TargetDistribution))
	for car := range ts.TargetDistribution {
		cars = append(cars, car)
	}
	sort.Ints(cars)
	for _, car := range cars {
		fmt.Fprintf(w, "  elevator %-3d       : %d calls\n", car, ts.TargetDistribution[car])
	}
	actions := make([]string, 0, len(ts.ActionCounts))
	for name := range ts.ActionCounts {
		actions = append(actions, name)
	}
	sort.Strings(actions)
	for _, name := range actions {
		fmt.Fprintf(w, "  %-18s : %d\n", name, ts.ActionCounts[name])
	}
}

func printLevels(w io.Writer, file *workload.LevelFile) {
	fmt.Fprintf(w, "%-8s %-7s %-16s %-7s %-8s %s\n", "LEVEL", "FLOORS", "ELEVATORS", "STEPS", "RATE", "STRATEGY")
	for _, name := range file.Names() {
		l := file.Levels[name]
		caps := make([]string, len(l.Elevators))
		for i, c := range l.Elevators {
			caps[i] = fmt.Sprint(c)
		}
		strategy := l.Strategy
		if strategy == "" {
			strategy = sim.StrategySweep
		}
		fmt.Fprintf(w, "%-8s %-7d %-16s %-7d %-8.3f %s\n", name, l.Floors, strings.Join(caps, ","), l.Steps, l.PersonPerStep, strategy)
	}
}
