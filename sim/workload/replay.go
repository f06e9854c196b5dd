package workload

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/elevator-sim/sim"
)

// ReplayRecord is one scripted arrival.
type ReplayRecord struct {
	Tick        int64 `yaml:"tick"`
	Source      int   `yaml:"source"`
	Destination int   `yaml:"destination"`
}

// ReplayFile is a recorded or hand-written arrival script.
type ReplayFile struct {
	Floors   int            `yaml:"floors,omitempty"` // building the script was recorded for; 0 = unknown
	Arrivals []ReplayRecord `yaml:"arrivals"`
}

// Validate checks that ticks are non-negative and strictly increasing, since the
// simulator accepts at most one arrival per tick.
func (f *ReplayFile) Validate() error {
	last := int64(-1)
	for i, rec := range f.Arrivals {
		if rec.Tick <= last {
			return fmt.Errorf("arrivals[%d]: tick %d must be greater than %d", i, rec.Tick, last)
		}
		last = rec.Tick
	}
	return nil
}

// LoadReplay reads and parses a YAML replay file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadReplay(path string) (*ReplayFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading replay: %w", err)
	}
	var file ReplayFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing replay: %w", err)
	}
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("invalid replay %s: %w", path, err)
	}
	return &file, nil
}

// SaveReplay writes file as YAML to path.
func SaveReplay(path string, file *ReplayFile) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encoding replay: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing replay to %s: %w", path, err)
	}
	return nil
}

// Replay yields the arrivals of a script at their recorded ticks.
type Replay struct {
	byTick map[int64]sim.Arrival
}

// NewReplay creates a replay from file. The file must pass Validate.
func NewReplay(file *ReplayFile) (*Replay, error) {
	if err := file.Validate(); err != nil {
		return nil, err
	}
	r := &Replay{byTick: make(map[int64]sim.Arrival, len(file.Arrivals))}
	for _, rec := range file.Arrivals {
		r.byTick[rec.Tick] = sim.Arrival{Source: rec.Source, Destination: rec.Destination}
	}
	return r, nil
}

// Next implements sim.ArrivalFunc.
func (r *Replay) Next(tick int64) (sim.Arrival, bool) {
	a, ok := r.byTick[tick]
	return a, ok
}

// Recorder passes arrivals through from another source and keeps a copy of each, so
// a generated run can be saved and replayed exactly.
type Recorder struct {
	source  sim.ArrivalFunc
	records []ReplayRecord
}

// NewRecorder wraps source.
func NewRecorder(source sim.ArrivalFunc) *Recorder {
	return &Recorder{source: source}
}

// Next implements sim.ArrivalFunc.
func (r *Recorder) Next(tick int64) (sim.Arrival, bool) {
	a, ok := r.source(tick)
	if ok {
		r.records = append(r.records, ReplayRecord{Tick: tick, Source: a.Source, Destination: a.Destination})
	}
	return a, ok
}

// ReplayFile returns everything recorded so far.
func (r *Recorder) ReplayFile(floors int) *ReplayFile {
	return &ReplayFile{Floors: floors, Arrivals: append([]ReplayRecord(nil), r.records...)}
}
