package workload

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/elevator-sim/sim"
)

// LevelSpec is one scenario: building shape, traffic and run length.
// Loaded from YAML via LoadLevels(path).
type LevelSpec struct {
	Steps             int64           `yaml:"steps"`
	Seed              int64           `yaml:"seed"`
	MaxWaiting        int64           `yaml:"max_waiting"`
	Floors            int             `yaml:"floors"`
	Elevators         []int           `yaml:"elevators"` // capacity per car
	StartFloor        int             `yaml:"start_floor,omitempty"`
	BoardingTicks     int64           `yaml:"boarding_ticks,omitempty"`
	RestingFloor      int             `yaml:"resting_floor,omitempty"`
	Strategy          string          `yaml:"strategy,omitempty"`
	DropOverflowCalls bool            `yaml:"drop_overflow_calls,omitempty"`
	PersonPerStep     float64         `yaml:"person_per_step"`
	FloorSource       map[int]float64 `yaml:"floor_source,omitempty"` // relative weight per source floor; uniform when empty
	FloorDest         map[int]float64 `yaml:"floor_dest,omitempty"`   // relative weight per destination floor; uniform when empty
}

// LevelFile is the top-level level table.
type LevelFile struct {
	Levels map[string]LevelSpec `yaml:"levels"`
}

// LoadLevels reads and parses a YAML level file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadLevels(path string) (*LevelFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level file: %w", err)
	}
	var file LevelFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing level file: %w", err)
	}
	if len(file.Levels) == 0 {
		return nil, fmt.Errorf("level file %s defines no levels", path)
	}
	return &file, nil
}

// Names returns the level names in sorted order.
func (f *LevelFile) Names() []string {
	names := make([]string, 0, len(f.Levels))
	for name := range f.Levels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Level looks up a level by name. A plain number also matches its two-digit form,
// so "1" finds "01".
func (f *LevelFile) Level(name string) (LevelSpec, error) {
	if level, ok := f.Levels[name]; ok {
		return level, nil
	}
	if n, err := strconv.Atoi(name); err == nil {
		if level, ok := f.Levels[fmt.Sprintf("%02d", n)]; ok {
			return level, nil
		}
	}
	return LevelSpec{}, fmt.Errorf("unknown level %q; available: %v", name, f.Names())
}

// SimConfig converts the level into the simulator configuration.
func (l LevelSpec) SimConfig() sim.SimConfig {
	return sim.SimConfig{
		BuildingConfig: sim.BuildingConfig{
			FloorCount: l.Floors,
			StartFloor: l.StartFloor,
			Capacities: append([]int(nil), l.Elevators...),
		},
		TimingConfig: sim.TimingConfig{
			BoardingTicks: l.BoardingTicks,
			MaxWaitTicks:  l.MaxWaiting,
		},
		PolicyConfig: sim.PolicyConfig{
			Strategy:          l.Strategy,
			RestingFloor:      l.RestingFloor,
			DropOverflowCalls: l.DropOverflowCalls,
		},
	}
}

// Validate checks that all fields in the level are valid.
func (l LevelSpec) Validate() error {
	if l.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", l.Steps)
	}
	if l.MaxWaiting < 0 {
		return fmt.Errorf("max_waiting must be non-negative, got %d", l.MaxWaiting)
	}
	if len(l.Elevators) == 0 {
		return fmt.Errorf("at least one elevator required")
	}
	if err := validateProbability("person_per_step", l.PersonPerStep); err != nil {
		return err
	}
	if l.PersonPerStep > 0 && l.Floors < 2 {
		return fmt.Errorf("traffic needs at least 2 floors, got %d", l.Floors)
	}
	if err := validateWeights("floor_source", l.FloorSource, l.Floors); err != nil {
		return err
	}
	if err := validateWeights("floor_dest", l.FloorDest, l.Floors); err != nil {
		return err
	}
	return l.SimConfig().WithDefaults().Validate()
}

func validateProbability(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	if val < 0 || val > 1 {
		return fmt.Errorf("%s must be in [0, 1], got %f", name, val)
	}
	return nil
}

func validateWeights(name string, weights map[int]float64, floors int) error {
	for floor, w := range weights {
		if floor < 0 || floor >= floors {
			return fmt.Errorf("%s: floor %d outside [0, %d): %w", name, floor, floors, sim.ErrInvalidFloor)
		}
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("%s: weight for floor %d must be a finite non-negative number, got %f", name, floor, w)
		}
	}
	return nil
}
