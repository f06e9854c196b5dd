package workload

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/elevator-sim/sim"
)

func TestReplay_YieldsRecordedTicks(t *testing.T) {
	r, err := NewReplay(&ReplayFile{Arrivals: []ReplayRecord{
		{Tick: 0, Source: 0, Destination: 3},
		{Tick: 4, Source: 2, Destination: 1},
	}})
	require.NoError(t, err)

	got := collect(r.Next, 10)

	assert.Equal(t, map[int64]sim.Arrival{
		0: {Source: 0, Destination: 3},
		4: {Source: 2, Destination: 1},
	}, got)
}

func TestReplay_RejectsUnorderedTicks(t *testing.T) {
	_, err := NewReplay(&ReplayFile{Arrivals: []ReplayRecord{{Tick: 3}, {Tick: 3}}})
	assert.Error(t, err)
	_, err = NewReplay(&ReplayFile{Arrivals: []ReplayRecord{{Tick: -1}}})
	assert.Error(t, err)
}

func TestRecorder_SaveAndReplayReproducesRun(t *testing.T) {
	// GIVEN a sampled run captured by a recorder
	level := validLevel()
	level.PersonPerStep = 0.4
	run := func(arrivals sim.ArrivalFunc) *sim.RunResult {
		s, err := sim.NewSimulator(level.SimConfig(), nil)
		require.NoError(t, err)
		return s.Run(level.Steps, arrivals)
	}
	rec := NewRecorder(NewLevelSampler(level, sim.NewPartitionedRNG(sim.NewSimulationKey(level.Seed))).Next)
	original := run(rec.Next)

	// WHEN the recording is saved, loaded and replayed
	path := filepath.Join(t.TempDir(), "replay.yaml")
	require.NoError(t, SaveReplay(path, rec.ReplayFile(level.Floors)))
	loaded, err := LoadReplay(path)
	require.NoError(t, err)
	replay, err := NewReplay(loaded)
	require.NoError(t, err)
	replayed := run(replay.Next)

	// THEN the outcome is identical
	assert.NotEmpty(t, loaded.Arrivals)
	assert.Equal(t, level.Floors, loaded.Floors)
	assert.Equal(t, original, replayed)
}

func TestLoadReplay_RejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "replay.yaml", "arrivals:\n  - tick: 1\n    src: 2\n")
	_, err := LoadReplay(path)
	assert.Error(t, err)
}
