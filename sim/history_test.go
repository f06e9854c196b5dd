package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_KeepsMostRecentFramesOldestFirst(t *testing.T) {
	h := NewHistory(3)
	for tick := int64(1); tick <= 5; tick++ {
		h.Record(Snapshot{Tick: tick})
	}

	frames := h.Frames()
	require.Len(t, frames, 3)
	assert.Equal(t, []int64{3, 4, 5}, []int64{frames[0].Tick, frames[1].Tick, frames[2].Tick})
}

func TestHistory_PartiallyFilled(t *testing.T) {
	h := NewHistory(4)
	assert.Empty(t, h.Frames())

	h.Record(Snapshot{Tick: 1})
	h.Record(Snapshot{Tick: 2})

	assert.Equal(t, 2, h.Len())
	assert.Equal(t, int64(1), h.Frames()[0].Tick)
}

func TestHistory_FramesAreIndependentCopies(t *testing.T) {
	// GIVEN a recorded snapshot whose slices the caller still holds
	h := NewHistory(2)
	snap := Snapshot{Tick: 1, Elevators: []ElevatorView{{ID: 0, Destinations: []int{2, 3}}}}
	h.Record(snap)

	// WHEN both the caller's snapshot and a returned frame are modified
	snap.Elevators[0].Destinations[0] = 7
	h.Frames()[0].Elevators[0].Destinations[1] = 8

	// THEN the stored frame is unchanged
	assert.Equal(t, []int{2, 3}, h.Frames()[0].Elevators[0].Destinations)
}

func TestHistory_ObserveRecordsEveryTick(t *testing.T) {
	sim, _ := newScriptedSim(t, testConfig(4, 2), sequence(ActionGoUp))
	h := NewHistory(10)

	sim.Run(3, nil, h.Observe)

	frames := h.Frames()
	require.Len(t, frames, 3)
	assert.Equal(t, int64(1), frames[0].Tick)
	assert.Equal(t, int64(3), frames[2].Tick)
	assert.Equal(t, 1, frames[0].Elevators[0].Floor)
	assert.Equal(t, sim.Elevators[0].Floor, frames[2].Elevators[0].Floor)
}

func TestNewHistory_NonPositiveSizePanics(t *testing.T) {
	assert.Panics(t, func() { NewHistory(0) })
}
