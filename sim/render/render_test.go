package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/elevator-sim/sim"
)

func TestDraw_Layout(t *testing.T) {
	// GIVEN a 3-floor building with a waiting up-bound car at floor 0 carrying riders
	// for 3 and 2, and a waiting down-bound car at floor 2 carrying a rider for 1
	snap := sim.Snapshot{
		Floors: []sim.FloorView{
			{Number: 0},
			{Number: 1, Up: 1, Down: 1},
			{Number: 2, Down: 1},
		},
		Elevators: []sim.ElevatorView{
			{ID: 0, Floor: 0, Capacity: 3, Action: sim.ActionWait, Direction: sim.DirectionUp, Destinations: []int{2, 3}},
			{ID: 1, Floor: 2, Capacity: 5, Action: sim.ActionWait, Direction: sim.DirectionDown, Destinations: []int{1}},
		},
	}

	// WHEN it is drawn
	got := Draw(snap)

	// THEN floors run top-down with each car in its own column
	want := strings.Join([]string{
		" 2 1v                   wv1",
		" 1 1^ 1v",
		" 0          w^2,3",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestDraw_MovingCarState(t *testing.T) {
	snap := sim.Snapshot{
		Floors: []sim.FloorView{{Number: 0}, {Number: 1}},
		Elevators: []sim.ElevatorView{
			{Floor: 1, Capacity: 1, Action: sim.ActionGoDown, Direction: sim.DirectionDown},
		},
	}
	assert.Equal(t, " 1          vv\n 0", Draw(snap))
}

func TestDraw_FromSimulator(t *testing.T) {
	s, err := sim.NewSimulator(sim.SimConfig{
		BuildingConfig: sim.BuildingConfig{FloorCount: 4, Capacities: []int{2}},
	}, nil)
	require.NoError(t, err)
	_, err = s.InjectArrival(2, 0, 0)
	require.NoError(t, err)

	s.Tick()
	lines := strings.Split(Draw(s.Snapshot()), "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, " 2 1v", lines[1])
	assert.Equal(t, " 1          ^^", lines[2])
	assert.Equal(t, " 0", lines[3])
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "step:4 oldest:None transported:0", Header(4, sim.Snapshot{Tick: 5, OldestWait: -1}))
	assert.Equal(t, "step:9 oldest:3 transported:2", Header(9, sim.Snapshot{Tick: 10, OldestWait: 3, Transported: 2}))
}
