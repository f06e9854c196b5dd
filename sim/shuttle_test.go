package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuttle_SweepsWholeBuilding(t *testing.T) {
	// GIVEN a shuttle car with nothing to do in a 4-floor building
	s := NewShuttle(sweepConfig(4, 2))

	// WHEN it is driven for a full round trip
	history := drive(s, []int{0}, 3, DefaultBoardingTicks, 7)

	// THEN it travels to the top and back without stopping
	want := []Action{ActionGoUp, ActionGoUp, ActionGoUp, ActionGoDown, ActionGoDown, ActionGoDown, ActionGoUp}
	for i, actions := range history {
		assert.Equal(t, want[i], actions[0], "tick %d", i)
	}
}

func TestShuttle_BoardsOnlyInTravelDirection(t *testing.T) {
	// GIVEN a down-call at floor 2 and the car heading up from floor 0
	s := NewShuttle(sweepConfig(4, 2))
	s.NotifyCallDown(2)

	history := drive(s, []int{0}, 3, DefaultBoardingTicks, 6)

	// THEN it passes floor 2 going up and boards there on the way down
	want := []Action{ActionGoUp, ActionGoUp, ActionGoUp, ActionGoDown, ActionBoardDown, ActionBoardDown}
	for i, actions := range history {
		assert.Equal(t, want[i], actions[0], "tick %d", i)
	}
	assert.False(t, s.down.Has(2), "flag cleared by boarding")
}

func TestShuttle_SingleFloorWaits(t *testing.T) {
	s := NewShuttle(sweepConfig(1, 2))
	assert.Equal(t, []Action{ActionWait}, s.Decide([]int{0}))
}

func TestShuttle_CallFlagsAreShared(t *testing.T) {
	// GIVEN two cars and one up-call at floor 1
	s := NewShuttle(sweepConfig(5, 2, 2))
	s.NotifyCallUp(1)
	s.NotifyCallUp(1)

	// WHEN both reach floor 1 on the same tick
	s.Decide([]int{0, 0})
	actions := s.Decide([]int{1, 1})

	// THEN only the first car boards
	assert.Equal(t, []Action{ActionBoardUp, ActionGoUp}, actions)
}

func TestShuttle_EndToEnd(t *testing.T) {
	// GIVEN a shuttle-driven building and a passenger from floor 3 down to 1
	cfg := testConfig(5, 2)
	cfg.Strategy = StrategyShuttle
	sim, err := NewSimulator(cfg, nil)
	require.NoError(t, err)
	p, err := sim.InjectArrival(3, 1, 0)
	require.NoError(t, err)

	// WHEN the simulation runs
	var delivered []Delivery
	sim.Run(20, nil, func(_ int64, d []Delivery, _ *Simulator) {
		delivered = append(delivered, d...)
	})

	// THEN the passenger is picked up on the way down and dropped at floor 1
	require.Len(t, delivered, 1)
	assert.Equal(t, p, delivered[0].Passenger)
	assert.Equal(t, int64(9), delivered[0].Tick)
}
