package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAction_Duration(t *testing.T) {
	tests := []struct {
		action        Action
		boardingTicks int64
		want          int64
	}{
		{ActionWait, 2, 1},
		{ActionGoUp, 2, 1},
		{ActionGoDown, 5, 1},
		{ActionBoardUp, 2, 2},
		{ActionBoardDown, 3, 3},
		{ActionBoardBoth, 0, 1}, // boarding never takes less than one tick
	}
	for _, tt := range tests {
		if got := tt.action.Duration(tt.boardingTicks); got != tt.want {
			t.Errorf("%s.Duration(%d) = %d, want %d", tt.action, tt.boardingTicks, got, tt.want)
		}
	}
}

func TestAction_Admits(t *testing.T) {
	up := &Passenger{Source: 3, Destination: 5}
	down := &Passenger{Source: 3, Destination: 0}

	tests := []struct {
		action   Action
		wantUp   bool
		wantDown bool
	}{
		{ActionWait, false, false},
		{ActionGoUp, false, false},
		{ActionBoardUp, true, false},
		{ActionBoardDown, false, true},
		{ActionBoardBoth, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			assert.Equal(t, tt.wantUp, tt.action.Admits(up, 3))
			assert.Equal(t, tt.wantDown, tt.action.Admits(down, 3))
		})
	}
}

func TestAction_Direction(t *testing.T) {
	d, ok := ActionGoDown.Direction()
	assert.True(t, ok)
	assert.Equal(t, DirectionDown, d)

	d, ok = ActionBoardUp.Direction()
	assert.True(t, ok)
	assert.Equal(t, DirectionUp, d)

	_, ok = ActionWait.Direction()
	assert.False(t, ok)
	_, ok = ActionBoardBoth.Direction()
	assert.False(t, ok)
}

func TestAction_Names(t *testing.T) {
	assert.Equal(t, "board-both", ActionBoardBoth.String())
	assert.Equal(t, "Action(9)", Action(9).String())
	assert.False(t, Action(9).IsValid())
	assert.Equal(t, ActionGoDown, MoveAction(DirectionDown))
	assert.Equal(t, ActionBoardUp, BoardAction(DirectionUp))
	assert.Equal(t, DirectionUp, DirectionDown.Opposite())
	assert.Equal(t, -1, DirectionDown.Sign())
}
