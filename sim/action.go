// Defines the per-car action state machine. The Scheduler picks the next Action once a
// car's RemainingTicks reaches zero; the engine applies the action's mechanical effect
// on the tick it is committed and keeps the car busy for Duration ticks.

package sim

import "fmt"

// Direction is the logical travel intent of a car or passenger.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	if d == DirectionUp {
		return DirectionDown
	}
	return DirectionUp
}

// Sign returns +1 for up and -1 for down.
func (d Direction) Sign() int {
	if d == DirectionUp {
		return 1
	}
	return -1
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Action is the state a car is in for the current tick.
type Action int

const (
	// ActionWait idles at the current floor.
	ActionWait Action = iota
	// ActionGoUp moves one floor up (one tick).
	ActionGoUp
	// ActionGoDown moves one floor down (one tick).
	ActionGoDown
	// ActionBoardUp exchanges passengers, admitting only riders heading up.
	ActionBoardUp
	// ActionBoardDown exchanges passengers, admitting only riders heading down.
	ActionBoardDown
	// ActionBoardBoth exchanges passengers, admitting riders in either direction.
	ActionBoardBoth
)

var actionNames = map[Action]string{
	ActionWait:      "wait",
	ActionGoUp:      "go-up",
	ActionGoDown:    "go-down",
	ActionBoardUp:   "board-up",
	ActionBoardDown: "board-down",
	ActionBoardBoth: "board-both",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// IsValid reports whether a is one of the defined actions.
func (a Action) IsValid() bool {
	_, ok := actionNames[a]
	return ok
}

// IsMove reports whether a moves the car.
func (a Action) IsMove() bool {
	return a == ActionGoUp || a == ActionGoDown
}

// IsBoard reports whether a exchanges passengers.
func (a Action) IsBoard() bool {
	return a == ActionBoardUp || a == ActionBoardDown || a == ActionBoardBoth
}

// Duration returns how many ticks the action occupies a car.
// Boarding lasts boardingTicks (at least 1); every other action lasts one tick.
func (a Action) Duration(boardingTicks int64) int64 {
	if a.IsBoard() {
		return max(boardingTicks, 1)
	}
	return 1
}

// Direction returns the travel direction implied by the action.
// ok is false for ActionWait and ActionBoardBoth, which carry no direction.
func (a Action) Direction() (d Direction, ok bool) {
	switch a {
	case ActionGoUp, ActionBoardUp:
		return DirectionUp, true
	case ActionGoDown, ActionBoardDown:
		return DirectionDown, true
	default:
		return DirectionUp, false
	}
}

// Admits reports whether a boarding action at floor accepts passenger p.
func (a Action) Admits(p *Passenger, floor int) bool {
	switch a {
	case ActionBoardUp:
		return p.Destination > floor
	case ActionBoardDown:
		return p.Destination < floor
	case ActionBoardBoth:
		return p.Destination != floor
	default:
		return false
	}
}

// MoveAction returns the single-floor move in direction d.
func MoveAction(d Direction) Action {
	if d == DirectionUp {
		return ActionGoUp
	}
	return ActionGoDown
}

// BoardAction returns the boarding action for direction d.
func BoardAction(d Direction) Action {
	if d == DirectionUp {
		return ActionBoardUp
	}
	return ActionBoardDown
}
