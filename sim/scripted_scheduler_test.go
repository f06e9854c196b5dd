package sim

// scriptedScheduler records every notification and answers Decide from a script,
// so engine behaviour can be checked without a real strategy.
type scriptedScheduler struct {
	upCalls      []int
	downCalls    []int
	destinations [][2]int // {elevatorID, floor}
	decisions    int
	next         func(call int, floors []int) []Action
}

func (s *scriptedScheduler) NotifyCallUp(floor int)   { s.upCalls = append(s.upCalls, floor) }
func (s *scriptedScheduler) NotifyCallDown(floor int) { s.downCalls = append(s.downCalls, floor) }
func (s *scriptedScheduler) NotifyDestination(elevatorID int, floor int) {
	s.destinations = append(s.destinations, [2]int{elevatorID, floor})
}

func (s *scriptedScheduler) Decide(currentFloors []int) []Action {
	call := s.decisions
	s.decisions++
	if s.next == nil {
		return make([]Action, len(currentFloors))
	}
	return s.next(call, currentFloors)
}

// always returns a script that gives every car the same action on every tick.
func always(a Action) func(int, []int) []Action {
	return func(_ int, floors []int) []Action {
		out := make([]Action, len(floors))
		for i := range out {
			out[i] = a
		}
		return out
	}
}

// sequence returns a script for a single car that plays actions in order, then waits.
func sequence(actions ...Action) func(int, []int) []Action {
	return func(call int, floors []int) []Action {
		out := make([]Action, len(floors))
		if call < len(actions) {
			out[0] = actions[call]
		}
		return out
	}
}

// testConfig builds a valid config with one car per capacity, all starting at floor 0.
func testConfig(floors int, capacities ...int) SimConfig {
	return SimConfig{
		BuildingConfig: BuildingConfig{FloorCount: floors, Capacities: capacities},
	}
}
