// Package trace provides dispatch-trace recording for strategy analysis.
// It has no dependencies on sim/ and stores pure data types only.
package trace

// NoCar marks an assignment record where no car took the call.
const NoCar = -1

// AssignmentRecord captures a single call-assignment decision.
type AssignmentRecord struct {
	Clock     int64
	Floor     int
	Direction string // "up" or "down"
	ChosenCar int    // NoCar when the call was dropped or deferred
	Reason    string
	Scores    []int // estimated ticks-to-service per car, in car-id order (nil if not scored)
}

// ActionRecord captures an action committed to a car.
type ActionRecord struct {
	Clock  int64
	Car    int
	Floor  int // floor before the action's effect
	Action string
}
