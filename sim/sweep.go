package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/elevator-sim/sim/trace"
)

// sweepCar is the strategy's private record for one car.
type sweepCar struct {
	id        int
	floor     int // floor the car will be at once its current action takes effect
	capacity  int
	dir       Direction
	action    Action
	busy      int64 // ticks left in the current action, mirroring the engine
	exits     []int // riders per destination floor
	load      int   // sum of exits
	upCalls   *FloorSet
	downCalls *FloorSet
}

func (c *sweepCar) calls(d Direction) *FloorSet {
	if d == DirectionUp {
		return c.upCalls
	}
	return c.downCalls
}

func (c *sweepCar) hasWork() bool {
	return c.load > 0 || c.upCalls.Len() > 0 || c.downCalls.Len() > 0
}

// workAhead reports whether any exit or call lies strictly ahead of the car in d.
func (c *sweepCar) workAhead(d Direction) bool {
	if c.upCalls.AnyAhead(c.floor, d) || c.downCalls.AnyAhead(c.floor, d) {
		return true
	}
	for f := c.floor + d.Sign(); f >= 0 && f < len(c.exits); f += d.Sign() {
		if c.exits[f] > 0 {
			return true
		}
	}
	return false
}

// stopHere reports whether the car should open its doors at its floor while heading d.
// A call only justifies a stop when the car has room for at least one more rider.
func (c *sweepCar) stopHere(d Direction) bool {
	if c.exits[c.floor] > 0 {
		return true
	}
	return c.calls(d).Has(c.floor) && c.load < c.capacity
}

// boardingAt reports whether the car is in the middle of a boarding action at floor
// that admits riders heading d.
func (c *sweepCar) boardingAt(floor int, d Direction) bool {
	if c.busy <= 0 || c.floor != floor {
		return false
	}
	return c.action == BoardAction(d) || c.action == ActionBoardBoth
}

// DirectionalSweep is a SCAN-family strategy. Each car keeps sweeping in one direction
// while exits or calls remain ahead, reverses at the last pending request, and drifts to
// the resting floor when it has nothing to do. Calls go to the car with the lowest
// estimated ticks-to-service; ties go to the lowest car id.
type DirectionalSweep struct {
	cfg        SchedulerConfig
	cars       []*sweepCar
	unassigned []floorCall // calls received before any car was known
}

type floorCall struct {
	floor int
	dir   Direction
}

// NewDirectionalSweep creates the strategy with one car per configured capacity.
func NewDirectionalSweep(cfg SchedulerConfig) *DirectionalSweep {
	s := &DirectionalSweep{cfg: cfg}
	s.ensureCars(len(cfg.Capacities))
	return s
}

func (s *DirectionalSweep) ensureCars(n int) {
	for i := len(s.cars); i < n; i++ {
		capacity := math.MaxInt
		if i < len(s.cfg.Capacities) {
			capacity = s.cfg.Capacities[i]
		}
		s.cars = append(s.cars, &sweepCar{
			id:        i,
			floor:     s.cfg.StartFloor,
			capacity:  capacity,
			dir:       DirectionUp,
			action:    ActionWait,
			exits:     make([]int, s.cfg.FloorCount),
			upCalls:   NewFloorSet(s.cfg.FloorCount),
			downCalls: NewFloorSet(s.cfg.FloorCount),
		})
	}
}

// RegisterCar implements CarRegistrar.
func (s *DirectionalSweep) RegisterCar(elevatorID int, capacity int, startFloor int) {
	if elevatorID < 0 {
		return
	}
	s.ensureCars(elevatorID + 1)
	c := s.cars[elevatorID]
	c.capacity = capacity
	c.floor = startFloor
}

func (s *DirectionalSweep) top() int {
	return s.cfg.FloorCount - 1
}

// NotifyCallUp implements Scheduler.
func (s *DirectionalSweep) NotifyCallUp(floor int) {
	s.notifyCall(floor, DirectionUp)
}

// NotifyCallDown implements Scheduler.
func (s *DirectionalSweep) NotifyCallDown(floor int) {
	s.notifyCall(floor, DirectionDown)
}

// NotifyDestination implements Scheduler.
func (s *DirectionalSweep) NotifyDestination(elevatorID int, floor int) {
	if elevatorID < 0 || floor < 0 || floor >= s.cfg.FloorCount {
		logrus.Warnf("sweep: ignoring destination %d for car %d: %v", floor, elevatorID, ErrInvalidFloor)
		return
	}
	s.ensureCars(elevatorID + 1)
	c := s.cars[elevatorID]
	c.exits[floor]++
	c.load++
}

func (s *DirectionalSweep) notifyCall(floor int, d Direction) {
	if floor < 0 || floor > s.top() || (d == DirectionUp && floor == s.top()) || (d == DirectionDown && floor == 0) {
		logrus.Warnf("sweep: ignoring %s call at floor %d: %v", d, floor, ErrInvalidFloor)
		return
	}
	if len(s.cars) == 0 {
		s.unassigned = append(s.unassigned, floorCall{floor: floor, dir: d})
		return
	}
	for _, c := range s.cars {
		if c.calls(d).Has(floor) {
			return
		}
	}
	if s.cfg.DropOverflowCalls {
		for _, c := range s.cars {
			if c.boardingAt(floor, d) {
				s.record(floor, d, trace.NoCar, fmt.Sprintf("covered by boarding car %d", c.id), nil)
				return
			}
		}
	}

	scores := make([]int, len(s.cars))
	best := 0
	for i, c := range s.cars {
		scores[i] = s.score(c, floor, d)
		if scores[i] < scores[best] {
			best = i
		}
	}
	s.cars[best].calls(d).Add(floor)
	s.record(floor, d, best, "min-score", scores)
}

// score estimates ticks-to-service of a call at floor heading d by car c.
func (s *DirectionalSweep) score(c *sweepCar, floor int, d Direction) int {
	if c.boardingAt(floor, d) {
		if c.load < c.capacity {
			return 0
		}
		return s.roundTrip(c, floor)
	}
	if !c.hasWork() {
		return abs(floor - c.floor)
	}
	ahead := (c.dir == DirectionUp && floor >= c.floor) || (c.dir == DirectionDown && floor <= c.floor)
	if d == c.dir && ahead {
		return abs(floor - c.floor)
	}
	return s.roundTrip(c, floor)
}

// roundTrip is the distance to the end of the building in the car's direction plus the
// distance back to floor.
func (s *DirectionalSweep) roundTrip(c *sweepCar, floor int) int {
	end := 0
	if c.dir == DirectionUp {
		end = s.top()
	}
	return abs(end-c.floor) + abs(end-floor)
}

func (s *DirectionalSweep) record(floor int, d Direction, car int, reason string, scores []int) {
	if !s.cfg.Trace.Enabled() {
		return
	}
	s.cfg.Trace.RecordAssignment(trace.AssignmentRecord{
		Clock:     s.cfg.Trace.Clock(),
		Floor:     floor,
		Direction: d.String(),
		ChosenCar: car,
		Reason:    reason,
		Scores:    scores,
	})
}

// Decide implements Scheduler.
func (s *DirectionalSweep) Decide(currentFloors []int) []Action {
	s.ensureCars(len(currentFloors))
	if len(s.unassigned) > 0 && len(s.cars) > 0 {
		pending := s.unassigned
		s.unassigned = nil
		for _, call := range pending {
			s.notifyCall(call.floor, call.dir)
		}
	}

	actions := make([]Action, len(currentFloors))
	for i, floor := range currentFloors {
		c := s.cars[i]
		c.floor = floor
		if c.busy > 0 {
			c.busy--
		}
		if c.busy > 0 {
			actions[i] = c.action
			continue
		}
		c.action = s.decideCar(c)
		c.busy = c.action.Duration(s.cfg.BoardingTicks)
		if c.action.IsMove() {
			c.floor = min(max(c.floor+c.dir.Sign(), 0), s.top())
		}
		actions[i] = c.action
	}
	return actions
}

// decideCar picks the next action for an idle car and updates its bookkeeping.
func (s *DirectionalSweep) decideCar(c *sweepCar) Action {
	if !c.hasWork() {
		switch {
		case c.floor > s.cfg.RestingFloor:
			c.dir = DirectionDown
			return ActionGoDown
		case c.floor < s.cfg.RestingFloor:
			c.dir = DirectionUp
			return ActionGoUp
		default:
			return ActionWait
		}
	}

	if c.stopHere(c.dir) {
		return s.board(c)
	}
	if !c.workAhead(c.dir) {
		c.dir = c.dir.Opposite()
		if c.stopHere(c.dir) {
			return s.board(c)
		}
	}
	return MoveAction(c.dir)
}

// board clears the exits and calls the boarding action will serve. Calls at this floor
// in the served direction are cleared from every car: the engine admits every eligible
// passenger and re-notifies whatever is left behind.
func (s *DirectionalSweep) board(c *sweepCar) Action {
	c.load -= c.exits[c.floor]
	c.exits[c.floor] = 0

	opposite := c.dir.Opposite()
	both := c.load == 0 && c.calls(c.dir).Has(c.floor) && c.calls(opposite).Has(c.floor) && !c.workAhead(c.dir)

	for _, other := range s.cars {
		other.calls(c.dir).Remove(c.floor)
		if both {
			other.calls(opposite).Remove(c.floor)
		}
	}
	if both {
		return ActionBoardBoth
	}
	return BoardAction(c.dir)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
