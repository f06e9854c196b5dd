package sim

import "github.com/sirupsen/logrus"

// shuttleCar is the per-car state of the Shuttle strategy.
type shuttleCar struct {
	dir         Direction
	action      Action
	busy        int64
	justBoarded bool // the car boarded at its floor and must move on before boarding again
	exits       []int
}

// Shuttle sends every car up and down through the whole building, stopping wherever a
// call in the travel direction is flagged or a rider wants to alight. Call flags are
// shared by all cars and cleared by the first car that boards there.
type Shuttle struct {
	cfg  SchedulerConfig
	up   *FloorSet
	down *FloorSet
	cars []*shuttleCar
}

// NewShuttle creates the strategy with one car per configured capacity.
func NewShuttle(cfg SchedulerConfig) *Shuttle {
	s := &Shuttle{
		cfg:  cfg,
		up:   NewFloorSet(cfg.FloorCount),
		down: NewFloorSet(cfg.FloorCount),
	}
	s.ensureCars(len(cfg.Capacities))
	return s
}

func (s *Shuttle) ensureCars(n int) {
	for len(s.cars) < n {
		s.cars = append(s.cars, &shuttleCar{
			dir:    DirectionUp,
			action: ActionWait,
			exits:  make([]int, s.cfg.FloorCount),
		})
	}
}

// RegisterCar implements CarRegistrar. The shuttle ignores capacity: the engine admits
// only what fits and re-raises the rest.
func (s *Shuttle) RegisterCar(elevatorID int, _ int, _ int) {
	if elevatorID >= 0 {
		s.ensureCars(elevatorID + 1)
	}
}

func (s *Shuttle) flags(d Direction) *FloorSet {
	if d == DirectionUp {
		return s.up
	}
	return s.down
}

// NotifyCallUp implements Scheduler.
func (s *Shuttle) NotifyCallUp(floor int) {
	s.flag(floor, DirectionUp)
}

// NotifyCallDown implements Scheduler.
func (s *Shuttle) NotifyCallDown(floor int) {
	s.flag(floor, DirectionDown)
}

func (s *Shuttle) flag(floor int, d Direction) {
	if floor < 0 || floor >= s.cfg.FloorCount {
		logrus.Warnf("shuttle: ignoring %s call at floor %d: %v", d, floor, ErrInvalidFloor)
		return
	}
	s.flags(d).Add(floor)
}

// NotifyDestination implements Scheduler.
func (s *Shuttle) NotifyDestination(elevatorID int, floor int) {
	if elevatorID < 0 || floor < 0 || floor >= s.cfg.FloorCount {
		logrus.Warnf("shuttle: ignoring destination %d for car %d: %v", floor, elevatorID, ErrInvalidFloor)
		return
	}
	s.ensureCars(elevatorID + 1)
	s.cars[elevatorID].exits[floor]++
}

// Decide implements Scheduler.
func (s *Shuttle) Decide(currentFloors []int) []Action {
	s.ensureCars(len(currentFloors))
	top := s.cfg.FloorCount - 1
	actions := make([]Action, len(currentFloors))
	for i, floor := range currentFloors {
		c := s.cars[i]
		if c.busy > 0 {
			c.busy--
		}
		if c.busy > 0 {
			actions[i] = c.action
			continue
		}
		switch {
		case top <= 0:
			c.action = ActionWait
		default:
			if c.dir == DirectionUp && floor >= top {
				c.dir = DirectionDown
			} else if c.dir == DirectionDown && floor <= 0 {
				c.dir = DirectionUp
			}
			if !c.justBoarded && (c.exits[floor] > 0 || s.flags(c.dir).Has(floor)) {
				c.exits[floor] = 0
				s.flags(c.dir).Remove(floor)
				c.justBoarded = true
				c.action = BoardAction(c.dir)
			} else {
				c.justBoarded = false
				c.action = MoveAction(c.dir)
			}
		}
		c.busy = c.action.Duration(s.cfg.BoardingTicks)
		actions[i] = c.action
	}
	return actions
}
