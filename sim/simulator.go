// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/elevator-sim/sim/trace"
)

// Simulator is the core object that holds simulation time, the building and its cars.
// It is single-threaded: every method must be called from one goroutine, and all
// mutation apart from InjectArrival/SeedOccupant happens inside Tick.
type Simulator struct {
	Clock     int64
	Config    SimConfig
	Floors    []*Floor
	Elevators []*Elevator
	Scheduler Scheduler
	Metrics   *Metrics
	// Trace receives committed actions when enabled. May be nil.
	Trace *trace.SimulationTrace

	nextPassengerID int
}

// NewSimulator creates a simulator driven by the given scheduler and registers one car
// per configured capacity. A nil scheduler selects the strategy named in cfg.
func NewSimulator(cfg SimConfig, scheduler Scheduler) (*Simulator, error) {
	return newSimulator(cfg, scheduler, nil)
}

// NewTracedSimulator creates a simulator running the strategy named in cfg, with both
// the engine and the strategy recording into tr.
func NewTracedSimulator(cfg SimConfig, tr *trace.SimulationTrace) (*Simulator, error) {
	return newSimulator(cfg, nil, tr)
}

func newSimulator(cfg SimConfig, scheduler Scheduler, tr *trace.SimulationTrace) (*Simulator, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	if scheduler == nil {
		schedCfg := cfg.SchedulerConfig()
		schedCfg.Trace = tr
		scheduler = NewScheduler(cfg.Strategy, schedCfg)
	}
	sim := &Simulator{
		Clock:     0,
		Config:    cfg,
		Floors:    make([]*Floor, cfg.FloorCount),
		Elevators: make([]*Elevator, 0, len(cfg.Capacities)),
		Scheduler: scheduler,
		Metrics:   NewMetrics(),
		Trace:     tr,
	}
	for i := range sim.Floors {
		sim.Floors[i] = &Floor{Number: i}
	}
	sim.Config.Capacities = make([]int, 0, len(cfg.Capacities))
	for _, capacity := range cfg.Capacities {
		if _, err := sim.AddElevator(capacity, cfg.StartFloor); err != nil {
			return nil, err
		}
	}
	return sim, nil
}

// AddElevator registers a new car and returns its id. The car's capacity is appended to
// Config.Capacities and reported to the scheduler when it implements CarRegistrar.
func (sim *Simulator) AddElevator(capacity int, startFloor int) (int, error) {
	if capacity <= 0 {
		return 0, fmt.Errorf("capacity must be positive, got %d", capacity)
	}
	if !sim.validFloor(startFloor) {
		return 0, fmt.Errorf("start floor %d outside [0, %d): %w", startFloor, len(sim.Floors), ErrInvalidFloor)
	}
	id := len(sim.Elevators)
	sim.Elevators = append(sim.Elevators, newElevator(id, capacity, startFloor))
	sim.Config.Capacities = append(sim.Config.Capacities, capacity)
	sim.Metrics.registerElevator(id)
	if r, ok := sim.Scheduler.(CarRegistrar); ok {
		r.RegisterCar(id, capacity, startFloor)
	}
	return id, nil
}

func (sim *Simulator) validFloor(floor int) bool {
	return floor >= 0 && floor < len(sim.Floors)
}

// InjectArrival creates a passenger waiting at source and raises the matching call.
// Arrivals are injected between ticks and may not be dated after the current clock.
// Invalid arrivals are rejected without any state change.
func (sim *Simulator) InjectArrival(source, destination int, tick int64) (*Passenger, error) {
	if !sim.validFloor(source) || !sim.validFloor(destination) || source == destination {
		return nil, fmt.Errorf("arrival %d->%d in a %d-floor building: %w", source, destination, len(sim.Floors), ErrInvalidFloor)
	}
	if tick < 0 {
		return nil, fmt.Errorf("arrival tick must be non-negative, got %d", tick)
	}
	if tick > sim.Clock {
		return nil, fmt.Errorf("arrival tick %d is after the current tick %d", tick, sim.Clock)
	}
	p := sim.newPassenger(source, destination, tick)
	sim.Floors[source].Add(p)
	logrus.Debugf("[tick %07d] << Arrival: %v", sim.Clock, p)
	if p.Direction() == DirectionUp {
		sim.Scheduler.NotifyCallUp(source)
	} else {
		sim.Scheduler.NotifyCallDown(source)
	}
	return p, nil
}

// SeedOccupant places a passenger bound for destination directly inside a car.
// It is meant for setting up scenarios before the first tick.
func (sim *Simulator) SeedOccupant(elevatorID int, destination int) (*Passenger, error) {
	if elevatorID < 0 || elevatorID >= len(sim.Elevators) {
		return nil, fmt.Errorf("unknown elevator %d", elevatorID)
	}
	e := sim.Elevators[elevatorID]
	if !sim.validFloor(destination) || destination == e.Floor {
		return nil, fmt.Errorf("rider for floor %d in elevator %d at floor %d: %w", destination, e.ID, e.Floor, ErrInvalidFloor)
	}
	if e.FreeCapacity() <= 0 {
		return nil, fmt.Errorf("seeding elevator %d: %w", e.ID, ErrCapacityExceeded)
	}
	p := sim.newPassenger(e.Floor, destination, sim.Clock)
	if err := e.add(p); err != nil {
		return nil, err
	}
	sim.Scheduler.NotifyDestination(e.ID, destination)
	return p, nil
}

func (sim *Simulator) newPassenger(source, destination int, tick int64) *Passenger {
	p := &Passenger{
		ID:          sim.nextPassengerID,
		Source:      source,
		Destination: destination,
		CreatedAt:   tick,
	}
	sim.nextPassengerID++
	sim.Metrics.Injected++
	return p
}

// Tick advances the simulation by one step and returns the passengers delivered in it.
//
// Order: busy cars count down; the scheduler sees every car's floor and returns one
// action per car; idle cars commit their action, which exchanges passengers or moves
// the car immediately; the clock advances.
func (sim *Simulator) Tick() []Delivery {
	now := sim.Clock
	if sim.Trace != nil {
		sim.Trace.SetClock(now)
	}

	for _, e := range sim.Elevators {
		if e.RemainingTicks > 0 {
			e.RemainingTicks--
		}
	}

	floors := make([]int, len(sim.Elevators))
	for i, e := range sim.Elevators {
		floors[i] = e.Floor
	}
	actions := sim.Scheduler.Decide(floors)
	if len(actions) != len(sim.Elevators) {
		panic(fmt.Sprintf("scheduler returned %d actions for %d elevators", len(actions), len(sim.Elevators)))
	}

	var delivered []Delivery
	for i, e := range sim.Elevators {
		if e.Busy() {
			if actions[i] != e.Action {
				logrus.Debugf("[tick %07d] ignoring %s for busy elevator %d (%s, %d ticks left)",
					now, actions[i], e.ID, e.Action, e.RemainingTicks)
			}
			continue
		}
		delivered = append(delivered, sim.commit(e, actions[i], now)...)
	}

	sim.Clock++
	if sim.Trace != nil {
		sim.Trace.SetClock(sim.Clock)
	}
	logrus.Debugf("[tick %07d] delivered=%d transported=%d oldest=%d", now, len(delivered), sim.Metrics.Transported, sim.OldestWait())
	return delivered
}

// commit assigns action to an idle car and applies its mechanical effect.
func (sim *Simulator) commit(e *Elevator, action Action, now int64) []Delivery {
	if !action.IsValid() {
		panic(fmt.Sprintf("scheduler returned invalid action %d for elevator %d", int(action), e.ID))
	}
	if sim.Trace.Enabled() {
		sim.Trace.RecordAction(trace.ActionRecord{Clock: now, Car: e.ID, Floor: e.Floor, Action: action.String()})
	}

	e.Action = action
	if d, ok := action.Direction(); ok {
		e.Direction = d
	}

	var delivered []Delivery
	switch {
	case action.IsMove():
		sim.move(e)
	case action.IsBoard():
		delivered = sim.exchange(e, now)
	}
	e.RemainingTicks = action.Duration(sim.Config.BoardingTicks)
	return delivered
}

// move shifts the car one floor in its direction. A move past the top or bottom floor
// is a no-op.
func (sim *Simulator) move(e *Elevator) {
	next := e.Floor + e.Direction.Sign()
	if !sim.validFloor(next) {
		logrus.Debugf("elevator %d: %s clamped at floor %d", e.ID, e.Action, e.Floor)
		return
	}
	e.Floor = next
	e.Moves++
	sim.Metrics.recordMove(e.ID)
}

// exchange lets riders bound for this floor alight, then admits eligible waiting
// passengers, oldest first, until the car is full. Destinations of admitted riders are
// reported to the scheduler, and so is any eligible passenger left behind.
func (sim *Simulator) exchange(e *Elevator, now int64) []Delivery {
	floor := sim.Floors[e.Floor]

	var delivered []Delivery
	for _, p := range e.alight() {
		d := Delivery{Passenger: p, ElevatorID: e.ID, Tick: now, WaitTicks: p.WaitTicks(now)}
		sim.Metrics.recordDelivery(d)
		delivered = append(delivered, d)
		logrus.Debugf("[tick %07d] >> Delivered: %v by elevator %d after %d ticks", now, p, e.ID, d.WaitTicks)
	}

	admits := func(p *Passenger) bool { return e.Action.Admits(p, e.Floor) }
	for _, p := range floor.take(admits, e.FreeCapacity()) {
		if err := e.add(p); err != nil {
			panic(fmt.Sprintf("boarding %v: %v", p, err))
		}
		sim.Scheduler.NotifyDestination(e.ID, p.Destination)
	}

	if floor.any(func(p *Passenger) bool { return admits(p) && p.Direction() == DirectionUp }) {
		sim.Scheduler.NotifyCallUp(e.Floor)
	}
	if floor.any(func(p *Passenger) bool { return admits(p) && p.Direction() == DirectionDown }) {
		sim.Scheduler.NotifyCallDown(e.Floor)
	}
	return delivered
}

// IsStarved reports whether any passenger still waiting on a floor or riding a car has
// been in the system for more than maxWaitTicks.
func (sim *Simulator) IsStarved(maxWaitTicks int64) bool {
	return sim.OldestWait() > maxWaitTicks
}

// OldestWait returns the longest time any undelivered passenger has been in the
// system, or -1 when nobody is waiting or riding.
func (sim *Simulator) OldestWait() int64 {
	oldest := int64(-1)
	sim.forEachPassenger(func(p *Passenger) {
		oldest = max(oldest, p.WaitTicks(sim.Clock))
	})
	return oldest
}

// Waiting returns the number of undelivered passengers (on floors and in cars).
func (sim *Simulator) Waiting() int {
	n := 0
	sim.forEachPassenger(func(*Passenger) { n++ })
	return n
}

func (sim *Simulator) forEachPassenger(fn func(*Passenger)) {
	for _, f := range sim.Floors {
		for _, p := range f.waiting {
			fn(p)
		}
	}
	for _, e := range sim.Elevators {
		for _, p := range e.occupants {
			fn(p)
		}
	}
}

// CheckInvariants verifies that every passenger is in exactly one container, that the
// passenger count is conserved and that no car exceeds its capacity.
func (sim *Simulator) CheckInvariants() error {
	seen := make(map[int]bool)
	var dup error
	sim.forEachPassenger(func(p *Passenger) {
		if seen[p.ID] && dup == nil {
			dup = fmt.Errorf("passenger %d held by more than one container", p.ID)
		}
		seen[p.ID] = true
	})
	if dup != nil {
		return dup
	}
	if got := len(seen) + sim.Metrics.Transported; got != sim.Metrics.Injected {
		return fmt.Errorf("conservation violated: %d waiting + %d transported != %d injected",
			len(seen), sim.Metrics.Transported, sim.Metrics.Injected)
	}
	for _, e := range sim.Elevators {
		if e.Len() > e.Capacity {
			return fmt.Errorf("elevator %d holds %d riders, capacity %d: %w", e.ID, e.Len(), e.Capacity, ErrCapacityExceeded)
		}
		if e.RemainingTicks < 0 {
			return fmt.Errorf("elevator %d has negative remaining ticks %d", e.ID, e.RemainingTicks)
		}
		if !sim.validFloor(e.Floor) {
			return fmt.Errorf("elevator %d at floor %d: %w", e.ID, e.Floor, ErrInvalidFloor)
		}
	}
	return nil
}
