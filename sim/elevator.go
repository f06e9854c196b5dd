// Defines the Elevator record owned by the Simulator.

package sim

import (
	"fmt"
	"slices"
)

// Elevator is a car. Only the Simulator mutates it; strategies see floor numbers only.
type Elevator struct {
	ID             int       // Registration order, 0-based
	Floor          int       // Current floor
	Capacity       int       // Maximum occupants, fixed at creation
	Action         Action    // Action committed most recently
	RemainingTicks int64     // Ticks until the car accepts a new action
	Direction      Direction // Travel intent, updated from directional actions
	Moves          int64     // Floors travelled, for efficiency statistics
	occupants      []*Passenger
}

func newElevator(id, capacity, floor int) *Elevator {
	return &Elevator{
		ID:        id,
		Floor:     floor,
		Capacity:  capacity,
		Action:    ActionWait,
		Direction: DirectionUp,
	}
}

// Occupants returns the car's internal storage. Callers MUST NOT modify it.
func (e *Elevator) Occupants() []*Passenger {
	return e.occupants
}

// Len returns the number of occupants.
func (e *Elevator) Len() int {
	return len(e.occupants)
}

// FreeCapacity returns how many more passengers fit.
func (e *Elevator) FreeCapacity() int {
	return e.Capacity - len(e.occupants)
}

// Busy reports whether the car is still executing a multi-tick action.
func (e *Elevator) Busy() bool {
	return e.RemainingTicks > 0
}

// Destinations returns the occupants' destination floors in ascending order.
func (e *Elevator) Destinations() []int {
	dests := make([]int, len(e.occupants))
	for i, p := range e.occupants {
		dests[i] = p.Destination
	}
	slices.Sort(dests)
	return dests
}

// add places p in the car, failing when the car is full.
func (e *Elevator) add(p *Passenger) error {
	if len(e.occupants) >= e.Capacity {
		return fmt.Errorf("elevator %d with %d/%d occupants: %w", e.ID, len(e.occupants), e.Capacity, ErrCapacityExceeded)
	}
	e.occupants = append(e.occupants, p)
	return nil
}

// alight removes and returns every occupant whose destination is the current floor.
func (e *Elevator) alight() []*Passenger {
	var out []*Passenger
	staying := e.occupants[:0]
	for _, p := range e.occupants {
		if p.Destination == e.Floor {
			out = append(out, p)
			continue
		}
		staying = append(staying, p)
	}
	for i := len(staying); i < len(e.occupants); i++ {
		e.occupants[i] = nil
	}
	e.occupants = staying
	return out
}

func (e *Elevator) String() string {
	return fmt.Sprintf("elevator_%d(floor=%d action=%s dir=%s riders=%v remaining=%d)",
		e.ID, e.Floor, e.Action, e.Direction, e.Destinations(), e.RemainingTicks)
}
