// Defines the Passenger entity: a rider created at a source floor who travels to a
// destination floor. Passengers are immutable once created.

package sim

import "fmt"

// Passenger models a single rider. Every field is fixed at creation.
type Passenger struct {
	ID          int   // Sequential per simulation, in arrival order
	Source      int   // Floor where the passenger appeared
	Destination int   // Floor where the passenger wants to alight; never equals Source
	CreatedAt   int64 // Simulation tick of arrival
}

// Direction returns the travel direction the passenger requests at its source floor.
func (p *Passenger) Direction() Direction {
	if p.Destination > p.Source {
		return DirectionUp
	}
	return DirectionDown
}

// WaitTicks returns how long the passenger has been in the system at tick now.
func (p *Passenger) WaitTicks(now int64) int64 {
	return now - p.CreatedAt
}

func (p *Passenger) String() string {
	return fmt.Sprintf("passenger_%d(%d->%d @%d)", p.ID, p.Source, p.Destination, p.CreatedAt)
}

// Delivery records a passenger that alighted at its destination.
type Delivery struct {
	Passenger  *Passenger
	ElevatorID int
	Tick       int64 // Tick at which the passenger alighted
	WaitTicks  int64 // Tick - Passenger.CreatedAt
}
