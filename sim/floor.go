// Implements Floor, which holds the passengers waiting for a car at one floor.

package sim

import (
	"fmt"
	"strings"
)

// Floor is identified by its index in [0, floorCount) and owns the passengers waiting
// there, kept in arrival order so boarding is deterministic.
type Floor struct {
	Number  int
	waiting []*Passenger
}

// Add appends a waiting passenger.
func (f *Floor) Add(p *Passenger) {
	f.waiting = append(f.waiting, p)
}

// Len returns the number of waiting passengers.
func (f *Floor) Len() int {
	return len(f.waiting)
}

// Waiting returns the floor's internal storage. Callers MUST NOT modify it.
func (f *Floor) Waiting() []*Passenger {
	return f.waiting
}

// CountUp returns how many waiting passengers want to go up.
func (f *Floor) CountUp() int {
	n := 0
	for _, p := range f.waiting {
		if p.Destination > f.Number {
			n++
		}
	}
	return n
}

// CountDown returns how many waiting passengers want to go down.
func (f *Floor) CountDown() int {
	n := 0
	for _, p := range f.waiting {
		if p.Destination < f.Number {
			n++
		}
	}
	return n
}

// take removes up to limit waiting passengers accepted by keep, oldest first.
// The order of the passengers left behind is preserved.
func (f *Floor) take(keep func(*Passenger) bool, limit int) []*Passenger {
	if limit <= 0 {
		return nil
	}
	var taken []*Passenger
	remaining := f.waiting[:0]
	for _, p := range f.waiting {
		if len(taken) < limit && keep(p) {
			taken = append(taken, p)
			continue
		}
		remaining = append(remaining, p)
	}
	// clear the tail so removed passengers are not retained by the backing array
	for i := len(remaining); i < len(f.waiting); i++ {
		f.waiting[i] = nil
	}
	f.waiting = remaining
	return taken
}

// any reports whether some waiting passenger is accepted by keep.
func (f *Floor) any(keep func(*Passenger) bool) bool {
	for _, p := range f.waiting {
		if keep(p) {
			return true
		}
	}
	return false
}

func (f *Floor) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("floor_%d[", f.Number))
	for i, p := range f.waiting {
		sb.WriteString(fmt.Sprint(p.Destination))
		if i < len(f.waiting)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
