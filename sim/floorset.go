package sim

// FloorSet is a fixed-size set of floor numbers backed by a bool slice.
// Out-of-range floors are never members.
type FloorSet struct {
	set []bool
	n   int
}

// NewFloorSet creates an empty set for a building with floorCount floors.
func NewFloorSet(floorCount int) *FloorSet {
	return &FloorSet{set: make([]bool, floorCount)}
}

func (fs *FloorSet) inRange(floor int) bool {
	return floor >= 0 && floor < len(fs.set)
}

// Add inserts floor and reports whether it was newly added.
func (fs *FloorSet) Add(floor int) bool {
	if !fs.inRange(floor) || fs.set[floor] {
		return false
	}
	fs.set[floor] = true
	fs.n++
	return true
}

// Remove deletes floor and reports whether it was present.
func (fs *FloorSet) Remove(floor int) bool {
	if !fs.inRange(floor) || !fs.set[floor] {
		return false
	}
	fs.set[floor] = false
	fs.n--
	return true
}

// Has reports membership.
func (fs *FloorSet) Has(floor int) bool {
	return fs.inRange(floor) && fs.set[floor]
}

// Len returns the number of members.
func (fs *FloorSet) Len() int {
	return fs.n
}

// AnyAbove reports whether some member is strictly above floor.
func (fs *FloorSet) AnyAbove(floor int) bool {
	for i := max(floor+1, 0); i < len(fs.set); i++ {
		if fs.set[i] {
			return true
		}
	}
	return false
}

// AnyBelow reports whether some member is strictly below floor.
func (fs *FloorSet) AnyBelow(floor int) bool {
	for i := min(floor-1, len(fs.set)-1); i >= 0; i-- {
		if fs.set[i] {
			return true
		}
	}
	return false
}

// AnyAhead reports whether some member lies strictly ahead of floor in direction d.
func (fs *FloorSet) AnyAhead(floor int, d Direction) bool {
	if d == DirectionUp {
		return fs.AnyAbove(floor)
	}
	return fs.AnyBelow(floor)
}

// Lowest returns the smallest member, or -1 when empty.
func (fs *FloorSet) Lowest() int {
	for i := 0; i < len(fs.set); i++ {
		if fs.set[i] {
			return i
		}
	}
	return -1
}

// Highest returns the largest member, or -1 when empty.
func (fs *FloorSet) Highest() int {
	for i := len(fs.set) - 1; i >= 0; i-- {
		if fs.set[i] {
			return i
		}
	}
	return -1
}

// Members returns the members in ascending order.
func (fs *FloorSet) Members() []int {
	out := make([]int, 0, fs.n)
	for i, ok := range fs.set {
		if ok {
			out = append(out, i)
		}
	}
	return out
}
