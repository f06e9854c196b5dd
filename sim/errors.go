package sim

import "errors"

// ErrInvalidFloor is returned when an arrival, seeded rider or call references a floor
// outside [0, floorCount) or when a passenger's source equals its destination.
// Rejected operations never partially mutate simulator state.
var ErrInvalidFloor = errors.New("invalid floor")

// ErrCapacityExceeded is returned when a passenger is added to a full car.
// Boarding checks free capacity before admitting anyone, so the engine treats this
// error as a fatal bug (panic) rather than a runtime condition.
var ErrCapacityExceeded = errors.New("capacity exceeded")
