package sim

// History keeps the most recent snapshots of a run in a fixed-size ring, so the lead-up
// to a starvation can be shown after the fact.
type History struct {
	frames []Snapshot
	next   int
	full   bool
}

// NewHistory creates a ring holding at most size snapshots. Size must be positive.
func NewHistory(size int) *History {
	if size <= 0 {
		panic("history size must be positive")
	}
	return &History{frames: make([]Snapshot, size)}
}

// Observe implements TickObserver: it records the state after every tick.
func (h *History) Observe(_ int64, _ []Delivery, sim *Simulator) {
	h.Record(sim.Snapshot())
}

// Record stores a copy of snap, evicting the oldest frame when full.
func (h *History) Record(snap Snapshot) {
	h.frames[h.next] = snap.Clone()
	h.next++
	if h.next == len(h.frames) {
		h.next = 0
		h.full = true
	}
}

// Len returns the number of stored frames.
func (h *History) Len() int {
	if h.full {
		return len(h.frames)
	}
	return h.next
}

// Frames returns copies of the stored frames, oldest first.
func (h *History) Frames() []Snapshot {
	out := make([]Snapshot, 0, h.Len())
	start := 0
	if h.full {
		start = h.next
	}
	for i := 0; i < h.Len(); i++ {
		out = append(out, h.frames[(start+i)%len(h.frames)].Clone())
	}
	return out
}
