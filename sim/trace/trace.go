package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures call assignments and committed car actions.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects decision records during a simulation.
// The simulator advances the trace clock so recorders without a clock of their own
// (strategies) can stamp records consistently.
type SimulationTrace struct {
	Config      TraceConfig
	Assignments []AssignmentRecord
	Actions     []ActionRecord
	clock       int64
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:      config,
		Assignments: make([]AssignmentRecord, 0),
		Actions:     make([]ActionRecord, 0),
	}
}

// Enabled reports whether records should be collected. Safe on a nil trace.
func (st *SimulationTrace) Enabled() bool {
	return st != nil && st.Config.Level == TraceLevelDecisions
}

// SetClock sets the tick used by Clock.
func (st *SimulationTrace) SetClock(clock int64) {
	st.clock = clock
}

// Clock returns the tick most recently set by the simulator.
func (st *SimulationTrace) Clock() int64 {
	return st.clock
}

// RecordAssignment appends a call assignment record.
func (st *SimulationTrace) RecordAssignment(record AssignmentRecord) {
	st.Assignments = append(st.Assignments, record)
}

// RecordAction appends a committed action record.
func (st *SimulationTrace) RecordAction(record ActionRecord) {
	st.Actions = append(st.Actions, record)
}
