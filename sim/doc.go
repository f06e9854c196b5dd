// Package sim provides the discrete-time elevator simulation engine.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - passenger.go, floor.go: passive entities and their bookkeeping
//   - action.go: the per-car action state machine (Wait, GoUp/GoDown, Board*)
//   - scheduler.go: the Scheduler interface and strategy registry
//   - sweep.go: the directional-sweep strategy with cost-based car selection
//   - simulator.go: the tick loop that applies boarding, movement and decisions
//
// # Tick Order
//
// Each Tick() lets elapsed multi-tick actions count down, reports car floors to the
// Scheduler, commits one action per idle car and applies its mechanical effect
// (exchange passengers or move one floor). Arrivals are injected between ticks.
//
// # Architecture
//
// The sim package defines the engine, the strategy interface and the bundled strategies.
// Supporting sub-packages:
//   - sim/workload/: arrival generators (level sampler, scripted replay)
//   - sim/render/: textual rendering of a Snapshot
//   - sim/trace/: dispatch decision trace recording
//
// Strategies never see passengers, only floor numbers, so a scripted Scheduler can drive
// the engine in tests and strategies can be tested without an engine.
package sim
