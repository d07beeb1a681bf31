// Package pipe builds named sequences of transformation steps and compiles
// them into a single callable function. Steps carry explicit metadata
// (operator tag, sync/async) fixed at registration time; the compiled
// function picks a tight synchronous loop or an awaiting loop depending on
// whether any step is asynchronous.
//
// Key operations:
// - New/Step/Steps/Build: accumulate steps and compile the pipeline
// - Map/From/Tap/Bind (+ ...Async): operator factories producing tagged steps
// - Raw/RawAsync: adapt plain functions for Step
// - Parallel/All/Flow: compose whole built pipes (fan-out keeps declaration order)
// - Chain, Chain2..Chain5: compile plain functions into a pipe
//
// The engine performs no recovery and no short-circuiting: a step's error
// (or an aborted Future) returns to the caller unmodified, and a failed
// mixor.Result returned by a step is ordinary data for the next step. The
// context passed to the compiled function is threaded to every step but
// never inspected by the engine; there is no cancellation or timeout here.
package pipe
