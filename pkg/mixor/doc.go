// Package mixor defines the Result and Option containers that the pipe
// machinery and its consumers exchange, plus small structural helpers.
//
// Result[S, F] holds exactly one of a success payload or a failure payload.
// It is created via Ok/Err (historical aliases Success/Fail) and consumed via
// the IsOk/IsErr predicates. Construction cannot fail and values are
// immutable once created.
//
// Option[T] is the companion presence container (Some/None).
//
// The pipe engine never special-cases these containers: a failed Result
// returned by a step travels to the next step as ordinary data. Callers that
// want short-circuit-on-failure check IsErr between steps themselves.
package mixor
