package mixor

import (
	"time"

	"github.com/google/uuid"
)

// Result holds exactly one of a success payload S or a failure payload F.
// The zero value is neither; always construct through Ok or Err.
type Result[S, F any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     S
	failure   F
	ok        bool
}

// Ok builds a successful Result carrying v.
func Ok[S, F any](v S) Result[S, F] {
	return Result[S, F]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
		ok:        true,
	}
}

// Err builds a failed Result carrying f.
func Err[S, F any](f F) Result[S, F] {
	return Result[S, F]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		failure:   f,
		ok:        false,
	}
}

// Success is the historical alias of Ok.
func Success[S, F any](v S) Result[S, F] {
	return Ok[S, F](v)
}

// Fail is the historical alias of Err.
func Fail[S, F any](f F) Result[S, F] {
	return Err[S, F](f)
}

func (r Result[S, F]) IsOk() bool {
	return r.ok
}

func (r Result[S, F]) IsErr() bool {
	return !r.ok
}

// IsSuccess is the historical alias of IsOk.
func (r Result[S, F]) IsSuccess() bool {
	return r.IsOk()
}

// IsFail is the historical alias of IsErr.
func (r Result[S, F]) IsFail() bool {
	return r.IsErr()
}

// Value returns the success payload; the zero value of S on a failed Result.
func (r Result[S, F]) Value() S {
	return r.value
}

// Failure returns the failure payload; the zero value of F on a successful Result.
func (r Result[S, F]) Failure() F {
	return r.failure
}

func (r Result[S, F]) Id() uuid.UUID {
	return r.id
}

// CreatedAt is the construction time (UTC).
func (r Result[S, F]) CreatedAt() time.Time {
	return r.createdAt
}
