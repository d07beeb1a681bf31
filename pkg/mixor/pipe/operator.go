package pipe

import (
	"context"

	"github.com/binaryshapes/mixor/pkg/mixor"
)

// Fn is the dynamic step signature every registered function compiles to.
// A non-nil error ends the pipeline invocation immediately; the engine adds
// no recovery of its own.
type Fn func(ctx context.Context, in any) (any, error)

// Metadata describes a registered step. It is computed once, when the step
// function is constructed, and reused verbatim on registration.
type Metadata struct {
	Name     string
	Operator Operator
	IsAsync  bool
}

// Tagged pairs a step function with its metadata. Operator factories return
// one; Step accepts nothing else, so metadata never rides on the function
// value itself.
type Tagged struct {
	Fn   Fn
	Meta Metadata
}

// Map applies fn to the input and passes its output on, tagged "map".
func Map(fn func(ctx context.Context, in any) any) Tagged {
	return Tagged{
		Fn: func(ctx context.Context, in any) (any, error) {
			return wrap(OpMap, fn(ctx, in)), nil
		},
		Meta: Metadata{Operator: OpMap},
	}
}

// From has the same contract as Map. It marks the first step of a pipeline
// for documentation purposes only.
func From(fn func(ctx context.Context, in any) any) Tagged {
	return Tagged{
		Fn: func(ctx context.Context, in any) (any, error) {
			return wrap(OpFrom, fn(ctx, in)), nil
		},
		Meta: Metadata{Operator: OpFrom},
	}
}

// Tap calls fn for its side effect and passes the original input on
// unchanged, tagged "tap".
func Tap(fn func(ctx context.Context, in any)) Tagged {
	return Tagged{
		Fn: func(ctx context.Context, in any) (any, error) {
			fn(ctx, in)
			return wrap(OpTap, in), nil
		},
		Meta: Metadata{Operator: OpTap},
	}
}

// Bind computes fn(input) and passes on the spread input with the outcome
// added under key, tagged "bind". A non-spreadable input (primitive, nil) is
// dropped; the result then holds only the bound key.
func Bind(key string, fn func(ctx context.Context, in any) any) Tagged {
	return Tagged{
		Fn: func(ctx context.Context, in any) (any, error) {
			out, ok := mixor.Spread(in)
			if !ok {
				out = make(map[string]any, 1)
			}
			out[key] = fn(ctx, in)
			return wrap(OpBind, out), nil
		},
		Meta: Metadata{Operator: OpBind},
	}
}

// MapAsync is Map for functions that settle a Future. The step yields a
// Future resolving to the tagged output; the engine awaits it.
func MapAsync(fn func(ctx context.Context, in any) *Future) Tagged {
	return Tagged{
		Fn: func(ctx context.Context, in any) (any, error) {
			return then(fn(ctx, in), func(v any) any {
				return wrap(OpMap, v)
			}), nil
		},
		Meta: Metadata{Operator: OpMap, IsAsync: true},
	}
}

// FromAsync is From for functions that settle a Future.
func FromAsync(fn func(ctx context.Context, in any) *Future) Tagged {
	return Tagged{
		Fn: func(ctx context.Context, in any) (any, error) {
			return then(fn(ctx, in), func(v any) any {
				return wrap(OpFrom, v)
			}), nil
		},
		Meta: Metadata{Operator: OpFrom, IsAsync: true},
	}
}

// TapAsync awaits the side effect before passing the original input on.
func TapAsync(fn func(ctx context.Context, in any) *Future) Tagged {
	return Tagged{
		Fn: func(ctx context.Context, in any) (any, error) {
			if _, err := fn(ctx, in).Await(); err != nil {
				return nil, err
			}
			return wrap(OpTap, in), nil
		},
		Meta: Metadata{Operator: OpTap, IsAsync: true},
	}
}

// BindAsync stores the still-unsettled Future under key. The engine resolves
// it one level deep after the step runs, not the operator.
func BindAsync(key string, fn func(ctx context.Context, in any) *Future) Tagged {
	return Tagged{
		Fn: func(ctx context.Context, in any) (any, error) {
			out, ok := mixor.Spread(in)
			if !ok {
				out = make(map[string]any, 1)
			}
			out[key] = fn(ctx, in)
			return wrap(OpBind, out), nil
		},
		Meta: Metadata{Operator: OpBind, IsAsync: true},
	}
}

// Raw adapts a plain synchronous function for Step.
func Raw(fn Fn) Tagged {
	return Tagged{Fn: fn, Meta: Metadata{Operator: OpStep}}
}

// RawAsync adapts a plain function whose result is (or contains) a Future.
func RawAsync(fn Fn) Tagged {
	return Tagged{Fn: fn, Meta: Metadata{Operator: OpStep, IsAsync: true}}
}
