package pipe

import (
	"context"
	"reflect"
	"runtime"
	"strings"
)

// Chain compiles plain functions into a pipe of map steps, using each
// function's own name as the step description. Nothing verifies that one
// function's output suits the next one's input; a mismatch surfaces when
// the step executes. For a compile-time check use Chain2..Chain5.
func Chain(name string, fns ...func(ctx context.Context, in any) any) *Pipe {
	p := New(name)
	for _, fn := range fns {
		p = p.Step(funcName(fn), Map(fn))
	}
	return p
}

// Chain2 is Chain for two functions whose inter-step compatibility is
// carried by the type parameters, so an incompatible sequence does not
// compile.
func Chain2[A, B, C any](name string,
	f1 func(ctx context.Context, in A) B,
	f2 func(ctx context.Context, in B) C) *Pipe {
	return New(name).
		Step(funcName(f1), Map(lift(f1))).
		Step(funcName(f2), Map(lift(f2)))
}

// Chain3 is Chain2 for three functions.
func Chain3[A, B, C, D any](name string,
	f1 func(ctx context.Context, in A) B,
	f2 func(ctx context.Context, in B) C,
	f3 func(ctx context.Context, in C) D) *Pipe {
	return New(name).
		Step(funcName(f1), Map(lift(f1))).
		Step(funcName(f2), Map(lift(f2))).
		Step(funcName(f3), Map(lift(f3)))
}

// Chain4 is Chain2 for four functions.
func Chain4[A, B, C, D, E any](name string,
	f1 func(ctx context.Context, in A) B,
	f2 func(ctx context.Context, in B) C,
	f3 func(ctx context.Context, in C) D,
	f4 func(ctx context.Context, in D) E) *Pipe {
	return New(name).
		Step(funcName(f1), Map(lift(f1))).
		Step(funcName(f2), Map(lift(f2))).
		Step(funcName(f3), Map(lift(f3))).
		Step(funcName(f4), Map(lift(f4)))
}

// Chain5 is Chain2 for five functions.
func Chain5[A, B, C, D, E, F any](name string,
	f1 func(ctx context.Context, in A) B,
	f2 func(ctx context.Context, in B) C,
	f3 func(ctx context.Context, in C) D,
	f4 func(ctx context.Context, in D) E,
	f5 func(ctx context.Context, in E) F) *Pipe {
	return New(name).
		Step(funcName(f1), Map(lift(f1))).
		Step(funcName(f2), Map(lift(f2))).
		Step(funcName(f3), Map(lift(f3))).
		Step(funcName(f4), Map(lift(f4))).
		Step(funcName(f5), Map(lift(f5)))
}

// lift erases a typed function. The input assertion panics if a call site
// sidesteps the type parameters, which is when a bypassed check is supposed
// to fail: at execution of the mismatched step.
func lift[I, O any](fn func(ctx context.Context, in I) O) func(ctx context.Context, in any) any {
	return func(ctx context.Context, in any) any {
		return fn(ctx, in.(I))
	}
}

func funcName(fn any) string {
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return "func"
	}
	name := f.Name()
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
