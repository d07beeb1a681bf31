package pipe

import (
	"context"
	"fmt"
	"strings"

	"github.com/binaryshapes/mixor/pkg/mixor"
)

// Parallel builds a single-step pipe that feeds input[i] to pipes[i] and
// returns the outputs as a slice. Results always appear in declaration
// order, never completion order. The input must be a slice with exactly one
// element per pipe.
func Parallel(pipes ...*Pipe) *Pipe {
	async := anyAsync(pipes)
	fns := buildAll(pipes)

	fn := func(ctx context.Context, in any) (any, error) {
		inputs, ok := mixor.AsSlice(in)
		if !ok {
			return nil, fmt.Errorf("parallel: input %T is not a slice", in)
		}
		if len(inputs) != len(fns) {
			return nil, fmt.Errorf("parallel: %d inputs for %d pipes", len(inputs), len(fns))
		}
		return dispatch(ctx, fns, func(i int) any { return inputs[i] }, async)
	}

	return New(combinedName("parallel", pipes)).
		Step("parallel", Tagged{Fn: fn, Meta: Metadata{Operator: OpParallel, IsAsync: async}})
}

// All is Parallel with a shared input: every pipe receives the same value.
func All(pipes ...*Pipe) *Pipe {
	async := anyAsync(pipes)
	fns := buildAll(pipes)

	fn := func(ctx context.Context, in any) (any, error) {
		return dispatch(ctx, fns, func(int) any { return in }, async)
	}

	return New(combinedName("all", pipes)).
		Step("all", Tagged{Fn: fn, Meta: Metadata{Operator: OpAll, IsAsync: async}})
}

// Flow threads one value sequentially through each pipe: pipe N's output is
// pipe N+1's input. Synchronous members are lifted implicitly when any
// member is asynchronous. Cross-pipe input/output typing is not verified at
// runtime; a mismatch surfaces only when the receiving step executes.
func Flow(pipes ...*Pipe) *Pipe {
	async := anyAsync(pipes)
	fns := buildAll(pipes)

	fn := func(ctx context.Context, in any) (any, error) {
		acc := in
		for _, f := range fns {
			v, err := f(ctx, acc)
			if err != nil {
				return nil, err
			}
			acc = v
		}
		return acc, nil
	}

	return New(combinedName("flow", pipes)).
		Step("flow", Tagged{Fn: fn, Meta: Metadata{Operator: OpFlow, IsAsync: async}})
}

// dispatch runs every compiled function against its argument. The sync path
// is a plain loop; the async path fans out one goroutine per pipe and
// reassembles by declaration index. With several failures, the first error
// in declaration order wins.
func dispatch(ctx context.Context, fns []Fn, arg func(int) any, async bool) (any, error) {
	out := make([]any, len(fns))

	if !async {
		for i, fn := range fns {
			v, err := fn(ctx, arg(i))
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	futures := make([]*Future, len(fns))
	for i, fn := range fns {
		futures[i] = Go(func() (any, error) {
			return fn(ctx, arg(i))
		})
	}

	var firstErr error
	for i, f := range futures {
		v, err := f.Await()
		if err != nil && firstErr == nil {
			firstErr = err
		}
		out[i] = v
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

func buildAll(pipes []*Pipe) []Fn {
	fns := make([]Fn, len(pipes))
	for i, p := range pipes {
		fns[i] = p.Build()
	}
	return fns
}

func anyAsync(pipes []*Pipe) bool {
	for _, p := range pipes {
		if p.IsAsync() {
			return true
		}
	}
	return false
}

func combinedName(kind string, pipes []*Pipe) string {
	names := make([]string, len(pipes))
	for i, p := range pipes {
		names[i] = p.Name()
	}
	return kind + "(" + strings.Join(names, ",") + ")"
}
