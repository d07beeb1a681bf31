package pipe

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

func sleepyDouble(d time.Duration) *Pipe {
	return New("double").Step("double", MapAsync(func(_ context.Context, in any) *Future {
		return Go(func() (any, error) {
			time.Sleep(d)
			return in.(int) * 2, nil
		})
	}))
}

func TestParallelByIndex(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	a := New("a").Step("double", Raw(double))
	b := New("b").Step("inc", Raw(inc))

	out, err := Parallel(a, b).Build()(ctx, []any{5, 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(out, []any{10, 11}) {
		t.Fatalf("expected [10 11], got %v", out)
	}
}

func TestParallelKeepsDeclarationOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	slow := sleepyDouble(40 * time.Millisecond)
	fast := sleepyDouble(time.Millisecond)

	out, err := Parallel(slow, fast).Build()(ctx, []any{5, 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(out, []any{10, 20}) {
		t.Fatalf("slow pipe must still come first: %v", out)
	}
}

func TestParallelWidensTypedSlices(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	a := New("a").Step("double", Raw(double))
	b := New("b").Step("double", Raw(double))

	out, err := Parallel(a, b).Build()(ctx, []int{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(out, []any{2, 4}) {
		t.Fatalf("expected [2 4], got %v", out)
	}
}

func TestParallelRejectsBadInput(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	p := Parallel(New("a").Step("double", Raw(double)))

	if _, err := p.Build()(ctx, 7); err == nil {
		t.Fatalf("non-slice input must fail")
	}
	if _, err := p.Build()(ctx, []any{1, 2}); err == nil {
		t.Fatalf("arity mismatch must fail")
	}
}

func TestParallelFirstDeclaredErrorWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	errA := errors.New("a failed")
	errB := errors.New("b failed")

	failing := func(e error, d time.Duration) *Pipe {
		return New("failing").Step("fail", MapAsync(func(_ context.Context, _ any) *Future {
			return Go(func() (any, error) {
				time.Sleep(d)
				return nil, e
			})
		}))
	}

	// b settles first, a is still the error reported
	_, err := Parallel(failing(errA, 30*time.Millisecond), failing(errB, time.Millisecond)).
		Build()(ctx, []any{1, 2})
	if err != errA {
		t.Fatalf("expected the first declared error, got %v", err)
	}
}

func TestAllBroadcastsInput(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	a := New("a").Step("double", Raw(double))
	b := New("b").Step("inc", Raw(inc))

	out, err := All(a, b).Build()(ctx, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(out, []any{10, 6}) {
		t.Fatalf("expected [10 6], got %v", out)
	}
}

func TestAllKeepsDeclarationOrderWhenAsync(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	slow := sleepyDouble(40 * time.Millisecond)
	fast := New("fast").Step("inc", Raw(inc))

	out, err := All(slow, fast).Build()(ctx, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(out, []any{10, 6}) {
		t.Fatalf("expected [10 6], got %v", out)
	}
}

func TestFlowThreadsSequentially(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	a := New("a").Step("double", Raw(double))
	b := New("b").Step("inc", Raw(inc))

	out, err := Flow(a, b).Build()(ctx, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	av, _ := a.Build()(ctx, 5)
	want, _ := b.Build()(ctx, av)
	if out != want {
		t.Fatalf("flow(a,b)(x) must equal b(a(x)): got %v, want %v", out, want)
	}
}

func TestFlowLiftsSyncMembers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	slow := sleepyDouble(5 * time.Millisecond)
	sync := New("sync").Step("inc", Raw(inc))

	combined := Flow(slow, sync)
	if !combined.IsAsync() {
		t.Fatalf("flow with an async member must be async")
	}

	out, err := combined.Build()(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != 7 {
		t.Fatalf("expected 7, got %v", out)
	}
}

func TestFlowStopsOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	failing := New("failing").Step("fail", Raw(func(_ context.Context, _ any) (any, error) {
		return nil, boom
	}))

	reached := false
	after := New("after").Step("mark", Raw(func(_ context.Context, in any) (any, error) {
		reached = true
		return in, nil
	}))

	if _, err := Flow(failing, after).Build()(ctx, 1); err != boom {
		t.Fatalf("expected boom, got %v", err)
	}
	if reached {
		t.Fatalf("pipes after a failing pipe must not run")
	}
}

func TestCombinatorsCompose(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	a := New("a").Step("double", Raw(double))
	b := New("b").Step("inc", Raw(inc))

	sum := New("sum").Step("sum", Raw(func(_ context.Context, in any) (any, error) {
		total := 0
		for _, v := range in.([]any) {
			total += v.(int)
		}
		return total, nil
	}))

	out, err := Flow(All(a, b), sum).Build()(ctx, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != 16 {
		t.Fatalf("expected 16, got %v", out)
	}
}

func TestCombinatorMetadata(t *testing.T) {
	t.Parallel()

	a := New("a").Step("double", Raw(double))
	b := sleepyDouble(time.Millisecond)

	snap := Parallel(a, b).Steps()
	if snap.Name != "parallel(a,double)" {
		t.Fatalf("unexpected combined name: %q", snap.Name)
	}
	if len(snap.Steps) != 1 || snap.Steps[0].Operator != OpParallel || !snap.Steps[0].IsAsync {
		t.Fatalf("unexpected combinator step: %+v", snap.Steps)
	}
}
