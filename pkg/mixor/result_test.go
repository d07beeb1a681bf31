package mixor

import (
	"errors"
	"testing"
)

func TestOk(t *testing.T) {
	t.Parallel()
	r := Ok[int, error](5)

	if !r.IsOk() || r.IsErr() {
		t.Fatalf("expected ok result, got: ok=%v, err=%v", r.IsOk(), r.IsErr())
	}
	if r.Value() != 5 {
		t.Fatalf("expected value 5, got %v", r.Value())
	}
	if r.Failure() != nil {
		t.Fatalf("expected nil failure on ok result, got %v", r.Failure())
	}
}

func TestErr(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	r := Err[int](boom)

	if r.IsOk() || !r.IsErr() {
		t.Fatalf("expected failed result, got: ok=%v, err=%v", r.IsOk(), r.IsErr())
	}
	if r.Failure() != boom {
		t.Fatalf("expected failure %v, got %v", boom, r.Failure())
	}
	if r.Value() != 0 {
		t.Fatalf("expected zero value on failed result, got %v", r.Value())
	}
}

func TestExactlyOnePredicate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		r    Result[string, string]
	}{
		{"ok", Ok[string, string]("v")},
		{"err", Err[string, string]("f")},
	}

	for _, c := range cases {
		if c.r.IsOk() == c.r.IsErr() {
			t.Fatalf("%s: predicates must disagree, got ok=%v err=%v", c.name, c.r.IsOk(), c.r.IsErr())
		}
	}
}

func TestHistoricalAliases(t *testing.T) {
	t.Parallel()
	s := Success[int, error](1)
	f := Fail[int](errors.New("bad"))

	if !s.IsSuccess() || s.IsFail() {
		t.Fatalf("Success must satisfy IsSuccess only")
	}
	if !f.IsFail() || f.IsSuccess() {
		t.Fatalf("Fail must satisfy IsFail only")
	}
}

func TestProvenance(t *testing.T) {
	t.Parallel()
	a := Ok[int, error](1)
	b := Ok[int, error](1)

	if a.Id() == b.Id() {
		t.Fatalf("distinct results must carry distinct ids")
	}
	if a.CreatedAt().IsZero() {
		t.Fatalf("createdAt must be stamped at construction")
	}
	if loc := a.CreatedAt().Location(); loc != nil && loc.String() != "UTC" {
		t.Fatalf("createdAt must be UTC, got %v", loc)
	}
}

func TestNonGenericViews(t *testing.T) {
	t.Parallel()
	var v any = Ok[int, error](3)

	o, ok := v.(Outcome)
	if !ok {
		t.Fatalf("Result must implement Outcome regardless of type parameters")
	}
	if !o.IsOk() {
		t.Fatalf("Outcome view must agree with the concrete result")
	}
}
