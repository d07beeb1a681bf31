package pipe

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Step is one registered transformation inside a Pipe.
type Step struct {
	Key         string
	Description string
	Fn          Fn
	Meta        Metadata
}

// Pipe is a named, append-only sequence of steps. Step copies the list on
// every append, so a builder held before Build (or shared between variants)
// can never retroactively alter a compiled function.
type Pipe struct {
	name   string
	steps  []Step
	logger zerolog.Logger
}

// Option configures a Pipe at construction time.
type Option func(*Pipe)

// New returns an empty builder bound to name.
func New(name string, opts ...Option) *Pipe {
	p := &Pipe{name: name, logger: zerolog.Nop()}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *Pipe) Name() string {
	return p.name
}

// Step appends a tagged step under description and returns the widened
// builder. The metadata the Tagged carries wins; only an empty Name is
// filled in from description (first-write-wins).
func (p *Pipe) Step(description string, t Tagged) *Pipe {
	meta := t.Meta
	if meta.Name == "" {
		meta.Name = description
	}

	steps := make([]Step, len(p.steps), len(p.steps)+1)
	copy(steps, p.steps)
	steps = append(steps, Step{
		Key:         uuid.NewString(),
		Description: description,
		Fn:          t.Fn,
		Meta:        meta,
	})

	return &Pipe{name: p.name, steps: steps, logger: p.logger}
}

// StepInfo is the read-only projection of one step.
type StepInfo struct {
	Key         string
	Description string
	Name        string
	Operator    Operator
	IsAsync     bool
}

// Snapshot is the read-only projection of a builder at call time.
type Snapshot struct {
	Name  string
	Steps []StepInfo
}

// Steps returns a point-in-time snapshot of the registered steps.
func (p *Pipe) Steps() Snapshot {
	infos := make([]StepInfo, len(p.steps))
	for i, s := range p.steps {
		infos[i] = StepInfo{
			Key:         s.Key,
			Description: s.Description,
			Name:        s.Meta.Name,
			Operator:    s.Meta.Operator,
			IsAsync:     s.Meta.IsAsync,
		}
	}
	return Snapshot{Name: p.name, Steps: infos}
}

// IsAsync reports whether any registered step is asynchronous.
func (p *Pipe) IsAsync() bool {
	for _, s := range p.steps {
		if s.Meta.IsAsync {
			return true
		}
	}
	return false
}

// Build compiles the pipe into one callable function. An empty pipe compiles
// to the identity. All-sync pipes reduce the input through the steps on the
// caller's goroutine; if any step is asynchronous the loop additionally
// awaits Future results and resolves Future-valued map entries one level
// deep. Errors return unmodified; nothing here recovers or short-circuits on
// a failed Result value.
func (p *Pipe) Build() Fn {
	steps := p.steps
	if len(steps) == 0 {
		return func(_ context.Context, in any) (any, error) {
			return in, nil
		}
	}

	if p.IsAsync() {
		return p.buildAwait(steps)
	}
	return p.buildSync(steps)
}

// BuildAsync compiles the pipe and lifts the call onto its own goroutine,
// returning a Future instead of a value. This is the promise-shaped surface
// for call sites that must not block.
func (p *Pipe) BuildAsync() func(ctx context.Context, in any) *Future {
	run := p.Build()
	return func(ctx context.Context, in any) *Future {
		return Go(func() (any, error) {
			return run(ctx, in)
		})
	}
}

func (p *Pipe) buildSync(steps []Step) Fn {
	name := p.name
	logger := p.logger
	return func(ctx context.Context, in any) (any, error) {
		acc := in
		for _, s := range steps {
			start := time.Now()
			out, err := s.Fn(ctx, acc)
			if err != nil {
				return nil, err
			}
			acc = unwrap(out)
			traceStep(logger, name, s, start)
		}
		return acc, nil
	}
}

func (p *Pipe) buildAwait(steps []Step) Fn {
	name := p.name
	logger := p.logger
	return func(ctx context.Context, in any) (any, error) {
		acc := in
		for _, s := range steps {
			start := time.Now()
			out, err := s.Fn(ctx, acc)
			if err != nil {
				return nil, err
			}
			if f, ok := out.(*Future); ok {
				out, err = f.Await()
				if err != nil {
					return nil, err
				}
			}
			out = unwrap(out)
			out, err = resolveShallow(out)
			if err != nil {
				return nil, err
			}
			acc = out
			traceStep(logger, name, s, start)
		}
		return acc, nil
	}
}

// resolveShallow awaits Future values one level deep inside a map result.
// This is what settles the key a BindAsync step left unresolved.
func resolveShallow(v any) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return v, nil
	}

	var out map[string]any
	for k, val := range m {
		f, ok := val.(*Future)
		if !ok {
			continue
		}
		resolved, err := f.Await()
		if err != nil {
			return nil, err
		}
		if out == nil {
			out = make(map[string]any, len(m))
			for k2, v2 := range m {
				out[k2] = v2
			}
		}
		out[k] = resolved
	}

	if out == nil {
		return m, nil
	}
	return out, nil
}
