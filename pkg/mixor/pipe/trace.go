package pipe

import (
	"time"

	"github.com/rs/zerolog"
)

// WithLogger enables per-step debug tracing on the pipe. The default is
// zerolog.Nop(), so untraced pipes pay nothing.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Pipe) {
		p.logger = l
	}
}

func traceStep(l zerolog.Logger, pipe string, s Step, start time.Time) {
	l.Debug().
		Str("pipe", pipe).
		Str("step", s.Description).
		Str("operator", string(s.Meta.Operator)).
		Bool("async", s.Meta.IsAsync).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("step completed")
}
