// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/netflow/gaussjordan"
	"github.com/katalvlaran/netflow/matrix"
)

// Option configures Solve and Invert.
type Option func(*options)

type options struct {
	eps    float64
	rcond  float64
	trace  bool
	logger *zap.Logger
}

// WithEpsilon sets the tolerance for |det| and for the elimination engine.
// Panics if eps is not finite or is negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(fmt.Sprintf("linsys: WithEpsilon(%v): epsilon must be finite and >= 0", eps))
	}

	return func(o *options) { o.eps = eps }
}

// WithRcond sets the relative singular-value cutoff of the pseudo-inverse.
// Panics if rcond is not finite or is negative.
func WithRcond(rcond float64) Option {
	if math.IsNaN(rcond) || math.IsInf(rcond, 0) || rcond < 0 {
		panic(fmt.Sprintf("linsys: WithRcond(%v): rcond must be finite and >= 0", rcond))
	}

	return func(o *options) { o.rcond = rcond }
}

// WithTrace attaches elimination steps to the result.
func WithTrace() Option {
	return func(o *options) { o.trace = true }
}

// WithLogger routes diagnostics to l. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) options {
	o := options{
		eps:    matrix.DefaultEpsilon,
		rcond:  matrix.DefaultRcond,
		logger: zap.NewNop(),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// engineOptions translates the relevant settings for gaussjordan.
func (o options) engineOptions() []gaussjordan.Option {
	out := []gaussjordan.Option{gaussjordan.WithEpsilon(o.eps)}
	if o.trace {
		out = append(out, gaussjordan.WithTrace())
	}

	return out
}
