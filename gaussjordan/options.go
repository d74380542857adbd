// SPDX-License-Identifier: MIT

package gaussjordan

import (
	"fmt"
	"math"

	"github.com/katalvlaran/netflow/matrix"
)

// Option configures one elimination run.
type Option func(*options)

type options struct {
	eps   float64
	trace bool
}

// WithEpsilon sets the single magnitude tolerance used for pivot selection,
// the "already normalized" check and the "already eliminated" check.
// Panics if eps is not finite or is negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(fmt.Sprintf("gaussjordan: WithEpsilon(%v): epsilon must be finite and >= 0", eps))
	}

	return func(o *options) { o.eps = eps }
}

// WithTrace makes Reduce record a Step (with a matrix snapshot) per row operation.
func WithTrace() Option {
	return func(o *options) { o.trace = true }
}

func gatherOptions(opts ...Option) options {
	o := options{eps: matrix.DefaultEpsilon}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
