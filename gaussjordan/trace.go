// SPDX-License-Identifier: MIT

package gaussjordan

import (
	"errors"
	"iter"
	"sync"

	"github.com/katalvlaran/netflow/matrix"
)

const opTrace = "Trace"

// Trace is a lazy, restartable view of the steps of one elimination.
//
// Every call to All starts over from a private copy of the input, so a Trace
// may be ranged over any number of times (and from several goroutines).
// Nothing is computed until the sequence is consumed, and the run stops as
// soon as the consumer breaks out of the loop.
type Trace struct {
	src *matrix.Dense
	n   int
	eps float64
	err error

	mu     sync.Mutex
	runErr error // outcome of the most recent finished run
}

// NewTrace prepares a lazy trace of Reduce(aug, pivotCols, opts...).
// WithTrace is implied. Validation errors are reported by Err and make All
// yield nothing. aug is copied once here; later changes to it are not seen.
func NewTrace(aug matrix.Matrix, pivotCols int, opts ...Option) *Trace {
	o := gatherOptions(opts...)
	src, err := prepare(aug, pivotCols)

	return &Trace{src: src, n: pivotCols, eps: o.eps, err: err}
}

// Err returns the validation error captured by NewTrace or, failing that,
// the numeric error that cut the most recent run short. A consumer breaking
// out of the loop is not an error.
func (t *Trace) Err() error {
	if t.err != nil {
		return t.err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.runErr
}

// All yields the steps in order. A numeric failure mid-run (overflow to ±Inf)
// ends the sequence early and is reported by Err afterwards.
func (t *Trace) All() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		if t.err != nil {
			return
		}
		r := &runner{
			m:    t.src.Clone().(*matrix.Dense),
			n:    t.n,
			eps:  t.eps,
			emit: yield,
		}
		_, err := r.run()
		if errors.Is(err, errStopped) {
			err = nil
		}
		if err != nil {
			err = gjErrorf(opTrace, err)
		}
		t.mu.Lock()
		t.runErr = err
		t.mu.Unlock()
	}
}
