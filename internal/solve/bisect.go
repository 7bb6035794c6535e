// Package solve provides the scalar root-finding kernel behind the
// cornering solver: bracket scanning plus bisection with explicit
// tolerance and iteration limits.
package solve

import "fmt"

// bracketSegments is the coarse grid used to locate the topmost sign
// change before bisecting it.
const bracketSegments = 64

type Options struct {
	Tolerance     float64 // interval width at which the root is accepted
	MaxIterations int
}

func DefaultOptions() Options {
	return Options{
		Tolerance:     1e-6,
		MaxIterations: 200,
	}
}

func (o Options) validate() error {
	if o.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive, got %g", o.Tolerance)
	}
	if o.MaxIterations <= 0 {
		return fmt.Errorf("max iterations must be positive, got %d", o.MaxIterations)
	}
	return nil
}

// ConvergenceError reports a solve that ran out of iterations before
// the bracket closed to tolerance. The last bracket and residual are
// carried so the caller can retry with relaxed settings.
type ConvergenceError struct {
	Lo, Hi     float64
	Residual   float64
	Iterations int
}

func (e ConvergenceError) Error() string {
	return fmt.Sprintf("no convergence after %d iterations: bracket [%g, %g], residual %g",
		e.Iterations, e.Lo, e.Hi, e.Residual)
}

// DivergenceError reports a function still positive at the upper search
// bound, so no root exists below the configured cap.
type DivergenceError struct {
	Cap      float64
	Residual float64
}

func (e DivergenceError) Error() string {
	return fmt.Sprintf("no root below cap %g: residual still %g", e.Cap, e.Residual)
}

// MaxRoot finds the largest root of f on [lo, hi] where f crosses from
// positive to negative, scanning a coarse grid from the top down and
// bisecting the first sign change. It returns the root and the number
// of bisection iterations spent.
//
// If f is non-positive over the whole interval the root is taken to be
// lo. If f is still positive at hi, a DivergenceError is returned.
func MaxRoot(f func(float64) float64, lo, hi float64, opts Options) (float64, int, error) {
	if err := opts.validate(); err != nil {
		return 0, 0, err
	}
	if hi <= lo {
		return 0, 0, fmt.Errorf("empty search interval [%g, %g]", lo, hi)
	}

	upper := f(hi)
	if upper > 0 {
		return 0, 0, DivergenceError{Cap: hi, Residual: upper}
	}

	step := (hi - lo) / bracketSegments
	x1, f1 := hi, upper
	for i := bracketSegments - 1; i >= 0; i-- {
		x0 := lo + float64(i)*step
		f0 := f(x0)
		if f0 > 0 && f1 <= 0 {
			return bisect(f, x0, x1, opts)
		}
		x1, f1 = x0, f0
	}

	// f never went positive: the boundary is the answer
	return lo, 0, nil
}

// bisect assumes f(lo) > 0 >= f(hi).
func bisect(f func(float64) float64, lo, hi float64, opts Options) (float64, int, error) {
	for i := 1; i <= opts.MaxIterations; i++ {
		mid := 0.5 * (lo + hi)
		if hi-lo <= opts.Tolerance {
			return mid, i, nil
		}
		if f(mid) > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}

	mid := 0.5 * (lo + hi)
	return 0, opts.MaxIterations, ConvergenceError{
		Lo:         lo,
		Hi:         hi,
		Residual:   f(mid),
		Iterations: opts.MaxIterations,
	}
}
