package car

import (
	"errors"
	"math"

	"github.com/lapdoer/lapdoer/internal/solve"
	"github.com/lapdoer/lapdoer/internal/vehicle"
)

// SolverOptions configures the max-speed solver. Tolerance and the
// iteration cap are explicit; there are no hidden constants.
type SolverOptions struct {
	Tolerance     float64 // bisection interval width, m/s
	MaxIterations int
	SpeedCap      float64 // m/s, upper search bound; beyond it the solve diverges
	// LongitudinalForce is a simultaneous longitudinal force demand (N,
	// total over both axles) for combined-slip scenarios. Zero for pure
	// cornering.
	LongitudinalForce float64
}

func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     1e-6,
		MaxIterations: 200,
		SpeedCap:      150,
	}
}

// axleLoads returns the front and rear normal loads (N) at a candidate
// speed: static share plus downforce share apportioned by weight
// distribution, minus lateral transfer at the implied lateral
// acceleration, plus the (signed) longitudinal transfer when a
// combined-slip demand is present. Transfers combine additively. A
// negative load clamps to zero: a lifted axle has no capacity, not a
// fault.
func (c *Car) axleLoads(speed, curvature float64, opts SolverOptions) (front, rear float64) {
	fwd := c.geom.FrontWeightDist()
	rwd := 1 - fwd

	weight := c.mass*gravity + c.aero.Downforce(speed)
	lat := c.geom.StaticLateralLoadTransfer(c.mass, speed*speed*curvature)
	long := c.geom.StaticLongitudinalLoadTransfer(c.mass, opts.LongitudinalForce/c.mass)

	front = math.Max(0, weight*fwd-lat.Front+long.Front)
	rear = math.Max(0, weight*rwd-lat.Rear+long.Rear)
	return front, rear
}

// availableLateralForce sums the per-axle lateral capacity (N) at a
// candidate speed. Each axle is evaluated at its kinematic slip angle
// (zero body slip at the CG in the steady state) and bounded by the
// friction-ellipse coupling against its share of the longitudinal
// demand.
func (c *Car) availableLateralForce(speed, curvature float64, opts SolverOptions) float64 {
	frontLoad, rearLoad := c.axleLoads(speed, curvature, opts)

	frontSlip := c.FrontBodySlipAngle(0, curvature)
	rearSlip := math.Abs(c.BackSlipAngle(c.BackBodySlipAngle(0, curvature)))

	fwd := c.geom.FrontWeightDist()
	frontDemand := opts.LongitudinalForce * fwd
	rearDemand := opts.LongitudinalForce * (1 - fwd)

	front := math.Min(
		math.Abs(c.tyre.LateralForce(frontSlip, frontLoad)),
		c.tyre.ForceCoupling(frontDemand, frontLoad),
	)
	rear := math.Min(
		math.Abs(c.tyre.LateralForce(rearSlip, rearLoad)),
		c.tyre.ForceCoupling(rearDemand, rearLoad),
	)
	return front + rear
}

// MaxSpeedOverCurvature finds the maximum speed sustainable through a
// path of the given curvature: the largest speed at which the required
// centripetal force does not exceed the available lateral force.
//
// Zero curvature needs no lateral force at any speed, so the solver
// short-circuits: with a drivetrain fitted it returns the drag-limited
// top speed, otherwise the speed cap flagged Unbounded. Negative
// curvature is solved on its magnitude.
//
// A solve that exhausts its iteration cap surfaces a
// solve.ConvergenceError with the last bracket and residual; a car
// whose capacity still exceeds demand at the speed cap surfaces a
// solve.DivergenceError.
func (c *Car) MaxSpeedOverCurvature(curvature float64, opts SolverOptions) (vehicle.CorneringSolution, error) {
	if opts.SpeedCap <= 0 {
		return vehicle.CorneringSolution{}, vehicle.ValidationError{Field: "speed cap", Value: opts.SpeedCap, Reason: "must be positive"}
	}

	if curvature == 0 {
		return c.zeroCurvatureSolution(opts)
	}

	k := math.Abs(curvature)
	f := func(v float64) float64 {
		return c.availableLateralForce(v, k, opts) - c.RequiredLateralForce(v, k)
	}

	root, iters, err := solve.MaxRoot(f, 0, opts.SpeedCap, solve.Options{
		Tolerance:     opts.Tolerance,
		MaxIterations: opts.MaxIterations,
	})
	if err != nil {
		return vehicle.CorneringSolution{}, err
	}

	frontLoad, rearLoad := c.axleLoads(root, k, opts)
	return vehicle.CorneringSolution{
		Speed:        root,
		Curvature:    curvature,
		LateralAccel: root * root * k,
		FrontLoad:    frontLoad,
		RearLoad:     rearLoad,
		Residual:     f(root),
		Iterations:   iters,
		Converged:    true,
	}, nil
}

func (c *Car) zeroCurvatureSolution(opts SolverOptions) (vehicle.CorneringSolution, error) {
	speed := opts.SpeedCap
	unbounded := true
	iters := 0

	if c.drive != nil {
		v, n, err := c.TopSpeed(opts)
		var div solve.DivergenceError
		switch {
		case err == nil:
			speed, unbounded, iters = v, false, n
		case errors.As(err, &div):
			// tractive force still covers drag at the cap: the straight
			// is unbounded within the search range
		default:
			return vehicle.CorneringSolution{}, err
		}
	}

	frontLoad, rearLoad := c.axleLoads(speed, 0, opts)
	return vehicle.CorneringSolution{
		Speed:      speed,
		FrontLoad:  frontLoad,
		RearLoad:   rearLoad,
		Iterations: iters,
		Converged:  true,
		Unbounded:  unbounded,
	}, nil
}

// TopSpeed finds the drag-limited top speed: the largest speed at which
// tractive force still covers aerodynamic drag. It requires a
// drivetrain.
func (c *Car) TopSpeed(opts SolverOptions) (float64, int, error) {
	if c.drive == nil {
		return 0, 0, vehicle.ValidationError{Field: "drivetrain", Reason: "not fitted"}
	}
	if opts.SpeedCap <= 0 {
		return 0, 0, vehicle.ValidationError{Field: "speed cap", Value: opts.SpeedCap, Reason: "must be positive"}
	}

	f := func(v float64) float64 {
		tractive := c.drive.TorqueOnAxle(v) / c.drive.WheelRadius()
		return tractive - c.aero.Drag(v)
	}

	return solve.MaxRoot(f, 0, opts.SpeedCap, solve.Options{
		Tolerance:     opts.Tolerance,
		MaxIterations: opts.MaxIterations,
	})
}
