package vehicle

type TyreModel interface {
	// LateralForce returns the lateral force (N) produced at a slip
	// angle (rad) under a normal load (N).
	LateralForce(slipAngle, normalLoad float64) float64

	// LongitudinalForce returns the longitudinal force (N) produced at
	// a slip ratio under a normal load (N).
	LongitudinalForce(slipRatio, normalLoad float64) float64

	// ForceCoupling returns the force capacity (N) remaining orthogonal
	// to an already-applied force, bounded by the friction ellipse.
	ForceCoupling(givenForce, normalLoad float64) float64
}

type AeroModel interface {
	// Downforce returns the aerodynamic downforce (N) at a speed (m/s).
	Downforce(speed float64) float64

	// Drag returns the aerodynamic drag (N) at a speed (m/s).
	Drag(speed float64) float64
}

type Chassis interface {
	Wheelbase() float64
	FrontTrackWidth() float64
	BackTrackWidth() float64
	CogHeight() float64
	FrontWeightDist() float64

	StaticLateralLoadTransfer(totalMass, lateralAccel float64) AxleTransfer
	StaticLongitudinalLoadTransfer(totalMass, longitudinalAccel float64) AxleTransfer
}

type DriveTrain interface {
	// TorqueOnAxle returns the torque (N·m) delivered on the powered
	// axle at a given velocity (m/s).
	TorqueOnAxle(velocity float64) float64

	WheelRadius() float64
}

// AxleTransfer is a front/rear pair of load transfers in Newtons.
type AxleTransfer struct {
	Front float64
	Rear  float64
}

// CorneringSolution is the result of a max-speed-over-curvature solve.
type CorneringSolution struct {
	Speed        float64 // m/s
	Curvature    float64 // 1/m, as requested
	LateralAccel float64 // m/s^2 at the solution speed
	FrontLoad    float64 // N, front axle normal load at the solution
	RearLoad     float64 // N, rear axle normal load at the solution
	Residual     float64 // available minus required lateral force, N
	Iterations   int
	Converged    bool
	Unbounded    bool // curvature 0: no lateral demand at any speed
}
