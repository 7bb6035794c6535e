// Package drivetrain provides implementations of the
// vehicle.DriveTrain contract: torque delivered on the powered axle as
// a function of vehicle speed.
package drivetrain

import "github.com/lapdoer/lapdoer/internal/vehicle"

// TorqueFunc maps velocity (m/s) to axle torque (N·m).
type TorqueFunc func(velocity float64) float64

// Generic is a drivetrain with a user-supplied torque curve.
type Generic struct {
	torque      TorqueFunc
	wheelRadius float64
}

func NewGeneric(torque TorqueFunc, wheelRadius float64) (*Generic, error) {
	if torque == nil {
		return nil, vehicle.ValidationError{Field: "torque func", Reason: "must not be nil"}
	}
	if wheelRadius <= 0 {
		return nil, vehicle.ValidationError{Field: "wheel radius", Value: wheelRadius, Reason: "must be positive"}
	}
	return &Generic{torque: torque, wheelRadius: wheelRadius}, nil
}

func (g *Generic) TorqueOnAxle(velocity float64) float64 { return g.torque(velocity) }
func (g *Generic) WheelRadius() float64                  { return g.wheelRadius }

// ConstantPower is a power-limited drivetrain with a launch-force
// plateau at low speed, where the power curve would demand infinite
// torque.
type ConstantPower struct {
	Power       float64 // W
	LaunchForce float64 // N, tractive force cap off the line
	wheelRadius float64
}

func NewConstantPower(power, launchForce, wheelRadius float64) (*ConstantPower, error) {
	if power <= 0 {
		return nil, vehicle.ValidationError{Field: "power", Value: power, Reason: "must be positive"}
	}
	if launchForce <= 0 {
		return nil, vehicle.ValidationError{Field: "launch force", Value: launchForce, Reason: "must be positive"}
	}
	if wheelRadius <= 0 {
		return nil, vehicle.ValidationError{Field: "wheel radius", Value: wheelRadius, Reason: "must be positive"}
	}
	return &ConstantPower{Power: power, LaunchForce: launchForce, wheelRadius: wheelRadius}, nil
}

func (c *ConstantPower) TorqueOnAxle(velocity float64) float64 {
	force := c.LaunchForce
	if velocity > 0 && c.Power/velocity < force {
		force = c.Power / velocity
	}
	return force * c.wheelRadius
}

func (c *ConstantPower) WheelRadius() float64 { return c.wheelRadius }
