// Package car composes a tyre model, an aero model, and a chassis into
// a single steady-state cornering model: bicycle-model slip-angle
// algebra plus the max-speed-over-curvature solver.
package car

import (
	"math"

	"github.com/lapdoer/lapdoer/internal/vehicle"
)

const gravity = 9.81

// Car is the root composition. It is immutable after construction and
// stateless between queries; sub-models are held by reference and may
// be shared across cars, provided they are themselves stateless.
type Car struct {
	tyre  vehicle.TyreModel
	aero  vehicle.AeroModel
	geom  vehicle.Chassis
	drive vehicle.DriveTrain // optional
	mass  float64
}

type Option func(*Car)

// WithDriveTrain fits a drivetrain, enabling the drag-limited top-speed
// query.
func WithDriveTrain(dt vehicle.DriveTrain) Option {
	return func(c *Car) { c.drive = dt }
}

func New(tyre vehicle.TyreModel, aero vehicle.AeroModel, geom vehicle.Chassis, mass float64, opts ...Option) (*Car, error) {
	if tyre == nil {
		return nil, vehicle.ValidationError{Field: "tyre model", Reason: "must not be nil"}
	}
	if aero == nil {
		return nil, vehicle.ValidationError{Field: "aero model", Reason: "must not be nil"}
	}
	if geom == nil {
		return nil, vehicle.ValidationError{Field: "chassis", Reason: "must not be nil"}
	}
	if mass <= 0 {
		return nil, vehicle.ValidationError{Field: "mass", Value: mass, Reason: "must be positive"}
	}

	c := &Car{tyre: tyre, aero: aero, geom: geom, mass: mass}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Car) TyreModel() vehicle.TyreModel   { return c.tyre }
func (c *Car) AeroModel() vehicle.AeroModel   { return c.aero }
func (c *Car) Geometry() vehicle.Chassis      { return c.geom }
func (c *Car) DriveTrain() vehicle.DriveTrain { return c.drive }
func (c *Car) Mass() float64                  { return c.mass }

// RequiredLateralForce is the centripetal force demand (N) to hold a
// path of the given curvature (1/m) at the given speed (m/s).
func (c *Car) RequiredLateralForce(speed, curvature float64) float64 {
	return c.mass * speed * speed * curvature
}

// BodySlipAngle is the slip angle (rad) of the body at its center of
// gravity.
func (c *Car) BodySlipAngle(lateralVelocity, longitudinalVelocity float64) float64 {
	return math.Atan2(lateralVelocity, longitudinalVelocity)
}

// FrontBodySlipAngle offsets the body slip angle by the yaw-rate
// correction at the front axle, proportional to its distance from the
// center of gravity.
func (c *Car) FrontBodySlipAngle(bodySlip, curvature float64) float64 {
	a := c.geom.Wheelbase() * c.geom.FrontWeightDist()
	return bodySlip + a*curvature
}

// BackBodySlipAngle offsets the body slip angle by the yaw-rate
// correction at the rear axle.
func (c *Car) BackBodySlipAngle(bodySlip, curvature float64) float64 {
	b := c.geom.Wheelbase() * (1 - c.geom.FrontWeightDist())
	return bodySlip - b*curvature
}

// FrontSlipAngle is the front tyre slip angle: steering input directly
// reduces the effective slip.
func (c *Car) FrontSlipAngle(frontBodySlip, steeringAngle float64) float64 {
	return frontBodySlip - steeringAngle
}

// BackSlipAngle is the rear tyre slip angle; the rear axle is not
// steered.
func (c *Car) BackSlipAngle(backBodySlip float64) float64 {
	return backBodySlip
}

// SteeringAngle recovers the steering input consistent with a target
// front/rear slip pair and curvature.
func (c *Car) SteeringAngle(frontSlip, curvature, backSlip float64) float64 {
	return frontSlip + curvature*c.geom.Wheelbase() - backSlip
}
