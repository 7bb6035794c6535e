package tyre

import "github.com/lapdoer/lapdoer/internal/vehicle"

// Linear models tyre forces as proportional to slip and normal load,
// with the plain friction-ellipse coupling. Useful for first-order
// cornering studies and as a known-answer fixture.
type Linear struct {
	CorneringStiffness float64 // N per N of load per radian of slip
	LongStiffness      float64 // N per N of load per unit slip ratio
}

func NewLinear(corneringStiffness float64) (*Linear, error) {
	if corneringStiffness <= 0 {
		return nil, vehicle.ValidationError{Field: "cornering stiffness", Value: corneringStiffness, Reason: "must be positive"}
	}
	return &Linear{
		CorneringStiffness: corneringStiffness,
		LongStiffness:      corneringStiffness * 1.2,
	}, nil
}

func (l *Linear) LateralForce(slipAngle, normalLoad float64) float64 {
	if normalLoad <= 0 {
		return 0
	}
	return l.CorneringStiffness * normalLoad * slipAngle
}

func (l *Linear) LongitudinalForce(slipRatio, normalLoad float64) float64 {
	if normalLoad <= 0 {
		return 0
	}
	return l.LongStiffness * normalLoad * slipRatio
}

func (l *Linear) ForceCoupling(givenForce, normalLoad float64) float64 {
	return EllipseCoupling(givenForce, normalLoad)
}
