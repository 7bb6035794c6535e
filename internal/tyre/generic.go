// Package tyre provides implementations of the vehicle.TyreModel
// contract: a function-injected generic model, a linear-stiffness
// model, and a magic-formula model. All models return zero force for a
// non-positive normal load; a lifted wheel contributes nothing rather
// than faulting.
package tyre

import "github.com/lapdoer/lapdoer/internal/vehicle"

// ForceFunc maps (slip, normalLoad) to a force in Newtons. Slip is an
// angle in radians for lateral force and a dimensionless ratio for
// longitudinal force.
type ForceFunc func(slip, normalLoad float64) float64

// CouplingFunc maps (givenForce, normalLoad) to the remaining
// orthogonal force capacity in Newtons.
type CouplingFunc func(givenForce, normalLoad float64) float64

// Generic is a tyre model assembled from user-supplied force functions.
type Generic struct {
	lateral      ForceFunc
	longitudinal ForceFunc
	coupling     CouplingFunc
}

func NewGeneric(lateral, longitudinal ForceFunc, coupling CouplingFunc) (*Generic, error) {
	if lateral == nil {
		return nil, vehicle.ValidationError{Field: "lateral force func", Reason: "must not be nil"}
	}
	if longitudinal == nil {
		return nil, vehicle.ValidationError{Field: "longitudinal force func", Reason: "must not be nil"}
	}
	if coupling == nil {
		return nil, vehicle.ValidationError{Field: "coupling func", Reason: "must not be nil"}
	}
	return &Generic{lateral: lateral, longitudinal: longitudinal, coupling: coupling}, nil
}

func (g *Generic) LateralForce(slipAngle, normalLoad float64) float64 {
	if normalLoad <= 0 {
		return 0
	}
	return g.lateral(slipAngle, normalLoad)
}

func (g *Generic) LongitudinalForce(slipRatio, normalLoad float64) float64 {
	if normalLoad <= 0 {
		return 0
	}
	return g.longitudinal(slipRatio, normalLoad)
}

func (g *Generic) ForceCoupling(givenForce, normalLoad float64) float64 {
	if normalLoad <= 0 {
		return 0
	}
	return g.coupling(givenForce, normalLoad)
}
