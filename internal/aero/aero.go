// Package aero provides implementations of the vehicle.AeroModel
// contract. Both forces are zero at zero speed and non-negative for
// non-negative speed.
package aero

import "github.com/lapdoer/lapdoer/internal/vehicle"

// DefaultAirDensity is sea-level air density in kg/m^3.
const DefaultAirDensity = 1.25

// ForceFunc maps speed (m/s) to a force (N).
type ForceFunc func(speed float64) float64

// Generic is an aero model assembled from user-supplied functions.
type Generic struct {
	downforce ForceFunc
	drag      ForceFunc
}

func NewGeneric(downforce, drag ForceFunc) (*Generic, error) {
	if downforce == nil {
		return nil, vehicle.ValidationError{Field: "downforce func", Reason: "must not be nil"}
	}
	if drag == nil {
		return nil, vehicle.ValidationError{Field: "drag func", Reason: "must not be nil"}
	}
	return &Generic{downforce: downforce, drag: drag}, nil
}

func (g *Generic) Downforce(speed float64) float64 { return g.downforce(speed) }
func (g *Generic) Drag(speed float64) float64      { return g.drag(speed) }

// Quadratic models both forces as 0.5*rho*coefficient*v^2, the usual
// lumped-coefficient form with ClA and CdA in m^2.
type Quadratic struct {
	ClA float64 // downforce coefficient times frontal area
	CdA float64 // drag coefficient times frontal area
	Rho float64 // air density, kg/m^3
}

func NewQuadratic(cla, cda float64) (*Quadratic, error) {
	if cla < 0 {
		return nil, vehicle.ValidationError{Field: "ClA", Value: cla, Reason: "must not be negative"}
	}
	if cda < 0 {
		return nil, vehicle.ValidationError{Field: "CdA", Value: cda, Reason: "must not be negative"}
	}
	return &Quadratic{ClA: cla, CdA: cda, Rho: DefaultAirDensity}, nil
}

func (q *Quadratic) Downforce(speed float64) float64 {
	return 0.5 * q.Rho * q.ClA * speed * speed
}

func (q *Quadratic) Drag(speed float64) float64 {
	return 0.5 * q.Rho * q.CdA * speed * speed
}

// None is the zero-aero model, for mechanical-grip studies.
type None struct{}

func (None) Downforce(speed float64) float64 { return 0 }
func (None) Drag(speed float64) float64      { return 0 }
