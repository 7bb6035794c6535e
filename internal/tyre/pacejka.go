package tyre

import "math"

// Pacejka is a magic-formula tyre model. A single coefficient set
// shapes both the lateral and the longitudinal curve; the friction
// ellipse is scaled by the peak coefficient D.
type Pacejka struct {
	B float64 // stiffness factor
	C float64 // shape factor
	D float64 // peak friction coefficient
	E float64 // curvature factor
}

// NewPacejka returns a model with coefficients typical of a road tyre.
func NewPacejka() *Pacejka {
	return &Pacejka{
		B: 10.0,
		C: 1.9,
		D: 1.1,
		E: 0.97,
	}
}

func (p *Pacejka) magic(slip, normalLoad float64) float64 {
	bs := p.B * slip
	return p.D * normalLoad * math.Sin(p.C*math.Atan(bs-p.E*(bs-math.Atan(bs))))
}

func (p *Pacejka) LateralForce(slipAngle, normalLoad float64) float64 {
	if normalLoad <= 0 {
		return 0
	}
	return p.magic(slipAngle, normalLoad)
}

func (p *Pacejka) LongitudinalForce(slipRatio, normalLoad float64) float64 {
	if normalLoad <= 0 {
		return 0
	}
	return p.magic(slipRatio, normalLoad)
}

func (p *Pacejka) ForceCoupling(givenForce, normalLoad float64) float64 {
	return scaledEllipse(givenForce, normalLoad, p.D)
}
