package tyre

import "math"

// EllipseCoupling returns the force capacity remaining orthogonal to an
// already-applied force under a friction-circle bound of radius
// normalLoad. A load at or below zero has no capacity in any direction,
// and an applied force outside the circle leaves exactly zero, never a
// negative or NaN value.
func EllipseCoupling(givenForce, normalLoad float64) float64 {
	if normalLoad <= 0 {
		return 0
	}
	if math.Abs(givenForce) > normalLoad {
		return 0
	}
	return math.Sqrt(math.Max(0, normalLoad*normalLoad-givenForce*givenForce))
}

// scaledEllipse is EllipseCoupling with the circle radius scaled by a
// peak friction coefficient.
func scaledEllipse(givenForce, normalLoad, mu float64) float64 {
	return EllipseCoupling(givenForce, mu*normalLoad)
}
