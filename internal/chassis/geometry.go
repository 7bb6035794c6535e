// Package chassis provides the geometric and mass-distribution queries
// a car model needs: invariant scalars plus static load-transfer
// estimates at the front and rear axle.
package chassis

import "github.com/lapdoer/lapdoer/internal/vehicle"

// Geometry holds the invariant chassis scalars. Construct with
// NewGeometry; a zero Geometry is not valid.
type Geometry struct {
	wheelbase       float64
	frontTrackWidth float64
	backTrackWidth  float64
	cogHeight       float64
	frontWeightDist float64
}

func NewGeometry(wheelbase, frontTrackWidth, backTrackWidth, cogHeight, frontWeightDist float64) (*Geometry, error) {
	if wheelbase <= 0 {
		return nil, vehicle.ValidationError{Field: "wheelbase", Value: wheelbase, Reason: "must be positive"}
	}
	if frontTrackWidth <= 0 {
		return nil, vehicle.ValidationError{Field: "front track width", Value: frontTrackWidth, Reason: "must be positive"}
	}
	if backTrackWidth <= 0 {
		return nil, vehicle.ValidationError{Field: "back track width", Value: backTrackWidth, Reason: "must be positive"}
	}
	if cogHeight < 0 {
		return nil, vehicle.ValidationError{Field: "cog height", Value: cogHeight, Reason: "must not be negative"}
	}
	if frontWeightDist <= 0 || frontWeightDist >= 1 {
		return nil, vehicle.ValidationError{Field: "front weight distribution", Value: frontWeightDist, Reason: "must be in (0, 1)"}
	}
	return &Geometry{
		wheelbase:       wheelbase,
		frontTrackWidth: frontTrackWidth,
		backTrackWidth:  backTrackWidth,
		cogHeight:       cogHeight,
		frontWeightDist: frontWeightDist,
	}, nil
}

func (g *Geometry) Wheelbase() float64       { return g.wheelbase }
func (g *Geometry) FrontTrackWidth() float64 { return g.frontTrackWidth }
func (g *Geometry) BackTrackWidth() float64  { return g.backTrackWidth }
func (g *Geometry) CogHeight() float64       { return g.cogHeight }
func (g *Geometry) FrontWeightDist() float64 { return g.frontWeightDist }

// StaticLateralLoadTransfer estimates side-to-side load transfer at
// each axle, computed independently over each axle's track width and
// scaled by that axle's share of the total weight.
func (g *Geometry) StaticLateralLoadTransfer(totalMass, lateralAccel float64) vehicle.AxleTransfer {
	front := totalMass * lateralAccel * g.cogHeight / g.frontTrackWidth
	rear := totalMass * lateralAccel * g.cogHeight / g.backTrackWidth

	return vehicle.AxleTransfer{
		Front: front * g.frontWeightDist,
		Rear:  rear * (1 - g.frontWeightDist),
	}
}

// StaticLongitudinalLoadTransfer estimates front-to-rear load transfer
// under acceleration or braking. Forward acceleration shifts load
// rearward: the front value is negative and the pair sums to zero.
func (g *Geometry) StaticLongitudinalLoadTransfer(totalMass, longitudinalAccel float64) vehicle.AxleTransfer {
	transfer := totalMass * longitudinalAccel * g.cogHeight / g.wheelbase

	return vehicle.AxleTransfer{
		Front: -transfer,
		Rear:  transfer,
	}
}
