// Package sweep runs the max-speed solver over ranges of curvature or
// corner radius, producing data suitable for tabulation and plotting.
package sweep

import "github.com/lapdoer/lapdoer/internal/car"

// Point is one solved curvature sample.
type Point struct {
	Curvature    float64
	Radius       float64 // 1/curvature; 0 when curvature is 0
	Speed        float64
	LateralAccel float64
	FrontLoad    float64
	RearLoad     float64
	Converged    bool
}

// Curvature sweeps the solver over [min, max] curvature in the given
// number of steps. Non-convergent samples are recorded with Converged
// false rather than aborting the sweep.
func Curvature(c *car.Car, min, max float64, steps int, opts car.SolverOptions) []Point {
	if steps <= 1 {
		steps = 2
	}
	step := (max - min) / float64(steps-1)

	points := make([]Point, 0, steps)
	for i := 0; i < steps; i++ {
		k := min + float64(i)*step
		points = append(points, solveOne(c, k, opts))
	}
	return points
}

// Radii sweeps over corner radii from tight to open, which reads more
// naturally for track work than raw curvature.
func Radii(c *car.Car, minRadius, maxRadius float64, steps int, opts car.SolverOptions) []Point {
	if steps <= 1 {
		steps = 2
	}
	step := (maxRadius - minRadius) / float64(steps-1)

	points := make([]Point, 0, steps)
	for i := 0; i < steps; i++ {
		r := minRadius + float64(i)*step
		k := 0.0
		if r != 0 {
			k = 1 / r
		}
		points = append(points, solveOne(c, k, opts))
	}
	return points
}

func solveOne(c *car.Car, curvature float64, opts car.SolverOptions) Point {
	p := Point{Curvature: curvature}
	if curvature != 0 {
		p.Radius = 1 / curvature
	}

	sol, err := c.MaxSpeedOverCurvature(curvature, opts)
	if err != nil {
		return p
	}

	p.Speed = sol.Speed
	p.LateralAccel = sol.LateralAccel
	p.FrontLoad = sol.FrontLoad
	p.RearLoad = sol.RearLoad
	p.Converged = sol.Converged
	return p
}

// Speeds extracts the speed series from a sweep, for plotting.
func Speeds(points []Point) []float64 {
	speeds := make([]float64, len(points))
	for i, p := range points {
		speeds[i] = p.Speed
	}
	return speeds
}

// MaxLateralAccel returns the highest lateral acceleration reached by
// any converged sample.
func MaxLateralAccel(points []Point) float64 {
	max := 0.0
	for _, p := range points {
		if p.Converged && p.LateralAccel > max {
			max = p.LateralAccel
		}
	}
	return max
}
