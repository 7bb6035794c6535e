// Package garage builds complete car models from configuration,
// mapping model names to sub-model constructors.
package garage

import (
	"fmt"

	"github.com/lapdoer/lapdoer/internal/aero"
	"github.com/lapdoer/lapdoer/internal/car"
	"github.com/lapdoer/lapdoer/internal/chassis"
	"github.com/lapdoer/lapdoer/internal/config"
	"github.com/lapdoer/lapdoer/internal/drivetrain"
	"github.com/lapdoer/lapdoer/internal/tyre"
	"github.com/lapdoer/lapdoer/internal/vehicle"
)

type Registry struct {
	tyres       map[string]func(config.TyreConfig) (vehicle.TyreModel, error)
	aeros       map[string]func(config.AeroConfig) (vehicle.AeroModel, error)
	drivetrains map[string]func(config.DriveTrainConfig) (vehicle.DriveTrain, error)
}

func NewRegistry() *Registry {
	r := &Registry{
		tyres:       make(map[string]func(config.TyreConfig) (vehicle.TyreModel, error)),
		aeros:       make(map[string]func(config.AeroConfig) (vehicle.AeroModel, error)),
		drivetrains: make(map[string]func(config.DriveTrainConfig) (vehicle.DriveTrain, error)),
	}

	r.tyres["linear"] = func(cfg config.TyreConfig) (vehicle.TyreModel, error) {
		return tyre.NewLinear(cfg.Stiffness)
	}
	r.tyres["pacejka"] = func(cfg config.TyreConfig) (vehicle.TyreModel, error) {
		p := tyre.NewPacejka()
		if cfg.B != 0 {
			p.B = cfg.B
		}
		if cfg.C != 0 {
			p.C = cfg.C
		}
		if cfg.D != 0 {
			p.D = cfg.D
		}
		if cfg.E != 0 {
			p.E = cfg.E
		}
		return p, nil
	}

	r.aeros["none"] = func(cfg config.AeroConfig) (vehicle.AeroModel, error) {
		return aero.None{}, nil
	}
	r.aeros["quadratic"] = func(cfg config.AeroConfig) (vehicle.AeroModel, error) {
		q, err := aero.NewQuadratic(cfg.ClA, cfg.CdA)
		if err != nil {
			return nil, err
		}
		if cfg.Rho > 0 {
			q.Rho = cfg.Rho
		}
		return q, nil
	}

	r.drivetrains["constant_power"] = func(cfg config.DriveTrainConfig) (vehicle.DriveTrain, error) {
		return drivetrain.NewConstantPower(cfg.Power, cfg.LaunchForce, cfg.WheelRadius)
	}

	return r
}

func (r *Registry) GetTyre(cfg config.TyreConfig) (vehicle.TyreModel, error) {
	fn, ok := r.tyres[cfg.Model]
	if !ok {
		return nil, fmt.Errorf("unknown tyre model: %s", cfg.Model)
	}
	return fn(cfg)
}

func (r *Registry) GetAero(cfg config.AeroConfig) (vehicle.AeroModel, error) {
	fn, ok := r.aeros[cfg.Model]
	if !ok {
		return nil, fmt.Errorf("unknown aero model: %s", cfg.Model)
	}
	return fn(cfg)
}

func (r *Registry) GetDriveTrain(cfg config.DriveTrainConfig) (vehicle.DriveTrain, error) {
	if cfg.Model == "" || cfg.Model == "none" {
		return nil, nil
	}
	fn, ok := r.drivetrains[cfg.Model]
	if !ok {
		return nil, fmt.Errorf("unknown drivetrain model: %s", cfg.Model)
	}
	return fn(cfg)
}

func (r *Registry) ListTyres() []string {
	names := make([]string, 0, len(r.tyres))
	for name := range r.tyres {
		names = append(names, name)
	}
	return names
}

// Build assembles a car from a configuration.
func Build(cfg *config.Config) (*car.Car, error) {
	r := NewRegistry()

	ty, err := r.GetTyre(cfg.Tyre)
	if err != nil {
		return nil, fmt.Errorf("tyre: %w", err)
	}

	ae, err := r.GetAero(cfg.Aero)
	if err != nil {
		return nil, fmt.Errorf("aero: %w", err)
	}

	geom, err := chassis.NewGeometry(
		cfg.Chassis.Wheelbase,
		cfg.Chassis.FrontTrackWidth,
		cfg.Chassis.BackTrackWidth,
		cfg.Chassis.CogHeight,
		cfg.Chassis.FrontWeightDist,
	)
	if err != nil {
		return nil, fmt.Errorf("chassis: %w", err)
	}

	dt, err := r.GetDriveTrain(cfg.DriveTrain)
	if err != nil {
		return nil, fmt.Errorf("drivetrain: %w", err)
	}

	var opts []car.Option
	if dt != nil {
		opts = append(opts, car.WithDriveTrain(dt))
	}

	return car.New(ty, ae, geom, cfg.Mass, opts...)
}

// SolverOptions converts the solver section of a configuration.
func SolverOptions(cfg *config.Config) car.SolverOptions {
	return car.SolverOptions{
		Tolerance:         cfg.Solver.Tolerance,
		MaxIterations:     cfg.Solver.MaxIterations,
		SpeedCap:          cfg.Solver.SpeedCap,
		LongitudinalForce: cfg.Solver.LongitudinalForce,
	}
}
