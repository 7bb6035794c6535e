// Package config loads and saves car definitions as YAML, with
// defaults and named presets.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMass       = 1200.0
	DefaultStiffness  = 10.0
	DefaultTolerance  = 1e-6
	DefaultIterations = 200
	DefaultSpeedCap   = 150.0
)

type Config struct {
	Car        string           `yaml:"car"`
	Mass       float64          `yaml:"mass"`
	Chassis    ChassisConfig    `yaml:"chassis"`
	Tyre       TyreConfig       `yaml:"tyre"`
	Aero       AeroConfig       `yaml:"aero"`
	DriveTrain DriveTrainConfig `yaml:"drivetrain"`
	Solver     SolverConfig     `yaml:"solver"`
}

type ChassisConfig struct {
	Wheelbase       float64 `yaml:"wheelbase"`
	FrontTrackWidth float64 `yaml:"front_track_width"`
	BackTrackWidth  float64 `yaml:"back_track_width"`
	CogHeight       float64 `yaml:"cog_height"`
	FrontWeightDist float64 `yaml:"front_weight_dist"`
}

type TyreConfig struct {
	Model     string  `yaml:"model"` // linear | pacejka
	Stiffness float64 `yaml:"stiffness"`
	B         float64 `yaml:"b"`
	C         float64 `yaml:"c"`
	D         float64 `yaml:"d"`
	E         float64 `yaml:"e"`
}

type AeroConfig struct {
	Model string  `yaml:"model"` // quadratic | none
	ClA   float64 `yaml:"cla"`
	CdA   float64 `yaml:"cda"`
	Rho   float64 `yaml:"rho"`
}

type DriveTrainConfig struct {
	Model       string  `yaml:"model"` // none | constant_power
	Power       float64 `yaml:"power"`
	LaunchForce float64 `yaml:"launch_force"`
	WheelRadius float64 `yaml:"wheel_radius"`
}

type SolverConfig struct {
	Tolerance         float64 `yaml:"tolerance"`
	MaxIterations     int     `yaml:"max_iterations"`
	SpeedCap          float64 `yaml:"speed_cap"`
	LongitudinalForce float64 `yaml:"longitudinal_force"`
}

func DefaultConfig() *Config {
	return &Config{
		Car:  "reference",
		Mass: DefaultMass,
		Chassis: ChassisConfig{
			Wheelbase:       2.5,
			FrontTrackWidth: 1.2,
			BackTrackWidth:  1.2,
			CogHeight:       0.4,
			FrontWeightDist: 0.5,
		},
		Tyre: TyreConfig{
			Model:     "linear",
			Stiffness: DefaultStiffness,
		},
		Aero: AeroConfig{
			Model: "none",
		},
		DriveTrain: DriveTrainConfig{
			Model: "none",
		},
		Solver: SolverConfig{
			Tolerance:     DefaultTolerance,
			MaxIterations: DefaultIterations,
			SpeedCap:      DefaultSpeedCap,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
