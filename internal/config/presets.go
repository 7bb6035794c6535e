package config

import "sort"

var Presets = map[string]*Config{
	"formula_student": {
		Car:  "formula_student",
		Mass: 280,
		Chassis: ChassisConfig{
			Wheelbase:       1.53,
			FrontTrackWidth: 1.25,
			BackTrackWidth:  1.21,
			CogHeight:       0.33,
			FrontWeightDist: 0.45,
		},
		Tyre: TyreConfig{Model: "pacejka", B: 12, C: 1.9, D: 1.4, E: 0.97},
		Aero: AeroConfig{Model: "quadratic", ClA: 4.3, CdA: 1.7, Rho: 1.25},
		DriveTrain: DriveTrainConfig{
			Model:       "constant_power",
			Power:       60000,
			LaunchForce: 3000,
			WheelRadius: 0.23,
		},
		Solver: SolverConfig{Tolerance: DefaultTolerance, MaxIterations: DefaultIterations, SpeedCap: 120},
	},
	"gt": {
		Car:  "gt",
		Mass: 1300,
		Chassis: ChassisConfig{
			Wheelbase:       2.65,
			FrontTrackWidth: 1.68,
			BackTrackWidth:  1.64,
			CogHeight:       0.46,
			FrontWeightDist: 0.48,
		},
		Tyre: TyreConfig{Model: "pacejka", B: 10, C: 1.9, D: 1.2, E: 0.97},
		Aero: AeroConfig{Model: "quadratic", ClA: 3.2, CdA: 1.1, Rho: 1.25},
		DriveTrain: DriveTrainConfig{
			Model:       "constant_power",
			Power:       380000,
			LaunchForce: 9000,
			WheelRadius: 0.33,
		},
		Solver: SolverConfig{Tolerance: DefaultTolerance, MaxIterations: DefaultIterations, SpeedCap: DefaultSpeedCap},
	},
	"kart": {
		Car:  "kart",
		Mass: 160,
		Chassis: ChassisConfig{
			Wheelbase:       1.05,
			FrontTrackWidth: 1.0,
			BackTrackWidth:  1.1,
			CogHeight:       0.25,
			FrontWeightDist: 0.42,
		},
		Tyre:   TyreConfig{Model: "linear", Stiffness: 14},
		Aero:   AeroConfig{Model: "none"},
		Solver: SolverConfig{Tolerance: DefaultTolerance, MaxIterations: DefaultIterations, SpeedCap: 50},
	},
	"reference": {
		Car:  "reference",
		Mass: 1200,
		Chassis: ChassisConfig{
			Wheelbase:       2.5,
			FrontTrackWidth: 1.2,
			BackTrackWidth:  1.2,
			CogHeight:       0.4,
			FrontWeightDist: 0.5,
		},
		Tyre:   TyreConfig{Model: "linear", Stiffness: 10},
		Aero:   AeroConfig{Model: "none"},
		Solver: SolverConfig{Tolerance: DefaultTolerance, MaxIterations: DefaultIterations, SpeedCap: DefaultSpeedCap},
	},
}

// GetPreset returns a copy of the named preset, or nil if it does not
// exist. Callers may mutate the copy freely.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
