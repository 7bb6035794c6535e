package drivetrain

import (
	"math"
	"testing"
)

func TestConstantPowerCurve(t *testing.T) {
	dt, err := NewConstantPower(80000, 4000, 0.3)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	// launch plateau below the crossover speed (80000/4000 = 20 m/s)
	if got := dt.TorqueOnAxle(0); math.Abs(got-4000*0.3) > 1e-9 {
		t.Errorf("expected launch torque 1200, got %g", got)
	}
	if got := dt.TorqueOnAxle(10); math.Abs(got-4000*0.3) > 1e-9 {
		t.Errorf("expected launch torque at 10 m/s, got %g", got)
	}

	// power-limited above it
	if got := dt.TorqueOnAxle(40); math.Abs(got-80000/40.0*0.3) > 1e-9 {
		t.Errorf("expected power-limited torque 600, got %g", got)
	}
}

func TestConstantPowerValidation(t *testing.T) {
	if _, err := NewConstantPower(0, 4000, 0.3); err == nil {
		t.Error("expected error for zero power")
	}
	if _, err := NewConstantPower(80000, -1, 0.3); err == nil {
		t.Error("expected error for negative launch force")
	}
	if _, err := NewConstantPower(80000, 4000, 0); err == nil {
		t.Error("expected error for zero wheel radius")
	}
}

func TestGeneric(t *testing.T) {
	g, err := NewGeneric(func(v float64) float64 { return 300 - v }, 0.3)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	if got := g.TorqueOnAxle(100); got != 200 {
		t.Errorf("expected 200, got %g", got)
	}
	if g.WheelRadius() != 0.3 {
		t.Errorf("expected radius 0.3, got %g", g.WheelRadius())
	}

	if _, err := NewGeneric(nil, 0.3); err == nil {
		t.Error("expected error for nil torque func")
	}
	if _, err := NewGeneric(func(v float64) float64 { return 0 }, -0.3); err == nil {
		t.Error("expected error for negative wheel radius")
	}
}
