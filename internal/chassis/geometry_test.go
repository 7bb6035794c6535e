package chassis

import (
	"math"
	"testing"
)

func TestNewGeometryValidation(t *testing.T) {
	tests := []struct {
		name                                           string
		wheelbase, frontTrack, backTrack, cog, weightD float64
		wantErr                                        bool
	}{
		{"valid", 2.5, 1.2, 1.2, 0.4, 0.5, false},
		{"zero cog ok", 2.5, 1.2, 1.2, 0, 0.5, false},
		{"zero wheelbase", 0, 1.2, 1.2, 0.4, 0.5, true},
		{"negative wheelbase", -2.5, 1.2, 1.2, 0.4, 0.5, true},
		{"zero front track", 2.5, 0, 1.2, 0.4, 0.5, true},
		{"zero back track", 2.5, 1.2, 0, 0.4, 0.5, true},
		{"negative cog", 2.5, 1.2, 1.2, -0.1, 0.5, true},
		{"weight dist zero", 2.5, 1.2, 1.2, 0.4, 0, true},
		{"weight dist one", 2.5, 1.2, 1.2, 0.4, 1, true},
		{"weight dist over", 2.5, 1.2, 1.2, 0.4, 1.3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGeometry(tt.wheelbase, tt.frontTrack, tt.backTrack, tt.cog, tt.weightD)
			if (err != nil) != tt.wantErr {
				t.Errorf("wantErr=%v, got err=%v", tt.wantErr, err)
			}
		})
	}
}

func TestLateralLoadTransfer(t *testing.T) {
	// the worked example from the reference car: 280 kg, uneven tracks
	g, err := NewGeometry(1.53, 1.25, 1.21, 0.33, 0.45)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	ay := 2 * 9.81
	got := g.StaticLateralLoadTransfer(280, ay)

	wantFront := 280 * ay * 0.33 / 1.25 * 0.45
	wantRear := 280 * ay * 0.33 / 1.21 * 0.55

	if math.Abs(got.Front-wantFront) > 1e-9 {
		t.Errorf("front: expected %g, got %g", wantFront, got.Front)
	}
	if math.Abs(got.Rear-wantRear) > 1e-9 {
		t.Errorf("rear: expected %g, got %g", wantRear, got.Rear)
	}
}

func TestLongitudinalLoadTransferSigns(t *testing.T) {
	g, err := NewGeometry(1.53, 1.25, 1.21, 0.33, 0.45)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	// accelerating forward reduces front normal load
	accel := g.StaticLongitudinalLoadTransfer(280, 1.5*9.81)
	if accel.Front >= 0 {
		t.Errorf("expected negative front transfer under acceleration, got %g", accel.Front)
	}
	if accel.Rear <= 0 {
		t.Errorf("expected positive rear transfer under acceleration, got %g", accel.Rear)
	}

	// braking does the opposite
	brake := g.StaticLongitudinalLoadTransfer(280, -1.5*9.81)
	if brake.Front <= 0 || brake.Rear >= 0 {
		t.Errorf("expected signs to flip under braking, got front=%g rear=%g", brake.Front, brake.Rear)
	}
}

func TestLongitudinalLoadTransferConserved(t *testing.T) {
	params := []struct {
		wheelbase, cog, weightD, mass, accel float64
	}{
		{2.5, 0.4, 0.5, 1200, 9.81},
		{1.53, 0.33, 0.45, 280, -14.7},
		{3.1, 0.6, 0.62, 1800, 3.2},
	}

	for _, p := range params {
		g, err := NewGeometry(p.wheelbase, 1.2, 1.2, p.cog, p.weightD)
		if err != nil {
			t.Fatalf("construction failed: %v", err)
		}
		tr := g.StaticLongitudinalLoadTransfer(p.mass, p.accel)
		if sum := tr.Front + tr.Rear; math.Abs(sum) > 1e-9 {
			t.Errorf("transfer not conserved: front+rear = %g", sum)
		}
	}
}

func TestZeroAccelNoTransfer(t *testing.T) {
	g, _ := NewGeometry(2.5, 1.2, 1.2, 0.4, 0.5)

	lat := g.StaticLateralLoadTransfer(1200, 0)
	long := g.StaticLongitudinalLoadTransfer(1200, 0)

	if lat.Front != 0 || lat.Rear != 0 {
		t.Error("expected zero lateral transfer at zero accel")
	}
	if long.Front != 0 || long.Rear != 0 {
		t.Error("expected zero longitudinal transfer at zero accel")
	}
}
