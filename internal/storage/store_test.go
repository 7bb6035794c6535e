package storage

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/lapdoer/lapdoer/internal/car"
	"github.com/lapdoer/lapdoer/internal/sweep"
)

func samplePoints() []sweep.Point {
	return []sweep.Point{
		{Curvature: 0.01, Radius: 100, Speed: 15.2, LateralAccel: 2.31, FrontLoad: 5400, RearLoad: 5700, Converged: true},
		{Curvature: 0.02, Radius: 50, Speed: 10.6, LateralAccel: 2.26, FrontLoad: 5430, RearLoad: 5730, Converged: true},
		{Curvature: 0.03, Radius: 33.333, Speed: 0, LateralAccel: 0, Converged: false},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	opts := car.DefaultSolverOptions()
	runID, err := st.Save("reference", opts, samplePoints())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Car != "reference" {
		t.Errorf("expected car reference, got %s", meta.Car)
	}
	if meta.Points != 3 {
		t.Errorf("expected 3 points, got %d", meta.Points)
	}
	if math.Abs(meta.MaxSpeed-15.2) > 1e-9 {
		t.Errorf("expected max speed 15.2, got %g", meta.MaxSpeed)
	}

	points, err := st.LoadPoints(runID)
	if err != nil {
		t.Fatalf("load points failed: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	if math.Abs(points[1].Speed-10.6) > 1e-5 {
		t.Errorf("expected speed 10.6, got %g", points[1].Speed)
	}
	if points[2].Converged {
		t.Error("expected the non-converged point to stay non-converged")
	}
}

func TestLoadPointsSkipsCorruptRows(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("reference", car.DefaultSolverOptions(), samplePoints())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	csvPath := filepath.Join(dir, runID, "points.csv")
	f, err := os.OpenFile(csvPath, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := f.WriteString("0.04,25,not-a-number,1.9,5500,5800,true\n"); err != nil {
		t.Fatalf("append: %v", err)
	}
	f.Close()

	points, err := st.LoadPoints(runID)
	if err != nil {
		t.Fatalf("load points failed: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected the corrupt row to be skipped, got %d points", len(points))
	}
	for _, p := range points {
		if p.Curvature == 0.04 {
			t.Error("the corrupt row leaked into the result")
		}
	}
}

func TestListEmpty(t *testing.T) {
	st := New(t.TempDir() + "/nonexistent")

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	opts := car.DefaultSolverOptions()
	if _, err := st.Save("kart", opts, samplePoints()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Car != "kart" {
		t.Errorf("expected kart, got %s", runs[0].Car)
	}
}

func TestLoadUnknownRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope_123"); err == nil {
		t.Error("expected error for unknown run")
	}
}
