// Package storage persists solved sweeps under a data directory, one
// run per directory with JSON metadata and a CSV point file.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/lapdoer/lapdoer/internal/car"
	"github.com/lapdoer/lapdoer/internal/sweep"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID                string    `json:"id"`
	Car               string    `json:"car"`
	Timestamp         time.Time `json:"timestamp"`
	Tolerance         float64   `json:"tolerance"`
	SpeedCap          float64   `json:"speed_cap"`
	LongitudinalForce float64   `json:"longitudinal_force"`
	Points            int       `json:"points"`
	MaxSpeed          float64   `json:"max_speed"`
	MaxLateralAccel   float64   `json:"max_lateral_accel"`
}

func (s *Store) Save(carName string, opts car.SolverOptions, points []sweep.Point) (string, error) {
	runID := fmt.Sprintf("%s_%d", carName, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	maxSpeed := 0.0
	for _, p := range points {
		if p.Converged && p.Speed > maxSpeed {
			maxSpeed = p.Speed
		}
	}

	meta := RunMetadata{
		ID:                runID,
		Car:               carName,
		Timestamp:         time.Now(),
		Tolerance:         opts.Tolerance,
		SpeedCap:          opts.SpeedCap,
		LongitudinalForce: opts.LongitudinalForce,
		Points:            len(points),
		MaxSpeed:          maxSpeed,
		MaxLateralAccel:   sweep.MaxLateralAccel(points),
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "points.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"curvature", "radius", "speed", "lateral_accel", "front_load", "rear_load", "converged"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.Curvature, 'f', 6, 64),
			strconv.FormatFloat(p.Radius, 'f', 3, 64),
			strconv.FormatFloat(p.Speed, 'f', 6, 64),
			strconv.FormatFloat(p.LateralAccel, 'f', 6, 64),
			strconv.FormatFloat(p.FrontLoad, 'f', 3, 64),
			strconv.FormatFloat(p.RearLoad, 'f', 3, 64),
			strconv.FormatBool(p.Converged),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadPoints(runID string) ([]sweep.Point, error) {
	csvPath := filepath.Join(s.baseDir, runID, "points.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []sweep.Point{}, nil
	}

	points := make([]sweep.Point, 0, len(records)-1)
	for _, record := range records[1:] {
		p, err := parsePoint(record)
		if err != nil {
			// corrupt row: skip it rather than fabricate a zero point
			continue
		}
		points = append(points, p)
	}

	return points, nil
}

func parsePoint(record []string) (sweep.Point, error) {
	var p sweep.Point
	if len(record) < 7 {
		return p, fmt.Errorf("expected 7 fields, got %d", len(record))
	}

	fields := []*float64{&p.Curvature, &p.Radius, &p.Speed, &p.LateralAccel, &p.FrontLoad, &p.RearLoad}
	for i, dst := range fields {
		v, err := strconv.ParseFloat(record[i], 64)
		if err != nil {
			return sweep.Point{}, err
		}
		*dst = v
	}

	converged, err := strconv.ParseBool(record[6])
	if err != nil {
		return sweep.Point{}, err
	}
	p.Converged = converged
	return p, nil
}
