package workload

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// GenerationSpec is the top-level load generation configuration.
// Loaded from YAML via LoadGenerationSpec(path).
type GenerationSpec struct {
	Seed        int64  `yaml:"seed"`
	StartDate   string `yaml:"start_date"` // ISO-8601 (YYYY-MM-DD)
	EndDate     string `yaml:"end_date"`
	LoadsPerDay int    `yaml:"loads_per_day"`

	// Offer shape. RoadFactor converts great-circle miles to road miles.
	RoadFactor     float64 `yaml:"road_factor"`
	JitterMiles    float64 `yaml:"jitter_miles"`
	MinRatePerMile float64 `yaml:"min_rate_per_mile"`
	MaxRatePerMile float64 `yaml:"max_rate_per_mile"`
	MinWeightLbs   int     `yaml:"min_weight_lbs"`
	MaxWeightLbs   int     `yaml:"max_weight_lbs"`
}

// DefaultGenerationSpec returns the built-in generation parameters: 500
// offers per weekday over February through May 2025, 30-mile coordinate
// jitter, 1.17 road factor, $0.50–$3.00 per-mile rates, 25k–45k lb weights.
func DefaultGenerationSpec() GenerationSpec {
	return GenerationSpec{
		Seed:           42,
		StartDate:      "2025-02-01",
		EndDate:        "2025-05-31",
		LoadsPerDay:    500,
		RoadFactor:     1.17,
		JitterMiles:    30,
		MinRatePerMile: 0.50,
		MaxRatePerMile: 3.00,
		MinWeightLbs:   25000,
		MaxWeightLbs:   45000,
	}
}

// LoadGenerationSpec reads and validates a GenerationSpec from a YAML file.
// Unknown keys are an error to catch config typos early.
func LoadGenerationSpec(path string) (*GenerationSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read generation spec: %w", err)
	}

	spec := DefaultGenerationSpec()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parse generation spec %s: %w", path, err)
	}

	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generation spec %s: %w", path, err)
	}
	return &spec, nil
}

// Validate checks the spec for internally consistent parameters.
func (s *GenerationSpec) Validate() error {
	start, err := s.Start()
	if err != nil {
		return err
	}
	end, err := s.End()
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("end_date %s precedes start_date %s", s.EndDate, s.StartDate)
	}
	if s.LoadsPerDay <= 0 {
		return fmt.Errorf("loads_per_day must be positive, got %d", s.LoadsPerDay)
	}
	if s.RoadFactor <= 0 {
		return fmt.Errorf("road_factor must be positive, got %v", s.RoadFactor)
	}
	if s.JitterMiles < 0 {
		return fmt.Errorf("jitter_miles must be non-negative, got %v", s.JitterMiles)
	}
	if s.MinRatePerMile < 0 || s.MaxRatePerMile < s.MinRatePerMile {
		return fmt.Errorf("rate per mile range [%v, %v] is invalid", s.MinRatePerMile, s.MaxRatePerMile)
	}
	if s.MinWeightLbs <= 0 || s.MaxWeightLbs < s.MinWeightLbs {
		return fmt.Errorf("weight range [%d, %d] is invalid", s.MinWeightLbs, s.MaxWeightLbs)
	}
	return nil
}

// Start parses the start date.
func (s *GenerationSpec) Start() (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("start_date: %w", err)
	}
	return t, nil
}

// End parses the end date.
func (s *GenerationSpec) End() (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s.EndDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("end_date: %w", err)
	}
	return t, nil
}
