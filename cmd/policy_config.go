package cmd

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	sim "github.com/carrier-sim/carrier-sim/sim"
)

// Define structs for the YAML policy table
type PolicyConfig struct {
	DefaultProb float64       `yaml:"default_prob"`
	Policies    []PolicyEntry `yaml:"policies"`
}

type PolicyEntry struct {
	Name            string      `yaml:"name"`
	Origin          string      `yaml:"origin"`
	Destination     string      `yaml:"destination"`
	Bidirectional   bool        `yaml:"bidirectional"`
	MaxLoadsPerDate int         `yaml:"max_loads_per_date"`
	BaseProb        float64     `yaml:"base_prob"`
	Season          *SeasonYAML `yaml:"season,omitempty"`
}

type SeasonYAML struct {
	BlackoutMonths []int `yaml:"blackout_months,omitempty"`
	BlackoutYear   int   `yaml:"blackout_year,omitempty"`
	ActiveMonths   []int `yaml:"active_months,omitempty"`
}

// GetPolicyTable reads a lane policy table from a YAML file. Entry order in
// the file is policy precedence order.
func GetPolicyTable(path string) (*sim.PolicyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy config: %w", err)
	}

	var cfg PolicyConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse policy config %s: %w", path, err)
	}

	table := &sim.PolicyTable{DefaultProb: cfg.DefaultProb}
	for i, entry := range cfg.Policies {
		policy, err := entry.toPolicy()
		if err != nil {
			return nil, fmt.Errorf("policy %d (%s): %w", i, entry.Name, err)
		}
		table.Policies = append(table.Policies, policy)
	}
	return table, nil
}

func (e PolicyEntry) toPolicy() (sim.LanePolicy, error) {
	origin := sim.Market(e.Origin)
	destination := sim.Market(e.Destination)
	if !sim.IsValidMarket(origin) {
		return sim.LanePolicy{}, fmt.Errorf("unknown origin market %q", e.Origin)
	}
	if !sim.IsValidMarket(destination) {
		return sim.LanePolicy{}, fmt.Errorf("unknown destination market %q", e.Destination)
	}
	if e.BaseProb < 0 || e.BaseProb > 1 {
		return sim.LanePolicy{}, fmt.Errorf("base_prob %v outside [0, 1]", e.BaseProb)
	}
	if e.MaxLoadsPerDate < 0 {
		return sim.LanePolicy{}, fmt.Errorf("max_loads_per_date %d is negative", e.MaxLoadsPerDate)
	}

	policy := sim.LanePolicy{
		Name:            e.Name,
		Origin:          origin,
		Destination:     destination,
		Bidirectional:   e.Bidirectional,
		MaxLoadsPerDate: e.MaxLoadsPerDate,
		BaseProb:        e.BaseProb,
	}

	if e.Season != nil {
		gate := &sim.SeasonalGate{BlackoutYear: e.Season.BlackoutYear}
		blackout, err := toMonths(e.Season.BlackoutMonths)
		if err != nil {
			return sim.LanePolicy{}, fmt.Errorf("blackout_months: %w", err)
		}
		active, err := toMonths(e.Season.ActiveMonths)
		if err != nil {
			return sim.LanePolicy{}, fmt.Errorf("active_months: %w", err)
		}
		gate.BlackoutMonths = blackout
		gate.ActiveMonths = active
		policy.Season = gate
	}

	return policy, nil
}

func toMonths(values []int) ([]time.Month, error) {
	months := make([]time.Month, 0, len(values))
	for _, v := range values {
		if v < 1 || v > 12 {
			return nil, fmt.Errorf("month %d outside 1..12", v)
		}
		months = append(months, time.Month(v))
	}
	return months, nil
}
