// Package guidancecfg carries the tunable thresholds the collapsing engine
// needs. spec.md §9 is explicit that these are "documented defaults, not
// hard invariants" — so unlike the rest of the core's data model, they are
// config, loaded once by the caller and threaded in as read-only shared data
// (spec.md §5), never mutated during routing.
package guidancecfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every distance/angle threshold the collapsing engine (C5)
// and turn classifier (C3) consult.
type Config struct {
	// SegregatedPairMaxMeters bounds how short the second half of a
	// segregated-intersection pair (R1) may be to still qualify for merge.
	SegregatedPairMaxMeters float64 `json:"segregated_pair_max_meters" yaml:"segregated_pair_max_meters"`

	// SliproadMaxMeters bounds how short a sliproad step (R3) may be.
	SliproadMaxMeters float64 `json:"sliproad_max_meters" yaml:"sliproad_max_meters"`

	// StraightBearingToleranceDeg is the ±degrees window within which a
	// degree-2 through-node with matching names is a NoTurn (spec.md §4.3.2).
	StraightBearingToleranceDeg float64 `json:"straight_bearing_tolerance_deg" yaml:"straight_bearing_tolerance_deg"`

	// NewNameBearingToleranceDeg is the wider ±degrees window within which a
	// degree-2 through-node with a name change is a NewName rather than a
	// full Turn (spec.md §4.3.2).
	NewNameBearingToleranceDeg float64 `json:"new_name_bearing_tolerance_deg" yaml:"new_name_bearing_tolerance_deg"`

	// SlightBearingDeg, RightBearingDeg, SharpBearingDeg, UTurnBearingDeg are
	// the bin edges used to classify |turn angle| into
	// Straight/Slight/Right-or-Left/Sharp/UTurn (spec.md §4.3 rule 5).
	SlightBearingDeg float64 `json:"slight_bearing_deg" yaml:"slight_bearing_deg"`
	RightBearingDeg  float64 `json:"right_bearing_deg" yaml:"right_bearing_deg"`
	SharpBearingDeg  float64 `json:"sharp_bearing_deg" yaml:"sharp_bearing_deg"`
	UTurnBearingDeg  float64 `json:"uturn_bearing_deg" yaml:"uturn_bearing_deg"`

	// UTurnAntiParallelDeg is the minimum bearing delta between in and out
	// for a retained UTurn modifier to satisfy invariant I6.
	UTurnAntiParallelDeg float64 `json:"uturn_anti_parallel_deg" yaml:"uturn_anti_parallel_deg"`

	// ForkBearingDeg bounds how close to straight-ahead, on either side, two
	// similar-priority exits must be to be classified as a Fork rather than
	// independent turns (spec.md §4.3 rule 3).
	ForkBearingDeg float64 `json:"fork_bearing_deg" yaml:"fork_bearing_deg"`
}

// DefaultConfig returns the documented defaults from spec.md §4.3 and §9.
func DefaultConfig() *Config {
	return &Config{
		SegregatedPairMaxMeters:     30,
		SliproadMaxMeters:           60,
		StraightBearingToleranceDeg: 15,
		NewNameBearingToleranceDeg:  35,
		SlightBearingDeg:            10,
		RightBearingDeg:             45,
		SharpBearingDeg:             135,
		UTurnBearingDeg:             175,
		UTurnAntiParallelDeg:        175,
		ForkBearingDeg:              40,
	}
}

// Load reads a Config from a YAML file at path. Any field the file does not
// set keeps its DefaultConfig value; a field set explicitly to 0 stays 0.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read guidance config %q: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse guidance config %q: %w", path, err)
	}
	return cfg, nil
}
