// Package predictor implements the Team Strength Rating model: weight
// presets, per-team ratings, outcome projection, confidence, and market-edge
// classification.
package predictor

import (
	"fmt"
	"sync"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// DefaultPresetName is the preset used when a lenient lookup misses.
const DefaultPresetName = "balanced"

// WeightPreset is a named, immutable bundle of the ten model dials. Presets
// are registered at startup and looked up by name per prediction request.
type WeightPreset struct {
	Name string `mapstructure:"name" json:"name" validate:"required"`

	NetPointsWeight  float64 `mapstructure:"net_points_weight" json:"netPointsWeight" validate:"gte=0,lte=10"`
	MomentumWeight   float64 `mapstructure:"momentum_weight" json:"momentumWeight" validate:"gte=0,lte=10"`
	ConferenceWeight float64 `mapstructure:"conference_weight" json:"conferenceWeight" validate:"gte=0,lte=10"`
	HomeFieldWeight  float64 `mapstructure:"home_field_weight" json:"homeFieldWeight" validate:"gte=0,lte=10"`
	OffenseWeight    float64 `mapstructure:"offense_weight" json:"offenseWeight" validate:"gte=-10,lte=10"`
	DefenseWeight    float64 `mapstructure:"defense_weight" json:"defenseWeight" validate:"gte=-10,lte=10"`

	TotalRecencyWeight   float64 `mapstructure:"total_recency_weight" json:"totalRecencyWeight" validate:"gte=0,lte=1"`
	TotalBoost           float64 `mapstructure:"total_boost" json:"totalBoost" validate:"gte=-10,lte=10"`
	VolatilityMultiplier float64 `mapstructure:"volatility_multiplier" json:"volatilityMultiplier" validate:"gte=0,lte=2"`
	RegressionFactor     float64 `mapstructure:"regression_factor" json:"regressionFactor" validate:"gte=0,lte=1"`
}

// WeightRange documents the valid range of one preset field, for validation
// tooling.
type WeightRange struct {
	Field string
	Min   float64
	Max   float64
}

// Ranges returns the documented valid range per preset field.
func Ranges() []WeightRange {
	return []WeightRange{
		{Field: "netPointsWeight", Min: 0, Max: 10},
		{Field: "momentumWeight", Min: 0, Max: 10},
		{Field: "conferenceWeight", Min: 0, Max: 10},
		{Field: "homeFieldWeight", Min: 0, Max: 10},
		{Field: "offenseWeight", Min: -10, Max: 10},
		{Field: "defenseWeight", Min: -10, Max: 10},
		{Field: "totalRecencyWeight", Min: 0, Max: 1},
		{Field: "totalBoost", Min: -10, Max: 10},
		{Field: "volatilityMultiplier", Min: 0, Max: 2},
		{Field: "regressionFactor", Min: 0, Max: 1},
	}
}

// Validate returns one message per weight outside its documented range.
// Advisory: the rating calculator itself does not enforce ranges.
func Validate(p WeightPreset) []string {
	values := map[string]float64{
		"netPointsWeight":      p.NetPointsWeight,
		"momentumWeight":       p.MomentumWeight,
		"conferenceWeight":     p.ConferenceWeight,
		"homeFieldWeight":      p.HomeFieldWeight,
		"offenseWeight":        p.OffenseWeight,
		"defenseWeight":        p.DefenseWeight,
		"totalRecencyWeight":   p.TotalRecencyWeight,
		"totalBoost":           p.TotalBoost,
		"volatilityMultiplier": p.VolatilityMultiplier,
		"regressionFactor":     p.RegressionFactor,
	}

	var violations []string
	for _, r := range Ranges() {
		v := values[r.Field]
		if v < r.Min || v > r.Max {
			violations = append(violations, fmt.Sprintf("%s must be between %g and %g, got %g", r.Field, r.Min, r.Max, v))
		}
	}
	return violations
}

// Registry holds named presets. Canonical presets are seeded at construction
// and never mutated; custom presets may be registered before use.
type Registry struct {
	mu      sync.RWMutex
	presets map[string]WeightPreset
}

// NewRegistry creates a registry seeded with the canonical presets.
func NewRegistry() *Registry {
	r := &Registry{presets: make(map[string]WeightPreset)}
	for _, p := range canonicalPresets() {
		r.presets[p.Name] = p
	}
	return r
}

// GetOrDefault returns the named preset, falling back to the balanced preset
// when the name is unknown. This lookup never fails.
func (r *Registry) GetOrDefault(name string) WeightPreset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.presets[name]; ok {
		return p
	}
	return r.presets[DefaultPresetName]
}

// GetStrict returns the named preset or an InvalidPresetError, so callers
// can surface configuration typos instead of silently using the default.
func (r *Registry) GetStrict(name string) (WeightPreset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.presets[name]; ok {
		return p, nil
	}
	return WeightPreset{}, &models.InvalidPresetError{Name: name}
}

// Register adds a custom preset after validating its weight ranges.
func (r *Registry) Register(p WeightPreset) error {
	if p.Name == "" {
		return fmt.Errorf("preset name is required")
	}
	if violations := Validate(p); len(violations) > 0 {
		return &models.InvalidPresetError{Name: p.Name, Violations: violations}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.presets[p.Name] = p
	return nil
}

// Names returns the registered preset names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	return names
}

func canonicalPresets() []WeightPreset {
	return []WeightPreset{
		{
			Name:                 "balanced",
			NetPointsWeight:      3.0,
			MomentumWeight:       2.0,
			ConferenceWeight:     1.5,
			HomeFieldWeight:      2.5,
			OffenseWeight:        1.0,
			DefenseWeight:        1.0,
			TotalRecencyWeight:   1.0,
			TotalBoost:           0,
			VolatilityMultiplier: 1.0,
			RegressionFactor:     0.85,
		},
		{
			Name:                 "offensive",
			NetPointsWeight:      2.5,
			MomentumWeight:       1.5,
			ConferenceWeight:     1.0,
			HomeFieldWeight:      2.0,
			OffenseWeight:        3.0,
			DefenseWeight:        0.5,
			TotalRecencyWeight:   1.0,
			TotalBoost:           3.0,
			VolatilityMultiplier: 1.25,
			RegressionFactor:     0.85,
		},
		{
			Name:                 "defensive",
			NetPointsWeight:      2.5,
			MomentumWeight:       1.5,
			ConferenceWeight:     1.0,
			HomeFieldWeight:      2.0,
			OffenseWeight:        0.5,
			DefenseWeight:        3.0,
			TotalRecencyWeight:   1.0,
			TotalBoost:           -3.0,
			VolatilityMultiplier: 0.85,
			RegressionFactor:     0.9,
		},
		{
			Name:                 "momentum",
			NetPointsWeight:      2.0,
			MomentumWeight:       4.5,
			ConferenceWeight:     1.0,
			HomeFieldWeight:      2.0,
			OffenseWeight:        1.0,
			DefenseWeight:        1.0,
			TotalRecencyWeight:   1.0,
			TotalBoost:           0,
			VolatilityMultiplier: 1.1,
			RegressionFactor:     0.8,
		},
		{
			Name:                 "homeAdvantage",
			NetPointsWeight:      2.5,
			MomentumWeight:       1.5,
			ConferenceWeight:     1.0,
			HomeFieldWeight:      5.0,
			OffenseWeight:        1.0,
			DefenseWeight:        1.0,
			TotalRecencyWeight:   1.0,
			TotalBoost:           0,
			VolatilityMultiplier: 1.0,
			RegressionFactor:     0.85,
		},
		{
			Name:                 "conferenceStrength",
			NetPointsWeight:      2.5,
			MomentumWeight:       1.5,
			ConferenceWeight:     4.0,
			HomeFieldWeight:      2.0,
			OffenseWeight:        1.0,
			DefenseWeight:        1.0,
			TotalRecencyWeight:   1.0,
			TotalBoost:           0,
			VolatilityMultiplier: 1.0,
			RegressionFactor:     0.85,
		},
	}
}
