package detect

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Weights maps detection sources to their confidence contribution.
// Channel confidence is the sum of weights for all observed sources,
// capped at 1.0, so independently corroborated signals accumulate instead
// of taking a maximum.
type Weights map[DetectionSource]float64

// confidence computes the capped, two-decimal confidence for a provenance
// set.
func (w Weights) confidence(sources []DetectionSource) float64 {
	var total float64
	for _, source := range sources {
		total += w[source]
	}
	if total > 1.0 {
		total = 1.0
	}
	return round2(total)
}

// Thresholds maps confidence to a presence status. A confidence at or
// above Present yields present, at or above Probable yields probable, at
// or above Inconclusive yields inconclusive, anything lower is missing.
type Thresholds struct {
	Present      float64 `yaml:"present"`
	Probable     float64 `yaml:"probable"`
	Inconclusive float64 `yaml:"inconclusive"`
}

func (t Thresholds) status(confidence float64) PresenceStatus {
	switch {
	case confidence >= t.Present:
		return StatusPresent
	case confidence >= t.Probable:
		return StatusProbable
	case confidence >= t.Inconclusive:
		return StatusInconclusive
	default:
		return StatusMissing
	}
}

// Calibration bundles every tunable surface of the detector: per-source
// weights, status thresholds, and the thin-HTML floor used by the
// snapshot's data confidence. It is a plain value so batch callers can
// tune or A/B it per run without touching code.
//
// The social and local-profile tables are deliberately separate:
// structured-data corroboration is rarer for local profiles and should
// count for more there.
type Calibration struct {
	SocialWeights    Weights    `yaml:"socialWeights"`
	LocalWeights     Weights    `yaml:"localWeights"`
	SocialThresholds Thresholds `yaml:"socialThresholds"`
	LocalThresholds  Thresholds `yaml:"localThresholds"`

	// MinTextLength is the rendered-text length (in characters) below
	// which the snapshot's data confidence is proportionally lowered, to
	// avoid confident "missing" conclusions from a failed fetch upstream.
	MinTextLength int `yaml:"minTextLength"`
}

// DefaultCalibration returns the production calibration. Header and footer
// links are the strongest behavioral signals (a business that manually
// links a profile almost certainly owns it), body links may be incidental
// mentions, and an explicit hasMap property is the strongest single
// Business Profile signal.
func DefaultCalibration() Calibration {
	return Calibration{
		SocialWeights: Weights{
			SourceHTMLLinkHeader: 0.80,
			SourceHTMLLinkFooter: 0.85,
			SourceHTMLLinkBody:   0.50,
			SourceSchemaSameAs:   0.75,
			SourceSchemaURL:      0.30,
			SourceSchemaSocial:   0.70,
			SourceSearchFallback: 0.40,
			SourceManual:         1.00,
		},
		LocalWeights: Weights{
			SourceHTMLLinkHeader: 0.80,
			SourceHTMLLinkFooter: 0.80,
			SourceHTMLLinkBody:   0.45,
			SourceSchemaSameAs:   0.70,
			SourceSchemaURL:      0.50,
			SourceSchemaGBP:      0.85,
			SourceSearchFallback: 0.40,
			SourceManual:         1.00,
		},
		SocialThresholds: Thresholds{Present: 0.80, Probable: 0.60, Inconclusive: 0.30},
		LocalThresholds:  Thresholds{Present: 0.75, Probable: 0.50, Inconclusive: 0.25},
		MinTextLength:    400,
	}
}

// LoadCalibration reads calibration overrides from a YAML file, layered on
// top of the defaults. Only the fields present in the file are replaced.
func LoadCalibration(path string) (Calibration, error) {
	calibration := DefaultCalibration()

	data, err := os.ReadFile(path)
	if err != nil {
		return calibration, fmt.Errorf("read calibration file: %w", err)
	}
	if err := yaml.Unmarshal(data, &calibration); err != nil {
		return calibration, fmt.Errorf("parse calibration file: %w", err)
	}
	if err := calibration.Validate(); err != nil {
		return calibration, fmt.Errorf("invalid calibration %s: %w", path, err)
	}
	return calibration, nil
}

// Validate checks that weights stay in [0,1] and that each threshold table
// is strictly ordered, so a status can never contradict its own table.
func (c Calibration) Validate() error {
	for name, weights := range map[string]Weights{"socialWeights": c.SocialWeights, "localWeights": c.LocalWeights} {
		for source, weight := range weights {
			if weight < 0 || weight > 1 {
				return fmt.Errorf("%s[%s] = %v out of [0,1]", name, source, weight)
			}
		}
	}
	for name, thresholds := range map[string]Thresholds{"socialThresholds": c.SocialThresholds, "localThresholds": c.LocalThresholds} {
		if !(thresholds.Present > thresholds.Probable && thresholds.Probable > thresholds.Inconclusive && thresholds.Inconclusive > 0) {
			return fmt.Errorf("%s must satisfy present > probable > inconclusive > 0, got %+v", name, thresholds)
		}
	}
	if c.MinTextLength < 0 {
		return fmt.Errorf("minTextLength must be non-negative, got %d", c.MinTextLength)
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
