package detect

import (
	"context"
	"net/url"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/leadlab/footprint/internal/utils"
	"github.com/leadlab/footprint/observability"
)

// Input carries everything one detection run consumes. HTML is the raw
// document of a single page; StructuredData holds already-parsed metadata
// objects supplied by the caller, while RawStructuredData holds undecoded
// JSON-LD fragments that are decoded (and repaired when possible) here.
// BaseURL, when set, is used only to resolve relative links. Extra lets
// orchestration layers inject manual or search-fallback observations.
type Input struct {
	HTML              string
	StructuredData    []map[string]any
	RawStructuredData []string
	BaseURL           string
	Extra             []Observation
}

// Detector runs the detection pipeline under a fixed calibration. It holds
// no per-run state, so one Detector can serve many analyses concurrently.
type Detector struct {
	calibration Calibration
	checkLocal  bool
}

// Option configures a [Detector].
type Option func(*Detector)

// WithCalibration replaces the default weight and threshold tables.
func WithCalibration(calibration Calibration) Option {
	return func(d *Detector) {
		d.calibration = calibration
	}
}

// WithLocalProfileCheck enables or disables the Business Profile check.
// When disabled, the snapshot's LocalProfile is nil (check not attempted),
// not "missing".
func WithLocalProfileCheck(enabled bool) Option {
	return func(d *Detector) {
		d.checkLocal = enabled
	}
}

// NewDetector creates a detector with the default calibration and the
// local-profile check enabled.
func NewDetector(opts ...Option) *Detector {
	detector := &Detector{
		calibration: DefaultCalibration(),
		checkLocal:  true,
	}
	for _, opt := range opts {
		opt(detector)
	}
	return detector
}

// Detect runs both extraction passes, merges their observations, scores
// every channel, and assembles the snapshot. It is deterministic
// (identical inputs yield identical snapshots) and fail-soft: malformed
// links and structured-data fragments degrade data quality instead of
// returning errors. The error return exists for calibration mistakes
// surfaced at call time, never for bad page data.
func (d *Detector) Detect(ctx context.Context, input Input) (*Snapshot, error) {
	if err := d.calibration.Validate(); err != nil {
		return nil, err
	}
	logger := observability.FromContext(ctx)

	var base *url.URL
	if input.BaseURL != "" {
		parsed, err := url.Parse(input.BaseURL)
		if err != nil {
			logger.Debug(ctx, "unparseable base URL, relative links will be kept as-is",
				observability.String("base_url", input.BaseURL), observability.Error(err))
		} else {
			base = parsed
		}
	}

	htmlResult := runHTMLPass(ctx, input.HTML, base)

	structured := make([]map[string]any, 0, len(htmlResult.structured)+len(input.StructuredData))
	structured = append(structured, htmlResult.structured...)
	structured = append(structured, input.StructuredData...)
	for _, fragment := range input.RawStructuredData {
		objects := decodeStructuredFragment(fragment)
		if objects == nil {
			logger.Debug(ctx, "skipping malformed structured-data fragment",
				observability.String("fragment", utils.TruncateStringDefault(fragment)))
			continue
		}
		structured = append(structured, objects...)
	}
	structured = flattenGraph(structured)

	schemaObservations := runSchemaPass(ctx, structured, base)

	channels, local := aggregate(htmlResult.observations, schemaObservations, input.Extra)

	snapshot := &Snapshot{
		Channels:       make([]ChannelPresence, 0, len(Networks())),
		DataConfidence: d.dataConfidence(input.HTML, len(structured) > 0),
	}

	for _, network := range Networks() {
		signals := channels[network]
		sources := signals.sortedSources()
		confidence := d.calibration.SocialWeights.confidence(sources)
		snapshot.Channels = append(snapshot.Channels, ChannelPresence{
			Network:    network,
			URL:        signals.url,
			Handle:     signals.handle,
			Sources:    sources,
			Confidence: confidence,
			Status:     d.calibration.SocialThresholds.status(confidence),
		})
	}

	if d.checkLocal {
		sources := local.sortedSources()
		confidence := d.calibration.LocalWeights.confidence(sources)
		snapshot.LocalProfile = &LocalProfilePresence{
			URL:        local.url,
			Sources:    sources,
			Confidence: confidence,
			Status:     d.calibration.LocalThresholds.status(confidence),
		}
	}

	return snapshot, nil
}

// dataConfidence scores how thorough the detection pass itself was:
// 0.3 + 0.5*coverage + 0.2*structuredDataQuality, lowered proportionally
// when the page's rendered text falls below the calibrated floor, then
// clamped to [0,1] and rounded to two decimals. Coverage is always 1.0
// here since every known network is evaluated on every run.
func (d *Detector) dataConfidence(htmlContent string, hasStructuredData bool) float64 {
	const coverage = 1.0

	structuredDataQuality := 0.0
	if hasStructuredData {
		structuredDataQuality = 1.0
	}

	confidence := 0.3 + 0.5*coverage + 0.2*structuredDataQuality

	if floor := d.calibration.MinTextLength; floor > 0 {
		length := renderedTextLength(htmlContent)
		if length < floor {
			shortfall := float64(floor-length) / float64(floor)
			confidence -= 0.4 * shortfall
		}
	}

	return round2(clamp01(confidence))
}

// renderedTextLength measures the page's visible content by converting the
// HTML to Markdown and counting what remains, so markup-heavy but empty
// pages (or a failed fetch upstream) register as thin. Conversion failures
// fall back to the raw length.
func renderedTextLength(htmlContent string) int {
	trimmed := strings.TrimSpace(htmlContent)
	if trimmed == "" {
		return 0
	}
	markdown, err := htmltomarkdown.ConvertString(trimmed)
	if err != nil {
		return len(trimmed)
	}
	return len(strings.TrimSpace(markdown))
}
