package gate

import (
	"regexp"
	"strings"

	"github.com/leadlab/footprint/detect"
)

// DefaultSoftenBelow is the data-confidence threshold under which a
// detector that concluded "missing" is not trusted to license a confident
// claim of absence: establish recommendations are softened to conditional
// language instead of passing through.
const DefaultSoftenBelow = 0.70

// softenPrefix introduces the conditional form of an establish
// recommendation. Its presence also marks text as already softened.
const softenPrefix = "Verify and, if needed, "

// recommendationClass describes one establish/start recommendation shape:
// the phrase patterns that identify it, the channel it targets, and the
// optimize-action rewrite used when that channel already exists.
type recommendationClass struct {
	Name         string
	Triggers     []*regexp.Regexp
	Target       Condition // Statuses unused; identifies the channel only
	OptimizeText string
}

// establishVerbs matches the action verbs that open an establish/start
// recommendation. The gap allows phrasing like "set up and verify a ...".
const establishVerbs = `\b(?:set\s+up|setup|create|establish|claim|register|launch|open|start|build|join|get)\b`

// recommendationClasses is consulted in order; Business Profile phrasing
// is checked before the network-specific and generic-social classes. The
// keyword lists grow as new upstream phrasings appear, so each pattern
// carries its own test case.
var recommendationClasses = buildRecommendationClasses()

func buildRecommendationClasses() []recommendationClass {
	classes := []recommendationClass{
		{
			Name: "local-profile-establish",
			Triggers: []*regexp.Regexp{
				regexp.MustCompile(`(?i)` + establishVerbs + `.{0,60}?\b(?:google\s+business\s+profile|business\s+profile|google\s+my\s+business|gbp)\b`),
			},
			Target:       Condition{LocalProfile: true},
			OptimizeText: "Optimize your existing Google Business Profile: complete every field, add fresh photos, and keep hours and services current.",
		},
	}

	for _, network := range detect.Networks() {
		display := networkDisplayNames[network]
		classes = append(classes, recommendationClass{
			Name: string(network) + "-establish",
			Triggers: []*regexp.Regexp{
				regexp.MustCompile(`(?i)` + establishVerbs + `.{0,60}?\b` + networkPhraseFragments[network] + `\b`),
			},
			Target:       Condition{Network: network},
			OptimizeText: "Optimize your existing " + display + " presence: post consistently and engage your audience instead of rebuilding from zero.",
		})
	}

	classes = append(classes, recommendationClass{
		Name: "social-establish",
		Triggers: []*regexp.Regexp{
			regexp.MustCompile(`(?i)` + establishVerbs + `.{0,60}?\b(?:social\s+media\s+presence|social\s+media\s+profiles?|social\s+media\s+accounts?|social\s+channels?|social\s+accounts?)\b`),
		},
		Target:       Condition{AnySocial: true},
		OptimizeText: "Optimize your existing social media presence: invest in the channels you already run before opening new ones.",
	})

	return classes
}

// RecommendationOption configures SanitizeRecommendations.
type RecommendationOption func(*recommendationConfig)

type recommendationConfig struct {
	softenBelow float64
}

// WithSoftenThreshold overrides [DefaultSoftenBelow].
func WithSoftenThreshold(threshold float64) RecommendationOption {
	return func(cfg *recommendationConfig) {
		cfg.softenBelow = threshold
	}
}

// SanitizeRecommendations applies the three-tier presence policy to a list
// of action recommendations:
//
//  1. establish/start recommendation + channel present or probable →
//     rewritten to an optimize action (never suppressed: the work itself
//     is still legitimate);
//  2. establish/start recommendation + channel missing + data confidence
//     below the soften threshold → conditional "verify and, if needed,
//     establish" language;
//  3. everything else → unchanged.
//
// Output keeps the input's length and order; the only removal is an
// explicit filter of blank entries. Unclassifiable text always passes
// through: the gate fails open rather than dropping content.
func SanitizeRecommendations(snapshot *detect.Snapshot, recommendations []string, opts ...RecommendationOption) []string {
	cfg := recommendationConfig{softenBelow: DefaultSoftenBelow}
	for _, opt := range opts {
		opt(&cfg)
	}

	sanitized := make([]string, 0, len(recommendations))
	for _, recommendation := range recommendations {
		if strings.TrimSpace(recommendation) == "" {
			continue
		}
		sanitized = append(sanitized, sanitizeRecommendation(snapshot, recommendation, cfg))
	}
	return sanitized
}

func sanitizeRecommendation(snapshot *detect.Snapshot, text string, cfg recommendationConfig) string {
	if snapshot == nil {
		return text
	}
	if strings.HasPrefix(strings.TrimSpace(strings.ToLower(text)), strings.ToLower(strings.TrimSpace(softenPrefix))) {
		return text
	}

	class := classifyRecommendation(text)
	if class == nil {
		return text
	}

	status, attempted := targetStatus(snapshot, class.Target)
	if !attempted {
		return text
	}

	switch status {
	case detect.StatusPresent, detect.StatusProbable:
		return class.OptimizeText
	case detect.StatusMissing:
		if snapshot.DataConfidence < cfg.softenBelow {
			return softenPrefix + lowerFirst(strings.TrimSpace(text))
		}
		return text
	default:
		// Inconclusive: neither confirms nor contradicts; leave it alone.
		return text
	}
}

// classifyRecommendation returns the first class whose trigger matches, or
// nil when the text is not an establish/start recommendation.
func classifyRecommendation(text string) *recommendationClass {
	for i := range recommendationClasses {
		for _, trigger := range recommendationClasses[i].Triggers {
			if trigger.MatchString(text) {
				return &recommendationClasses[i]
			}
		}
	}
	return nil
}

// targetStatus resolves the snapshot status for the channel a class
// targets. The boolean is false when that check was never attempted (e.g.
// local profile detection disabled), in which case the gate must not act.
func targetStatus(snapshot *detect.Snapshot, target Condition) (detect.PresenceStatus, bool) {
	switch {
	case target.LocalProfile:
		if snapshot.LocalProfile == nil {
			return detect.StatusMissing, false
		}
		return snapshot.LocalProfile.Status, true
	case target.AnySocial:
		return bestSocialStatus(snapshot), true
	case target.Network != "":
		channel, ok := snapshot.Channel(target.Network)
		if !ok {
			return detect.StatusMissing, false
		}
		return channel.Status, true
	default:
		return detect.StatusMissing, false
	}
}
