package gate

import (
	"regexp"
	"unicode"

	"github.com/leadlab/footprint/detect"
)

// Condition decides whether a rule applies to a snapshot. Exactly one of
// LocalProfile, AnySocial, or Network identifies the channel the rule
// concerns; the rule fires only when that channel's status is one of
// Statuses.
type Condition struct {
	LocalProfile bool
	AnySocial    bool
	Network      detect.Network
	Statuses     []detect.PresenceStatus
}

func (c Condition) holds(snapshot *detect.Snapshot) bool {
	switch {
	case c.LocalProfile:
		if snapshot.LocalProfile == nil {
			return false
		}
		return c.statusMatches(snapshot.LocalProfile.Status)
	case c.AnySocial:
		for _, channel := range snapshot.Channels {
			if c.statusMatches(channel.Status) {
				return true
			}
		}
		return false
	case c.Network != "":
		channel, ok := snapshot.Channel(c.Network)
		return ok && c.statusMatches(channel.Status)
	default:
		return false
	}
}

func (c Condition) statusMatches(status detect.PresenceStatus) bool {
	for _, candidate := range c.Statuses {
		if candidate == status {
			return true
		}
	}
	return false
}

// Rule is one declarative rewrite record: trigger phrase patterns, the
// presence condition under which the rewrite is allowed, and the
// replacement text. Replacements never match their own triggers, which is
// what makes the engine idempotent.
type Rule struct {
	Name        string
	Triggers    []*regexp.Regexp
	AppliesWhen Condition
	Replacement string
}

// apply rewrites every trigger occurrence in text, matching the case of
// the original phrase's first letter so sentence structure survives.
func (r Rule) apply(text string) string {
	for _, trigger := range r.Triggers {
		text = trigger.ReplaceAllStringFunc(text, func(match string) string {
			return matchLeadingCase(r.Replacement, match)
		})
	}
	return text
}

// established are the statuses under which claiming absence contradicts
// the snapshot.
var established = []detect.PresenceStatus{detect.StatusPresent, detect.StatusProbable}

// absencePhrase builds the shared absence trigger: an absence marker, an
// optional article, then the subject phrase.
func absencePhrase(subject string) *regexp.Regexp {
	return regexp.MustCompile(
		`(?i)\b(?:no|lacks?|lacking|missing|without|absence of|does not have|doesn't have|not having|non-existent)\s+(?:an?\s+|any\s+)?` + subject + `\b`)
}

// networkDisplayNames gives the human spelling used in replacement text.
var networkDisplayNames = map[detect.Network]string{
	detect.NetworkInstagram: "Instagram",
	detect.NetworkFacebook:  "Facebook",
	detect.NetworkTikTok:    "TikTok",
	detect.NetworkX:         "X",
	detect.NetworkLinkedIn:  "LinkedIn",
	detect.NetworkYouTube:   "YouTube",
}

// networkPhraseFragments gives the regex fragment matching how upstream
// text names each network.
var networkPhraseFragments = map[detect.Network]string{
	detect.NetworkInstagram: `instagram`,
	detect.NetworkFacebook:  `facebook`,
	detect.NetworkTikTok:    `tik\s?tok`,
	detect.NetworkX:         `(?:x|twitter)`,
	detect.NetworkLinkedIn:  `linkedin`,
	detect.NetworkYouTube:   `you\s?tube`,
}

// narrativeRules is the ordered rewrite table applied by RewriteText. The
// first two rules cover the generic contradiction classes; the per-network
// rules also catch brand-specific phrasing like "no Facebook presence".
var narrativeRules = buildNarrativeRules()

func buildNarrativeRules() []Rule {
	rules := []Rule{
		{
			Name: "local-profile-absence",
			Triggers: []*regexp.Regexp{
				absencePhrase(`(?:google\s+)?business\s+profile`),
			},
			AppliesWhen: Condition{LocalProfile: true, Statuses: established},
			Replacement: "an under-optimized Google Business Profile",
		},
		{
			Name: "social-absence",
			Triggers: []*regexp.Regexp{
				absencePhrase(`social\s+media\s+presence`),
				regexp.MustCompile(`(?i)\b(?:weak|poor|minimal|little to no)\s+social\s+media\s+presence\b`),
			},
			AppliesWhen: Condition{AnySocial: true, Statuses: established},
			Replacement: "under-leveraged social media presence",
		},
	}

	for _, network := range detect.Networks() {
		display := networkDisplayNames[network]
		rules = append(rules, Rule{
			Name: string(network) + "-absence",
			Triggers: []*regexp.Regexp{
				absencePhrase(networkPhraseFragments[network] + `\s+(?:presence|account|profile|page|channel)`),
			},
			AppliesWhen: Condition{Network: network, Statuses: established},
			Replacement: "an under-leveraged " + display + " presence",
		})
	}

	return rules
}

// matchLeadingCase upper-cases the replacement's first letter when the
// matched phrase started a sentence with one.
func matchLeadingCase(replacement, match string) string {
	if replacement == "" || match == "" {
		return replacement
	}
	matchRunes := []rune(match)
	if !unicode.IsUpper(matchRunes[0]) {
		return replacement
	}
	replacementRunes := []rune(replacement)
	replacementRunes[0] = unicode.ToUpper(replacementRunes[0])
	return string(replacementRunes)
}

// lowerFirst lower-cases the first letter of s, used when splicing a
// sentence after a conditional prefix.
func lowerFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// statusCertainty orders statuses by decreasing certainty so the generic
// social category can resolve to the best-established channel.
var statusCertainty = map[detect.PresenceStatus]int{
	detect.StatusPresent:      3,
	detect.StatusProbable:     2,
	detect.StatusInconclusive: 1,
	detect.StatusMissing:      0,
}

func bestSocialStatus(snapshot *detect.Snapshot) detect.PresenceStatus {
	best := detect.StatusMissing
	for _, channel := range snapshot.Channels {
		if statusCertainty[channel.Status] > statusCertainty[best] {
			best = channel.Status
		}
	}
	return best
}
