package gate

import "github.com/leadlab/footprint/detect"

// Narrative is the free-text report fragment shape produced by the
// upstream language-model layer: a one-line summary plus a list of issue
// statements.
type Narrative struct {
	OneLiner string   `json:"one_liner"`
	Issues   []string `json:"issues"`
}

// RewriteText applies the narrative rule table to one string. Rules fire
// only when the snapshot establishes the channel they protect (present or
// probable); when a channel is missing or inconclusive its rules stay
// inert and the text passes through unchanged. The rewrite is idempotent:
// replacements never re-trigger their own rules.
func RewriteText(snapshot *detect.Snapshot, text string) string {
	if snapshot == nil || text == "" {
		return text
	}
	for _, rule := range narrativeRules {
		if rule.AppliesWhen.holds(snapshot) {
			text = rule.apply(text)
		}
	}
	return text
}

// SanitizeNarrative gates every fragment of a narrative, preserving its
// shape: the result has the same issue count and order as the input.
func SanitizeNarrative(snapshot *detect.Snapshot, narrative Narrative) Narrative {
	sanitized := Narrative{
		OneLiner: RewriteText(snapshot, narrative.OneLiner),
	}
	if narrative.Issues != nil {
		sanitized.Issues = make([]string, len(narrative.Issues))
		for i, issue := range narrative.Issues {
			sanitized.Issues[i] = RewriteText(snapshot, issue)
		}
	}
	return sanitized
}
