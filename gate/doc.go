// Package gate rewrites externally generated text so it never contradicts
// a detection snapshot. The upstream language-model layer is untrusted: it
// may tell a business with an existing Google Business Profile to "set one
// up". The gate narrows exactly those contradictions and nothing else;
// unclassifiable text always passes through unchanged.
//
// Rewriting comes in two disciplines. [RewriteText] (and
// [SanitizeNarrative]) applies an ordered, declarative rule table to
// descriptive narrative text: each rule is a data record of trigger
// patterns, an applies-when presence condition, and a replacement.
// [SanitizeRecommendations] applies a three-tier policy to action text:
// establish-style recommendations targeting an existing channel are
// rewritten to optimize actions, low-confidence claims of absence are
// softened to conditional language, and everything else passes through.
//
// All rewriting is case-insensitive, preserves surrounding sentence
// structure, and is idempotent, so the same string can be gated at
// multiple call sites.
package gate
