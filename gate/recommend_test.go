package gate

import (
	"reflect"
	"strings"
	"testing"

	"github.com/leadlab/footprint/detect"
)

func TestSanitizeRecommendationsEstablishedChannel(t *testing.T) {
	snapshot := testSnapshot(0.9)
	setChannel(snapshot, detect.NetworkInstagram, detect.StatusPresent, 0.85)

	got := SanitizeRecommendations(snapshot, []string{
		"Create an Instagram account to reach younger customers.",
	})

	if len(got) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(got))
	}
	if !strings.HasPrefix(got[0], "Optimize your existing Instagram presence") {
		t.Errorf("got %q, want an optimize rewrite", got[0])
	}
}

func TestSanitizeRecommendationsMissingHighConfidence(t *testing.T) {
	snapshot := testSnapshot(0.80)
	snapshot.LocalProfile = &detect.LocalProfilePresence{Status: detect.StatusMissing}

	in := "Set up a Google Business Profile to appear in local search."
	got := SanitizeRecommendations(snapshot, []string{in})

	if len(got) != 1 || got[0] != in {
		t.Errorf("got %q, want unchanged pass-through", got)
	}
}

func TestSanitizeRecommendationsMissingLowConfidence(t *testing.T) {
	snapshot := testSnapshot(0.40)
	snapshot.LocalProfile = &detect.LocalProfilePresence{Status: detect.StatusMissing}

	got := SanitizeRecommendations(snapshot, []string{
		"Set up a Google Business Profile to appear in local search.",
	})

	want := "Verify and, if needed, set up a Google Business Profile to appear in local search."
	if len(got) != 1 || got[0] != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSanitizeRecommendationsSoftenIdempotent(t *testing.T) {
	snapshot := testSnapshot(0.40)
	snapshot.LocalProfile = &detect.LocalProfilePresence{Status: detect.StatusMissing}

	in := []string{"Claim a Google Business Profile."}
	once := SanitizeRecommendations(snapshot, in)
	twice := SanitizeRecommendations(snapshot, once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("not idempotent:\n once %q\ntwice %q", once, twice)
	}
}

func TestSanitizeRecommendationsLocalProfileNotChecked(t *testing.T) {
	snapshot := testSnapshot(0.40)
	// LocalProfile nil: the check never ran; the gate has no grounds to act.

	in := "Set up a Google Business Profile."
	got := SanitizeRecommendations(snapshot, []string{in})
	if len(got) != 1 || got[0] != in {
		t.Errorf("got %q, want unchanged", got)
	}
}

func TestSanitizeRecommendationsGenericSocial(t *testing.T) {
	snapshot := testSnapshot(0.9)
	setChannel(snapshot, detect.NetworkFacebook, detect.StatusProbable, 0.70)

	got := SanitizeRecommendations(snapshot, []string{
		"Establish a social media presence on the major platforms.",
	})

	if len(got) != 1 || !strings.HasPrefix(got[0], "Optimize your existing social media presence") {
		t.Errorf("got %q, want generic social optimize rewrite", got)
	}
}

func TestSanitizeRecommendationsInconclusivePassThrough(t *testing.T) {
	snapshot := testSnapshot(0.9)
	setChannel(snapshot, detect.NetworkTikTok, detect.StatusInconclusive, 0.50)

	in := "Create a TikTok account for short-form video."
	got := SanitizeRecommendations(snapshot, []string{in})
	if len(got) != 1 || got[0] != in {
		t.Errorf("got %q, want unchanged for inconclusive channel", got)
	}
}

func TestSanitizeRecommendationsShapeAndOrder(t *testing.T) {
	snapshot := testSnapshot(0.9)
	setChannel(snapshot, detect.NetworkInstagram, detect.StatusPresent, 0.85)

	in := []string{
		"Improve website loading speed.",
		"",
		"Create an Instagram account.",
		"  ",
		"Respond to every review within a day.",
	}
	got := SanitizeRecommendations(snapshot, in)

	// Blank entries are removed; everything else keeps its order.
	if len(got) != 3 {
		t.Fatalf("got %d recommendations, want 3: %q", len(got), got)
	}
	if got[0] != in[0] {
		t.Errorf("got[0] = %q, want %q", got[0], in[0])
	}
	if !strings.HasPrefix(got[1], "Optimize your existing Instagram presence") {
		t.Errorf("got[1] = %q, want optimize rewrite", got[1])
	}
	if got[2] != in[4] {
		t.Errorf("got[2] = %q, want %q", got[2], in[4])
	}
}

func TestSanitizeRecommendationsSoftenThresholdOption(t *testing.T) {
	snapshot := testSnapshot(0.75)
	snapshot.LocalProfile = &detect.LocalProfilePresence{Status: detect.StatusMissing}

	in := "Register a Google Business Profile."

	// Default threshold 0.70: 0.75 passes through.
	got := SanitizeRecommendations(snapshot, []string{in})
	if got[0] != in {
		t.Errorf("default threshold: got %q, want unchanged", got[0])
	}

	// Raised threshold: the same snapshot now softens.
	got = SanitizeRecommendations(snapshot, []string{in}, WithSoftenThreshold(0.90))
	want := "Verify and, if needed, register a Google Business Profile."
	if got[0] != want {
		t.Errorf("raised threshold: got %q, want %q", got[0], want)
	}
}

func TestClassifyRecommendation(t *testing.T) {
	tests := []struct {
		text string
		want string // class name, "" for unclassified
	}{
		{"Set up a Google Business Profile.", "local-profile-establish"},
		{"Claim your Google My Business listing today.", "local-profile-establish"},
		{"Create an Instagram account.", "instagram-establish"},
		{"Launch a TikTok channel.", "tiktok-establish"},
		{"Start posting on Twitter.", "x-establish"},
		{"Build a social media presence.", "social-establish"},
		{"Improve website loading speed.", ""},
		{"Optimize your existing Instagram presence: post consistently.", ""},
	}

	for _, tt := range tests {
		class := classifyRecommendation(tt.text)
		name := ""
		if class != nil {
			name = class.Name
		}
		if name != tt.want {
			t.Errorf("classifyRecommendation(%q) = %q, want %q", tt.text, name, tt.want)
		}
	}
}
