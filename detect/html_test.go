package detect

import (
	"context"
	"testing"
)

func TestDecodeStructuredFragment(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantNil bool
		wantLen int
	}{
		{"single object", `{"@type":"Organization"}`, false, 1},
		{"array of objects", `[{"@type":"Organization"},{"@type":"Place"}]`, false, 2},
		{"empty array is valid but empty", `[]`, false, 0},
		{"array of strings is valid but empty", `["a","b"]`, false, 0},
		{"scalar is valid but empty", `"hello"`, false, 0},
		{"number is valid but empty", `42`, false, 0},
		{"repairable object", `{'@type': 'Organization',}`, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeStructuredFragment(tt.in)
			if (got == nil) != tt.wantNil {
				t.Fatalf("decodeStructuredFragment(%q) nil = %v, want %v", tt.in, got == nil, tt.wantNil)
			}
			if len(got) != tt.wantLen {
				t.Errorf("decodeStructuredFragment(%q) len = %d, want %d", tt.in, len(got), tt.wantLen)
			}
		})
	}
}

func TestClassifyPositionMarkers(t *testing.T) {
	html := `<html><body>
		<div id="site-header"><a href="https://www.instagram.com/acme">top</a></div>
		<main><p><a href="https://www.facebook.com/acme">middle</a></p></main>
		<div class="page-footer"><a href="https://x.com/acme">bottom</a></div>
	</body></html>`

	result := runHTMLPass(context.Background(), html, nil)

	want := map[Network]DetectionSource{
		NetworkInstagram: SourceHTMLLinkHeader,
		NetworkFacebook:  SourceHTMLLinkBody,
		NetworkX:         SourceHTMLLinkFooter,
	}
	got := map[Network]DetectionSource{}
	for _, obs := range result.observations {
		got[obs.Network] = obs.Source
	}
	for network, source := range want {
		if got[network] != source {
			t.Errorf("%s source = %s, want %s", network, got[network], source)
		}
	}
}
