package detect

// DetectionSource identifies where a presence signal was observed.
// The set is closed: downstream weight tables key on these values and an
// unknown source contributes zero confidence.
type DetectionSource string

const (
	SourceHTMLLinkHeader DetectionSource = "html_link_header"
	SourceHTMLLinkFooter DetectionSource = "html_link_footer"
	SourceHTMLLinkBody   DetectionSource = "html_link_body"
	SourceSchemaSameAs   DetectionSource = "schema_sameAs"
	SourceSchemaURL      DetectionSource = "schema_url"
	SourceSchemaGBP      DetectionSource = "schema_gbp"
	SourceSchemaSocial   DetectionSource = "schema_social"
	SourceSearchFallback DetectionSource = "search_fallback"
	SourceManual         DetectionSource = "manual"
)

// sourceRank fixes a stable ordering for provenance lists so identical
// inputs always serialize identically.
var sourceRank = map[DetectionSource]int{
	SourceHTMLLinkHeader: 0,
	SourceHTMLLinkFooter: 1,
	SourceHTMLLinkBody:   2,
	SourceSchemaSameAs:   3,
	SourceSchemaURL:      4,
	SourceSchemaGBP:      5,
	SourceSchemaSocial:   6,
	SourceSearchFallback: 7,
	SourceManual:         8,
}

// PresenceStatus is the four-level categorical judgment derived from
// confidence. Levels are ordered by decreasing certainty:
// present > probable > inconclusive > missing.
type PresenceStatus string

const (
	StatusPresent      PresenceStatus = "present"
	StatusProbable     PresenceStatus = "probable"
	StatusInconclusive PresenceStatus = "inconclusive"
	StatusMissing      PresenceStatus = "missing"
)

// Network is one of the supported social networks.
type Network string

const (
	NetworkInstagram Network = "instagram"
	NetworkFacebook  Network = "facebook"
	NetworkTikTok    Network = "tiktok"
	NetworkX         Network = "x"
	NetworkLinkedIn  Network = "linkedin"
	NetworkYouTube   Network = "youtube"
)

// Networks returns all supported networks in canonical order. Snapshots
// always carry one channel entry per element of this slice, in this order.
func Networks() []Network {
	return []Network{
		NetworkInstagram,
		NetworkFacebook,
		NetworkTikTok,
		NetworkX,
		NetworkLinkedIn,
		NetworkYouTube,
	}
}

// Observation is one raw per-channel signal with its provenance tag.
// Local is set for Business Profile observations, in which case Network
// is empty and Handle is unused.
type Observation struct {
	Network Network         `json:"network,omitempty"`
	Local   bool            `json:"local,omitempty"`
	URL     string          `json:"url,omitempty"`
	Handle  string          `json:"handle,omitempty"`
	Source  DetectionSource `json:"source"`
}
