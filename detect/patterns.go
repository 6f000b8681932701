package detect

import (
	"regexp"
	"strings"
)

// Compiled URL pattern tables for channel matching. Go's regexp has no
// negative lookahead, so non-profile URLs (share dialogs, single posts)
// are filtered by the exclude lists instead.

// networkPatterns matches a normalized URL against each social network and
// captures the profile handle.
var networkPatterns = map[Network]*regexp.Regexp{
	NetworkInstagram: regexp.MustCompile(`(?i)^https?://(?:www\.)?instagram\.com/([A-Za-z0-9._]+)/?`),
	NetworkFacebook:  regexp.MustCompile(`(?i)^https?://(?:www\.|m\.)?facebook\.com/([A-Za-z0-9.\-_]+)/?`),
	NetworkTikTok:    regexp.MustCompile(`(?i)^https?://(?:www\.)?tiktok\.com/@([A-Za-z0-9._]+)/?`),
	NetworkX:         regexp.MustCompile(`(?i)^https?://(?:www\.)?(?:twitter|x)\.com/([A-Za-z0-9_]+)/?`),
	NetworkLinkedIn:  regexp.MustCompile(`(?i)^https?://(?:www\.)?linkedin\.com/(?:company|in|school)/([A-Za-z0-9\-_%.]+)/?`),
	NetworkYouTube:   regexp.MustCompile(`(?i)^https?://(?:www\.)?youtube\.com/(?:channel/|c/|user/|@)([A-Za-z0-9\-_.]+)/?`),
}

// networkExcludes filters sharing dialogs and non-profile paths that the
// patterns above would otherwise accept.
var networkExcludes = map[Network][]string{
	NetworkFacebook:  {"sharer", "share.php", "plugins", "dialog", "events/", "groups/", "login"},
	NetworkX:         {"intent", "share", "search", "hashtag"},
	NetworkInstagram: {"/p/", "/reel/", "/explore", "/accounts", "/stories/"},
	NetworkTikTok:    {"/video/", "/tag/"},
	NetworkYouTube:   {"/watch", "/embed", "/playlist", "/shorts/"},
	NetworkLinkedIn:  {"/share", "/pulse/", "/jobs/"},
}

// reservedHandles are path segments that match the profile patterns but
// never name an account.
var reservedHandles = map[string]bool{
	"home": true, "about": true, "help": true, "privacy": true,
	"policies": true, "pages": true, "profile.php": true, "public": true,
	"search": true, "explore": true, "settings": true, "legal": true,
}

// localProfilePatterns lists the known Google Business Profile URL shapes:
// short links, maps hosts, business management paths, knowledge-panel
// links, and relative map paths (which survive normalization only when no
// base URL was supplied). A cid query parameter counts only on a /maps
// path; anywhere else cid is a generic campaign id, not a listing id.
var localProfilePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^https?://g\.page/`),
	regexp.MustCompile(`(?i)^https?://g\.co/kgs/`),
	regexp.MustCompile(`(?i)^https?://goo\.gl/maps`),
	regexp.MustCompile(`(?i)^https?://maps\.app\.goo\.gl/`),
	regexp.MustCompile(`(?i)^https?://maps\.google\.[a-z.]+`),
	regexp.MustCompile(`(?i)^https?://(?:www\.)?google\.[a-z.]+/maps`),
	regexp.MustCompile(`(?i)^https?://(?:www\.)?google\.[a-z.]+/business`),
	regexp.MustCompile(`(?i)^https?://business\.google\.com/`),
	regexp.MustCompile(`(?i)^https?://(?:www\.)?google\.[a-z.]+/local`),
	regexp.MustCompile(`(?i)^https?://search\.google\.com/local`),
	regexp.MustCompile(`(?i)^https?://(?:www\.)?google\.[a-z.]+/search\?.*ludocid=`),
	regexp.MustCompile(`(?i)^https?://[^/]+/maps\?(?:.*&)?cid=\d+`),
	regexp.MustCompile(`(?i)^/maps(?:[/?]|$)`),
	regexp.MustCompile(`(?i)^https?://plus\.google\.com/\+`),
}

// matchNetwork tests a normalized URL against the social pattern table.
// It returns the network, the captured handle, and whether the URL is a
// profile link (exclude lists applied).
func matchNetwork(target string) (Network, string, bool) {
	if target == "" {
		return "", "", false
	}
	for _, network := range Networks() {
		pattern := networkPatterns[network]
		matches := pattern.FindStringSubmatch(target)
		if matches == nil {
			continue
		}
		if isExcluded(network, target) {
			continue
		}
		handle := strings.TrimSuffix(matches[1], "/")
		if reservedHandles[strings.ToLower(handle)] {
			continue
		}
		return network, handle, true
	}
	return "", "", false
}

// matchLocalProfile tests a normalized URL against the Business Profile
// shape table.
func matchLocalProfile(target string) bool {
	if target == "" {
		return false
	}
	for _, pattern := range localProfilePatterns {
		if pattern.MatchString(target) {
			return true
		}
	}
	return false
}

func isExcluded(network Network, target string) bool {
	lower := strings.ToLower(target)
	for _, fragment := range networkExcludes[network] {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}
