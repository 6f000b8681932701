package detect

import (
	"net/url"
	"strings"
)

// normalizeURL applies the uniform normalization used before every pattern
// comparison: protocol-relative URLs are promoted to https, host-relative
// paths are resolved against the base URL when one is available, bare-host
// strings are prefixed with https://, trailing slashes are stripped except
// for the root path, and hostnames are lower-cased.
//
// Normalization never fails: malformed input is returned unchanged so one
// bad link cannot crash channel detection.
func normalizeURL(raw string, base *url.URL) string {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return candidate
	}

	switch {
	case strings.HasPrefix(candidate, "//"):
		candidate = "https:" + candidate
	case strings.HasPrefix(candidate, "/"):
		if base == nil {
			// Keep host-relative paths as-is; the relative-map-path
			// pattern still gets a chance to match them.
			return candidate
		}
		ref, err := url.Parse(candidate)
		if err != nil {
			return raw
		}
		candidate = base.ResolveReference(ref).String()
	case !strings.Contains(candidate, "://"):
		if !looksLikeBareHost(candidate) {
			return raw
		}
		candidate = "https://" + candidate
	}

	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Host == "" {
		return raw
	}

	parsed.Host = strings.ToLower(parsed.Host)
	if parsed.Path != "/" {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	}
	return parsed.String()
}

// looksLikeBareHost reports whether a scheme-less string is plausibly a
// hostname with optional path (e.g. "instagram.com/acme") rather than
// free text or a fragment/mailto-style link.
func looksLikeBareHost(s string) bool {
	if strings.ContainsAny(s, " \t\n") {
		return false
	}
	if strings.HasPrefix(s, "#") || strings.Contains(s, ":") {
		return false
	}
	host := s
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		host = s[:i]
	}
	return strings.Contains(host, ".")
}
