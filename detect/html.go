package detect

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kaptinlin/jsonrepair"

	"github.com/leadlab/footprint/internal/utils"
	"github.com/leadlab/footprint/observability"
)

// linkPosition is the DOM region an anchor was found in. Header and footer
// links are treated as deliberate profile references; body links may be
// incidental mentions.
type linkPosition int

const (
	positionBody linkPosition = iota
	positionHeader
	positionFooter
)

// htmlPass holds everything the HTML extraction pass produces: raw
// per-channel observations plus any JSON-LD blocks embedded in the page.
type htmlPass struct {
	observations []Observation
	structured   []map[string]any
}

// runHTMLPass parses all anchor elements in the document, classifies each
// by DOM position, and matches its normalized target against the social
// and Business Profile pattern tables. It also collects embedded
// application/ld+json blocks so the structured-data pass can inspect them.
//
// The pass is pure and fail-soft: unparseable HTML yields an empty result,
// never an error.
func runHTMLPass(ctx context.Context, htmlContent string, base *url.URL) htmlPass {
	var result htmlPass
	if strings.TrimSpace(htmlContent) == "" {
		return result
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		observability.FromContext(ctx).Debug(ctx, "html parse failed, skipping HTML pass",
			observability.Error(err))
		return result
	}

	doc.Find("a[href]").Each(func(_ int, anchor *goquery.Selection) {
		href, _ := anchor.Attr("href")
		target := normalizeURL(href, base)
		if target == "" {
			return
		}

		source := sourceForPosition(classifyPosition(anchor))

		if network, handle, ok := matchNetwork(target); ok {
			result.observations = append(result.observations, Observation{
				Network: network,
				URL:     target,
				Handle:  handle,
				Source:  source,
			})
			return
		}
		if matchLocalProfile(target) {
			result.observations = append(result.observations, Observation{
				Local:  true,
				URL:    target,
				Source: source,
			})
		}
	})

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, script *goquery.Selection) {
		fragment := strings.TrimSpace(script.Text())
		if fragment == "" {
			return
		}
		objects := decodeStructuredFragment(fragment)
		if objects == nil {
			observability.FromContext(ctx).Debug(ctx, "skipping malformed JSON-LD block",
				observability.String("fragment", utils.TruncateStringDefault(fragment)))
			return
		}
		result.structured = append(result.structured, objects...)
	})

	return result
}

// classifyPosition walks an anchor's ancestors and reports the nearest
// region marker: a header/nav/footer tag, or an id/class containing one of
// the conventional region substrings (header, nav, footer, site-header,
// site-footer). Anchors with no marked ancestor are body links.
func classifyPosition(anchor *goquery.Selection) linkPosition {
	position := positionBody
	anchor.Parents().EachWithBreak(func(_ int, parent *goquery.Selection) bool {
		tag := goquery.NodeName(parent)
		marker := strings.ToLower(parent.AttrOr("id", "") + " " + parent.AttrOr("class", ""))
		switch {
		case tag == "footer" || strings.Contains(marker, "footer"):
			position = positionFooter
			return false
		case tag == "header" || tag == "nav" ||
			strings.Contains(marker, "header") || strings.Contains(marker, "nav"):
			position = positionHeader
			return false
		}
		return true
	})
	return position
}

func sourceForPosition(position linkPosition) DetectionSource {
	switch position {
	case positionHeader:
		return SourceHTMLLinkHeader
	case positionFooter:
		return SourceHTMLLinkFooter
	default:
		return SourceHTMLLinkBody
	}
}

// decodeStructuredFragment decodes one JSON-LD fragment into a list of
// objects. Both a single object and an array of objects are accepted.
// Invalid JSON gets one repair attempt (the same tolerance the rest of the
// pipeline extends to model output) before the fragment is rejected.
// Returns nil only when the fragment cannot be decoded at all; valid JSON
// that simply carries no objects yields an empty non-nil slice, so callers
// can tell "malformed" apart from "nothing usable".
func decodeStructuredFragment(fragment string) []map[string]any {
	var decoded any
	if err := json.Unmarshal([]byte(fragment), &decoded); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(fragment)
		if repairErr != nil {
			return nil
		}
		if err := json.Unmarshal([]byte(repaired), &decoded); err != nil {
			return nil
		}
	}

	switch value := decoded.(type) {
	case map[string]any:
		return []map[string]any{value}
	case []any:
		objects := make([]map[string]any, 0, len(value))
		for _, element := range value {
			if object, ok := element.(map[string]any); ok {
				objects = append(objects, object)
			}
		}
		return objects
	default:
		// Scalars are well-formed JSON with no structured data in them.
		return []map[string]any{}
	}
}
