package detect

import (
	"context"
	"net/url"
	"strings"
)

// localBusinessTypes are the schema.org @type values that mark an object
// as a local-business-like entity whose hasMap and url/@id properties are
// worth inspecting for Business Profile links.
var localBusinessTypes = map[string]bool{
	"localbusiness": true,
	"restaurant":    true,
	"store":         true,
	"organization":  true,
	"place":         true,
}

// runSchemaPass scans structured-data objects for channel signals: sameAs
// entries for every object, plus hasMap and url/@id properties on
// local-business-typed objects. Objects are expected to be flattened
// already (see flattenGraph); anything with an unexpected shape is simply
// skipped.
func runSchemaPass(_ context.Context, objects []map[string]any, base *url.URL) []Observation {
	var observations []Observation

	for _, object := range objects {
		if object == nil {
			continue
		}

		for _, entry := range stringValues(object["sameAs"]) {
			target := normalizeURL(entry, base)
			if network, handle, ok := matchNetwork(target); ok {
				observations = append(observations, Observation{
					Network: network,
					URL:     target,
					Handle:  handle,
					Source:  SourceSchemaSameAs,
				})
				continue
			}
			if matchLocalProfile(target) {
				observations = append(observations, Observation{
					Local:  true,
					URL:    target,
					Source: SourceSchemaSameAs,
				})
			}
		}

		if !isLocalBusinessType(object) {
			continue
		}

		for _, entry := range stringValues(object["hasMap"]) {
			target := normalizeURL(entry, base)
			if matchLocalProfile(target) {
				observations = append(observations, Observation{
					Local:  true,
					URL:    target,
					Source: SourceSchemaGBP,
				})
			}
		}

		for _, key := range []string{"url", "@id"} {
			for _, entry := range stringValues(object[key]) {
				target := normalizeURL(entry, base)
				if matchLocalProfile(target) {
					observations = append(observations, Observation{
						Local:  true,
						URL:    target,
						Source: SourceSchemaURL,
					})
					continue
				}
				if network, handle, ok := matchNetwork(target); ok {
					observations = append(observations, Observation{
						Network: network,
						URL:     target,
						Handle:  handle,
						Source:  SourceSchemaSocial,
					})
				}
			}
		}
	}

	return observations
}

// flattenGraph expands @graph array wrappers so every object is inspected
// at the top level. Non-object graph entries are dropped.
func flattenGraph(objects []map[string]any) []map[string]any {
	var flattened []map[string]any
	for _, object := range objects {
		if object == nil {
			continue
		}
		flattened = append(flattened, object)
		graph, ok := object["@graph"].([]any)
		if !ok {
			continue
		}
		for _, entry := range graph {
			if nested, ok := entry.(map[string]any); ok {
				flattened = append(flattened, nested)
			}
		}
	}
	return flattened
}

// isLocalBusinessType reports whether the object's @type (a single value
// or an array containing one) names a local-business-like entity.
func isLocalBusinessType(object map[string]any) bool {
	for _, typeName := range stringValues(object["@type"]) {
		if localBusinessTypes[strings.ToLower(typeName)] {
			return true
		}
	}
	return false
}

// stringValues extracts string content from a schema property that may be
// a single string, an array of strings, or an object carrying url/@id.
func stringValues(value any) []string {
	switch typed := value.(type) {
	case string:
		if typed == "" {
			return nil
		}
		return []string{typed}
	case []any:
		var values []string
		for _, element := range typed {
			values = append(values, stringValues(element)...)
		}
		return values
	case map[string]any:
		var values []string
		for _, key := range []string{"url", "@id"} {
			if nested, ok := typed[key].(string); ok && nested != "" {
				values = append(values, nested)
			}
		}
		return values
	default:
		return nil
	}
}
