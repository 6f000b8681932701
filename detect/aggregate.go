package detect

import "sort"

// channelSignals is the merged evidence for one channel before scoring.
type channelSignals struct {
	url     string
	handle  string
	sources map[DetectionSource]bool
}

func newChannelSignals() *channelSignals {
	return &channelSignals{sources: make(map[DetectionSource]bool)}
}

// absorb merges one observation into the accumulated signals. The resolved
// URL and handle follow first-non-empty-wins (callers feed the HTML pass
// first, so HTML-discovered URLs take precedence over structured-data
// ones), while provenance is a union: confidence must reflect every
// corroborating signal, not just the first.
func (s *channelSignals) absorb(obs Observation) {
	if s.url == "" {
		s.url = obs.URL
	}
	if s.handle == "" {
		s.handle = obs.Handle
	}
	s.sources[obs.Source] = true
}

// sortedSources returns the provenance set in the canonical source order,
// keeping snapshots byte-identical across runs.
func (s *channelSignals) sortedSources() []DetectionSource {
	sources := make([]DetectionSource, 0, len(s.sources))
	for source := range s.sources {
		sources = append(sources, source)
	}
	sort.Slice(sources, func(i, j int) bool {
		return sourceRank[sources[i]] < sourceRank[sources[j]]
	})
	return sources
}

// aggregate merges observation lists per network and for the local
// profile. Lists are consumed in order, so pass the HTML observations
// before the structured-data ones.
func aggregate(observationLists ...[]Observation) (map[Network]*channelSignals, *channelSignals) {
	channels := make(map[Network]*channelSignals, len(Networks()))
	for _, network := range Networks() {
		channels[network] = newChannelSignals()
	}
	local := newChannelSignals()

	for _, observations := range observationLists {
		for _, obs := range observations {
			if obs.Local {
				local.absorb(obs)
				continue
			}
			if signals, ok := channels[obs.Network]; ok {
				signals.absorb(obs)
			}
		}
	}

	return channels, local
}
