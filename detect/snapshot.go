package detect

// ChannelPresence is the calibrated judgment for one social network.
// Status is always the deterministic image of Confidence under the social
// threshold table; Confidence is always the capped sum of source weights.
// Neither is ever set directly.
type ChannelPresence struct {
	Network    Network           `json:"network"`
	URL        string            `json:"url,omitempty"`
	Handle     string            `json:"handle,omitempty"`
	Sources    []DetectionSource `json:"sources,omitempty"`
	Confidence float64           `json:"confidence"`
	Status     PresenceStatus    `json:"status"`
}

// Active reports whether the channel's presence is established enough
// (present or probable) for consumers to treat the profile as existing.
func (c ChannelPresence) Active() bool {
	return c.Status == StatusPresent || c.Status == StatusProbable
}

// LocalProfilePresence is the Business Profile analog of
// [ChannelPresence]. It has no handle, and it is classified against the
// more lenient local-profile threshold table.
type LocalProfilePresence struct {
	URL        string            `json:"url,omitempty"`
	Sources    []DetectionSource `json:"sources,omitempty"`
	Confidence float64           `json:"confidence"`
	Status     PresenceStatus    `json:"status"`
}

// Active reports whether the local profile is established (present or
// probable).
func (l LocalProfilePresence) Active() bool {
	return l.Status == StatusPresent || l.Status == StatusProbable
}

// Snapshot is the complete, immutable detection result for one analysis
// run. Channels always holds exactly one entry per known network, in
// canonical order. Networks with zero observations appear as missing with
// empty provenance, never omitted, so consumers can rely on fixed-shape
// iteration.
//
// DataConfidence describes how thorough the detection pass itself was
// (coverage, availability of structured data, non-trivial HTML); it is
// distinct from any channel's confidence. Snapshots are never merged at
// this layer.
type Snapshot struct {
	Channels       []ChannelPresence     `json:"channels"`
	LocalProfile   *LocalProfilePresence `json:"local_profile,omitempty"`
	DataConfidence float64               `json:"data_confidence"`
}

// Channel returns the presence entry for the given network. The boolean is
// false only for unknown network ids; every supported network is always
// represented.
func (s *Snapshot) Channel(network Network) (ChannelPresence, bool) {
	for _, channel := range s.Channels {
		if channel.Network == network {
			return channel, true
		}
	}
	return ChannelPresence{}, false
}

// ActiveChannels returns the channels whose presence is established
// (present or probable), in canonical order.
func (s *Snapshot) ActiveChannels() []ChannelPresence {
	var active []ChannelPresence
	for _, channel := range s.Channels {
		if channel.Active() {
			active = append(active, channel)
		}
	}
	return active
}

// HasSocialPresence reports whether at least one social channel is
// established.
func (s *Snapshot) HasSocialPresence() bool {
	return len(s.ActiveChannels()) > 0
}

// LocalProfileActive reports whether a Business Profile was detected as
// present or probable. It is false when the local-profile check was not
// attempted.
func (s *Snapshot) LocalProfileActive() bool {
	return s.LocalProfile != nil && s.LocalProfile.Active()
}
