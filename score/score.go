package score

import (
	"math"

	"github.com/leadlab/footprint/detect"
)

// Subscores are the four 0-100 digital-footprint dimensions. Reputation
// has no detector in this module and defaults to a neutral 50 unless a
// measured value is supplied via [WithReputation].
type Subscores struct {
	LocalProfile  int `json:"local_profile"`
	SocialBreadth int `json:"social_breadth"`
	Professional  int `json:"professional"`
	Reputation    int `json:"reputation"`
}

// Composite blends the subscores into one 0-100 digital-footprint score.
// Local search and social breadth dominate small-business marketing
// outcomes, so they carry 35% each; professional-network strength and
// reputation carry 15% each.
func (s Subscores) Composite() int {
	blended := 0.35*float64(s.LocalProfile) +
		0.35*float64(s.SocialBreadth) +
		0.15*float64(s.Professional) +
		0.15*float64(s.Reputation)
	return int(math.Round(blended))
}

// Option configures Derive.
type Option func(*config)

type config struct {
	reputation int
}

// WithReputation supplies an externally measured reputation/reviews
// subscore (0-100), replacing the neutral default of 50. Out-of-range
// values are clamped.
func WithReputation(reputation int) Option {
	return func(cfg *config) {
		cfg.reputation = clamp100(reputation)
	}
}

// Derive computes the subscore bundle for a snapshot.
//
// Per-channel strength is status-banded: present scores 80 + 20·confidence,
// probable 60 + 20·confidence, inconclusive 30 + 20·confidence, and missing
// scores 0. Social breadth rewards channel count with a stepped base
// (0, 40, 55, 70, 85 for 0, 1, 2, 3, 4+ active channels) plus an
// average-confidence bonus of up to 15 points.
func Derive(snapshot *detect.Snapshot, opts ...Option) Subscores {
	cfg := config{reputation: 50}
	for _, opt := range opts {
		opt(&cfg)
	}

	subscores := Subscores{Reputation: cfg.reputation}

	if snapshot == nil {
		return subscores
	}

	if snapshot.LocalProfile != nil {
		subscores.LocalProfile = statusBand(snapshot.LocalProfile.Status, snapshot.LocalProfile.Confidence)
	}

	if linkedin, ok := snapshot.Channel(detect.NetworkLinkedIn); ok {
		subscores.Professional = statusBand(linkedin.Status, linkedin.Confidence)
	}

	subscores.SocialBreadth = breadthScore(snapshot.ActiveChannels())

	return subscores
}

func statusBand(status detect.PresenceStatus, confidence float64) int {
	switch status {
	case detect.StatusPresent:
		return clamp100(int(math.Round(80 + 20*confidence)))
	case detect.StatusProbable:
		return clamp100(int(math.Round(60 + 20*confidence)))
	case detect.StatusInconclusive:
		return clamp100(int(math.Round(30 + 20*confidence)))
	default:
		return 0
	}
}

func breadthScore(active []detect.ChannelPresence) int {
	base := breadthBase(len(active))
	if len(active) == 0 {
		return base
	}

	var total float64
	for _, channel := range active {
		total += channel.Confidence
	}
	average := total / float64(len(active))

	return clamp100(int(math.Round(float64(base) + average*15)))
}

func breadthBase(activeCount int) int {
	switch {
	case activeCount <= 0:
		return 0
	case activeCount == 1:
		return 40
	case activeCount == 2:
		return 55
	case activeCount == 3:
		return 70
	default:
		return 85
	}
}

func clamp100(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
