package workitems

import (
	"github.com/leadlab/footprint/detect"
)

// Action is the kind of work a suggestion proposes.
type Action string

const (
	// ActionOptimize improves a channel the business already runs.
	ActionOptimize Action = "optimize"
	// ActionSetUp creates a channel the business demonstrably lacks.
	ActionSetUp Action = "set_up"
	// ActionVerify confirms whether a channel exists before committing to
	// either of the other actions.
	ActionVerify Action = "verify"
)

// ChannelLocalProfile is the channel identifier used for the Google
// Business Profile work item, alongside the detect.Network names.
const ChannelLocalProfile = "google_business_profile"

// Suggestion is one actionable channel work item.
type Suggestion struct {
	Channel  string `json:"channel"`
	Action   Action `json:"action"`
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Priority int    `json:"priority"`
}

// Skip records a channel deliberately left without a suggestion and why.
type Skip struct {
	Channel string `json:"channel"`
	Reason  string `json:"reason"`
}

// Confidence tiers for missing channels: above setUpFloor the detector is
// trusted enough to recommend creating the channel outright; between
// verifyFloor and setUpFloor only a verification step is warranted; below
// verifyFloor the data says nothing useful and the channel is skipped.
const (
	setUpFloor  = 0.70
	verifyFloor = 0.40
)

// Base priorities per action, 0-100. Set-up outranks optimization because
// an absent channel is usually the larger gap; verification is cheap but
// low-stakes.
const (
	priorityOptimize = 60
	prioritySetUp    = 80
	priorityVerify   = 40
)

// localBoost raises local-profile priorities for businesses that serve a
// physical area, where the Business Profile dominates discovery.
const localBoost = 15

// Option configures Derive.
type Option func(*config)

type config struct {
	localBusiness bool
}

// WithLocalBusiness marks the subject as a local, physically located
// business, boosting the priority of Google Business Profile work.
func WithLocalBusiness(local bool) Option {
	return func(cfg *config) {
		cfg.localBusiness = local
	}
}

// Derive maps a snapshot to suggestions and skips. The decision per
// channel depends on its presence status and on the snapshot's overall
// data confidence:
//
//   - present or probable → optimize the existing channel;
//   - missing with data confidence ≥ 0.70 → set it up;
//   - missing with data confidence ≥ 0.40 → verify it first;
//   - missing with lower confidence, or inconclusive → skip with a reason.
//
// The local profile is covered only when the snapshot checked it.
func Derive(snapshot *detect.Snapshot, opts ...Option) ([]Suggestion, []Skip) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if snapshot == nil {
		return nil, nil
	}

	var suggestions []Suggestion
	var skips []Skip

	if snapshot.LocalProfile != nil {
		suggestion, skip := localProfileItem(snapshot, cfg)
		if skip != nil {
			skips = append(skips, *skip)
		} else {
			suggestions = append(suggestions, *suggestion)
		}
	}

	for _, channel := range snapshot.Channels {
		suggestion, skip := channelItem(snapshot, channel)
		if skip != nil {
			skips = append(skips, *skip)
		} else {
			suggestions = append(suggestions, *suggestion)
		}
	}

	return suggestions, skips
}

func localProfileItem(snapshot *detect.Snapshot, cfg config) (*Suggestion, *Skip) {
	boost := 0
	if cfg.localBusiness {
		boost = localBoost
	}

	switch snapshot.LocalProfile.Status {
	case detect.StatusPresent, detect.StatusProbable:
		return &Suggestion{
			Channel:  ChannelLocalProfile,
			Action:   ActionOptimize,
			Title:    "Optimize the Google Business Profile",
			Detail:   "Complete every profile field, add recent photos, keep hours and services current, and respond to reviews.",
			Priority: clampPriority(priorityOptimize + boost),
		}, nil
	case detect.StatusMissing:
		switch {
		case snapshot.DataConfidence >= setUpFloor:
			return &Suggestion{
				Channel:  ChannelLocalProfile,
				Action:   ActionSetUp,
				Title:    "Claim a Google Business Profile",
				Detail:   "No Business Profile was found. Claim and verify the listing so the business appears in local search and maps.",
				Priority: clampPriority(prioritySetUp + boost),
			}, nil
		case snapshot.DataConfidence >= verifyFloor:
			return &Suggestion{
				Channel:  ChannelLocalProfile,
				Action:   ActionVerify,
				Title:    "Verify Google Business Profile status",
				Detail:   "The scan found no Business Profile, but the underlying data was thin. Confirm whether a listing exists before planning work.",
				Priority: clampPriority(priorityVerify + boost),
			}, nil
		default:
			return nil, &Skip{
				Channel: ChannelLocalProfile,
				Reason:  "scan data was too sparse to say anything about the Business Profile",
			}
		}
	default:
		return nil, &Skip{
			Channel: ChannelLocalProfile,
			Reason:  "Business Profile signals were inconclusive",
		}
	}
}

func channelItem(snapshot *detect.Snapshot, channel detect.ChannelPresence) (*Suggestion, *Skip) {
	name := string(channel.Network)
	display := displayNames[channel.Network]

	switch channel.Status {
	case detect.StatusPresent, detect.StatusProbable:
		return &Suggestion{
			Channel:  name,
			Action:   ActionOptimize,
			Title:    "Optimize the " + display + " presence",
			Detail:   "The " + display + " channel exists; improve posting cadence, profile completeness, and audience engagement.",
			Priority: priorityOptimize,
		}, nil
	case detect.StatusMissing:
		switch {
		case snapshot.DataConfidence >= setUpFloor:
			return &Suggestion{
				Channel:  name,
				Action:   ActionSetUp,
				Title:    "Set up a " + display + " presence",
				Detail:   "No " + display + " channel was found for the business. Create one if it fits the audience.",
				Priority: prioritySetUp,
			}, nil
		case snapshot.DataConfidence >= verifyFloor:
			return &Suggestion{
				Channel:  name,
				Action:   ActionVerify,
				Title:    "Verify " + display + " presence",
				Detail:   "The scan found no " + display + " channel, but the underlying data was thin. Confirm manually before recommending setup.",
				Priority: priorityVerify,
			}, nil
		default:
			return nil, &Skip{
				Channel: name,
				Reason:  "scan data was too sparse to assess " + display,
			}
		}
	default:
		return nil, &Skip{
			Channel: name,
			Reason:  display + " signals were inconclusive",
		}
	}
}

var displayNames = map[detect.Network]string{
	detect.NetworkInstagram: "Instagram",
	detect.NetworkFacebook:  "Facebook",
	detect.NetworkTikTok:    "TikTok",
	detect.NetworkX:         "X",
	detect.NetworkLinkedIn:  "LinkedIn",
	detect.NetworkYouTube:   "YouTube",
}

func clampPriority(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
