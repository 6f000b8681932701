package score

import (
	"testing"

	"github.com/leadlab/footprint/detect"
)

func emptySnapshot() *detect.Snapshot {
	snapshot := &detect.Snapshot{}
	for _, network := range detect.Networks() {
		snapshot.Channels = append(snapshot.Channels, detect.ChannelPresence{
			Network: network,
			Status:  detect.StatusMissing,
		})
	}
	return snapshot
}

func setChannel(snapshot *detect.Snapshot, network detect.Network, status detect.PresenceStatus, confidence float64) {
	for i := range snapshot.Channels {
		if snapshot.Channels[i].Network == network {
			snapshot.Channels[i].Status = status
			snapshot.Channels[i].Confidence = confidence
			return
		}
	}
}

func TestStatusBand(t *testing.T) {
	tests := []struct {
		status     detect.PresenceStatus
		confidence float64
		want       int
	}{
		{detect.StatusPresent, 1.00, 100},
		{detect.StatusPresent, 0.85, 97},
		{detect.StatusPresent, 0.00, 80},
		{detect.StatusProbable, 0.60, 72},
		{detect.StatusInconclusive, 0.50, 40},
		{detect.StatusMissing, 0.90, 0},
	}

	for _, tt := range tests {
		if got := statusBand(tt.status, tt.confidence); got != tt.want {
			t.Errorf("statusBand(%s, %v) = %d, want %d", tt.status, tt.confidence, got, tt.want)
		}
	}
}

func TestDeriveSocialBreadth(t *testing.T) {
	snapshot := emptySnapshot()
	setChannel(snapshot, detect.NetworkInstagram, detect.StatusPresent, 0.85)
	setChannel(snapshot, detect.NetworkFacebook, detect.StatusPresent, 0.75)
	setChannel(snapshot, detect.NetworkYouTube, detect.StatusProbable, 0.65)

	subscores := Derive(snapshot)

	// Three active channels, average confidence 0.75: 70 + round(11.25).
	if subscores.SocialBreadth != 81 {
		t.Errorf("SocialBreadth = %d, want 81", subscores.SocialBreadth)
	}
}

func TestDeriveBreadthBases(t *testing.T) {
	tests := []struct {
		activeCount int
		want        int
	}{
		{0, 0}, {1, 40}, {2, 55}, {3, 70}, {4, 85}, {6, 85},
	}

	for _, tt := range tests {
		snapshot := emptySnapshot()
		for i, network := range detect.Networks() {
			if i < tt.activeCount {
				setChannel(snapshot, network, detect.StatusPresent, 0)
			}
		}
		subscores := Derive(snapshot)
		if subscores.SocialBreadth != tt.want {
			t.Errorf("%d active channels at zero confidence: SocialBreadth = %d, want %d",
				tt.activeCount, subscores.SocialBreadth, tt.want)
		}
	}
}

func TestDeriveLocalAndProfessional(t *testing.T) {
	snapshot := emptySnapshot()
	snapshot.LocalProfile = &detect.LocalProfilePresence{Status: detect.StatusPresent, Confidence: 0.80}
	setChannel(snapshot, detect.NetworkLinkedIn, detect.StatusProbable, 0.70)

	subscores := Derive(snapshot)

	if subscores.LocalProfile != 96 {
		t.Errorf("LocalProfile = %d, want 96", subscores.LocalProfile)
	}
	if subscores.Professional != 74 {
		t.Errorf("Professional = %d, want 74", subscores.Professional)
	}
}

func TestDeriveLocalProfileNotChecked(t *testing.T) {
	snapshot := emptySnapshot()

	subscores := Derive(snapshot)
	if subscores.LocalProfile != 0 {
		t.Errorf("LocalProfile = %d, want 0 when the check never ran", subscores.LocalProfile)
	}
}

func TestDeriveReputation(t *testing.T) {
	snapshot := emptySnapshot()

	if got := Derive(snapshot).Reputation; got != 50 {
		t.Errorf("default Reputation = %d, want 50", got)
	}
	if got := Derive(snapshot, WithReputation(72)).Reputation; got != 72 {
		t.Errorf("Reputation = %d, want 72", got)
	}
	if got := Derive(snapshot, WithReputation(150)).Reputation; got != 100 {
		t.Errorf("Reputation = %d, want clamped 100", got)
	}
	if got := Derive(snapshot, WithReputation(-5)).Reputation; got != 0 {
		t.Errorf("Reputation = %d, want clamped 0", got)
	}
}

func TestComposite(t *testing.T) {
	tests := []struct {
		name      string
		subscores Subscores
		want      int
	}{
		{"all zero", Subscores{}, 0},
		{"all hundred", Subscores{100, 100, 100, 100}, 100},
		{"neutral reputation only", Subscores{Reputation: 50}, 8},
		{"mixed", Subscores{LocalProfile: 96, SocialBreadth: 81, Professional: 0, Reputation: 50}, 69},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.subscores.Composite(); got != tt.want {
				t.Errorf("Composite() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDeriveNilSnapshot(t *testing.T) {
	subscores := Derive(nil)
	want := Subscores{Reputation: 50}
	if subscores != want {
		t.Errorf("Derive(nil) = %+v, want %+v", subscores, want)
	}
}
