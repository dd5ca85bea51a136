package collab

import (
	"testing"
	"time"

	"github.com/noteflow/core/internal/models"
)

func grantWith(status string, expiresAt *time.Time) *models.CollaborationModel {
	return &models.CollaborationModel{
		OwnerID:        "owner",
		CollaboratorID: "collab",
		Status:         status,
		ExpiresAt:      expiresAt,
	}
}

func TestCurrentlyActive(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name  string
		grant *models.CollaborationModel
		want  bool
	}{
		{name: "active no expiry", grant: grantWith(models.CollabStatusActive, nil), want: true},
		{name: "active future expiry", grant: grantWith(models.CollabStatusActive, &future), want: true},
		{name: "active past expiry", grant: grantWith(models.CollabStatusActive, &past), want: false},
		{name: "ended no expiry", grant: grantWith(models.CollabStatusEnded, nil), want: false},
		{name: "ended future expiry", grant: grantWith(models.CollabStatusEnded, &future), want: false},
		{name: "nil grant", grant: nil, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CurrentlyActive(tc.grant, now); got != tc.want {
				t.Fatalf("CurrentlyActive = %v, want %v", got, tc.want)
			}
		})
	}
}

// Expiry is lazy: the status column stays "active" after the expiry instant,
// only the predicate result changes.
func TestCurrentlyActiveLazyExpiry(t *testing.T) {
	expiry := time.Now().Add(time.Minute)
	g := grantWith(models.CollabStatusActive, &expiry)

	if !CurrentlyActive(g, expiry.Add(-time.Second)) {
		t.Fatal("grant should be active just before expiry")
	}
	if CurrentlyActive(g, expiry.Add(time.Second)) {
		t.Fatal("grant should be inactive just after expiry")
	}
	if g.Status != models.CollabStatusActive {
		t.Fatalf("status flipped to %q; expiry must stay lazy", g.Status)
	}
}

func TestCanEnd(t *testing.T) {
	g := grantWith(models.CollabStatusActive, nil)

	cases := []struct {
		name  string
		actor string
		want  bool
	}{
		{name: "owner", actor: "owner", want: true},
		{name: "collaborator", actor: "collab", want: true},
		{name: "stranger", actor: "mallory", want: false},
		{name: "anonymous", actor: "", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := canEnd(g, tc.actor); got != tc.want {
				t.Fatalf("canEnd(%q) = %v, want %v", tc.actor, got, tc.want)
			}
		})
	}
}

func TestValidCollabRole(t *testing.T) {
	if !models.ValidCollabRole(models.CollabRoleEditor) || !models.ValidCollabRole(models.CollabRoleViewer) {
		t.Fatal("editor/viewer should be valid roles")
	}
	if models.ValidCollabRole("admin") || models.ValidCollabRole("") {
		t.Fatal("unknown roles must be rejected")
	}
}
