package visibility

import (
	"testing"

	"github.com/noteflow/core/internal/models"
)

func note(owner, vis string) *models.NoteModel {
	return &models.NoteModel{UserID: owner, Visibility: vis}
}

func TestVisible(t *testing.T) {
	follows := NewFollowSet([]string{"alice"})

	cases := []struct {
		name    string
		note    *models.NoteModel
		viewer  string
		follows FollowSet
		want    bool
	}{
		{name: "public anonymous", note: note("alice", models.VisibilityPublic), viewer: "", want: true},
		{name: "public stranger", note: note("alice", models.VisibilityPublic), viewer: "carol", want: true},
		{name: "private owner", note: note("alice", models.VisibilityPrivate), viewer: "alice", want: true},
		{name: "private stranger", note: note("alice", models.VisibilityPrivate), viewer: "bob", want: false},
		{name: "private anonymous", note: note("alice", models.VisibilityPrivate), viewer: "", want: false},
		{name: "friends follower", note: note("alice", models.VisibilityFriends), viewer: "bob", follows: follows, want: true},
		{name: "friends non-follower", note: note("alice", models.VisibilityFriends), viewer: "carol", want: false},
		{name: "friends owner", note: note("alice", models.VisibilityFriends), viewer: "alice", want: true},
		{name: "friends anonymous", note: note("alice", models.VisibilityFriends), viewer: "", follows: follows, want: false},
		{name: "nil note", note: nil, viewer: "alice", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Visible(tc.note, tc.viewer, tc.follows); got != tc.want {
				t.Fatalf("Visible(%v, %q) = %v, want %v", tc.note, tc.viewer, got, tc.want)
			}
		})
	}
}

// The friends rule checks who the viewer follows, not who follows the viewer.
func TestVisibleFriendsIsAsymmetric(t *testing.T) {
	n := note("alice", models.VisibilityFriends)

	// Bob follows Alice: Bob sees Alice's note.
	if !Visible(n, "bob", NewFollowSet([]string{"alice"})) {
		t.Fatal("follower of the owner should see a friends note")
	}

	// Alice follows Bob (reverse direction only): Bob does not see the note.
	if Visible(n, "bob", NewFollowSet([]string{"carol"})) {
		t.Fatal("friends visibility must not be granted by the owner following the viewer")
	}
}

func TestFollowSetContains(t *testing.T) {
	set := NewFollowSet([]string{"a", "b"})
	if !set.Contains("a") || !set.Contains("b") {
		t.Fatal("expected members to be present")
	}
	if set.Contains("c") {
		t.Fatal("unexpected member")
	}
	if NewFollowSet(nil).Contains("a") {
		t.Fatal("empty set should contain nothing")
	}
}
