package follow

import (
	"errors"
	"testing"
)

func TestFollowRejectsSelf(t *testing.T) {
	svc := NewService(nil)
	if err := svc.Follow("alice", "alice"); !errors.Is(err, ErrSelfFollow) {
		t.Fatalf("Follow(self) = %v, want ErrSelfFollow", err)
	}
}

func TestFollowedByAnonymous(t *testing.T) {
	svc := NewService(nil)
	ids, err := svc.FollowedBy("")
	if err != nil {
		t.Fatalf("FollowedBy: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("anonymous viewer follows nobody, got %v", ids)
	}
}
