package collab

import (
	"errors"
	"testing"
)

func TestGrantRejectsSelf(t *testing.T) {
	svc := NewService(nil)
	if _, err := svc.Grant("note-1", "owner", "owner", "editor", nil); !errors.Is(err, ErrSelfGrant) {
		t.Fatalf("Grant(self) = %v, want ErrSelfGrant", err)
	}
}

func TestGrantRejectsUnknownRole(t *testing.T) {
	svc := NewService(nil)
	if _, err := svc.Grant("note-1", "owner", "collab", "admin", nil); !errors.Is(err, ErrBadRole) {
		t.Fatalf("Grant(admin) = %v, want ErrBadRole", err)
	}
}
