// Package visibility decides whether a viewer may see a note.
//
// The friends tier is deliberately asymmetric: a viewer sees a friends-only
// note iff the viewer follows the note's owner. It is not mutual friendship.
package visibility

import (
	"github.com/noteflow/core/internal/models"
	"gorm.io/gorm"
)

// FollowSet is the set of user IDs a viewer follows.
type FollowSet map[string]struct{}

// NewFollowSet builds a FollowSet from a list of followed user IDs.
func NewFollowSet(ids []string) FollowSet {
	set := make(FollowSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether the set includes the given user ID.
func (s FollowSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Visible reports whether the viewer may see the note. An empty viewerID means
// anonymous: only public notes match. Soft-delete filtering is the caller's
// concern (standard queries exclude deleted rows already).
func Visible(note *models.NoteModel, viewerID string, follows FollowSet) bool {
	if note == nil {
		return false
	}
	if note.Visibility == models.VisibilityPublic {
		return true
	}
	if viewerID == "" {
		return false
	}
	if note.UserID == viewerID {
		return true
	}
	if note.Visibility == models.VisibilityFriends {
		return follows.Contains(note.UserID)
	}
	return false
}

// Scope returns a composable GORM scope reproducing Visible as a WHERE clause:
//
//	visibility = 'public'
//	OR (visibility = 'friends' AND user_id IN (<followed>))
//	OR user_id = <viewer>
//
// so it can combine with pagination and eager loading.
func Scope(viewerID string, followedIDs []string) func(*gorm.DB) *gorm.DB {
	return scopeOn("visibility", "user_id", viewerID, followedIDs)
}

// ScopeTable is Scope with the note columns qualified by table, for joined
// queries where a bare user_id would be ambiguous.
func ScopeTable(table, viewerID string, followedIDs []string) func(*gorm.DB) *gorm.DB {
	return scopeOn(table+".visibility", table+".user_id", viewerID, followedIDs)
}

func scopeOn(visCol, ownerCol, viewerID string, followedIDs []string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if viewerID == "" {
			return db.Where(visCol+" = ?", models.VisibilityPublic)
		}
		if len(followedIDs) == 0 {
			return db.Where(visCol+" = ? OR "+ownerCol+" = ?", models.VisibilityPublic, viewerID)
		}
		return db.Where(
			visCol+" = ? OR ("+visCol+" = ? AND "+ownerCol+" IN ?) OR "+ownerCol+" = ?",
			models.VisibilityPublic, models.VisibilityFriends, followedIDs, viewerID,
		)
	}
}
