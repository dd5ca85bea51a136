package collab

import (
	"time"

	"github.com/noteflow/core/internal/models"
	"gorm.io/gorm"
)

// CurrentlyActive reports whether a grant confers access at the given instant.
// Expiry is lazy: an expired grant keeps status=active in storage until it is
// explicitly ended, so status must never be trusted alone.
func CurrentlyActive(g *models.CollaborationModel, now time.Time) bool {
	if g == nil || g.Status != models.CollabStatusActive {
		return false
	}
	return g.ExpiresAt == nil || g.ExpiresAt.After(now)
}

// Active is the query-side twin of CurrentlyActive, usable as a composable
// scope so it combines with pagination and preloads.
func Active(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ? AND (expires_at IS NULL OR expires_at > ?)",
			models.CollabStatusActive, now)
	}
}

// canEnd reports whether the actor may end the grant: the owner or the
// collaborator themselves.
func canEnd(g *models.CollaborationModel, actorID string) bool {
	return actorID != "" && (actorID == g.OwnerID || actorID == g.CollaboratorID)
}
