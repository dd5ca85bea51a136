package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noteflow/core/internal/middleware"
	"github.com/noteflow/core/internal/modules/ai"
	"github.com/noteflow/core/internal/modules/auth"
	"github.com/noteflow/core/internal/modules/bookmark"
	"github.com/noteflow/core/internal/modules/collab"
	"github.com/noteflow/core/internal/modules/follow"
	"github.com/noteflow/core/internal/modules/note"
	"github.com/noteflow/core/internal/modules/profile"
	"github.com/noteflow/core/internal/modules/tag"
	pkgredis "github.com/noteflow/core/internal/pkg/redis"
	"github.com/noteflow/core/internal/pkg/response"
	"github.com/noteflow/core/internal/pkg/taskqueue"
)

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	api := r.Group("/api/v1")
	api.Use(middleware.OptionalAuth(db))
	api.Use(middleware.RateLimit(rc.Raw()))

	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "pong"})
	})
	api.GET("/health/cron", authMW, func(c *gin.Context) {
		response.OK(c, a.sched.List())
	})

	// Auth & profiles
	auth.NewHandler(auth.NewService(db)).RegisterRoutes(api, authMW)
	profile.NewHandler(profile.NewService(db)).RegisterRoutes(api, authMW)

	// Social graph
	followSvc := follow.NewService(db)
	follow.NewHandler(followSvc).RegisterRoutes(api, authMW)

	// Content
	note.NewHandler(note.NewService(db, followSvc)).RegisterRoutes(api, authMW)
	tag.NewHandler(tag.NewService(db, followSvc)).RegisterRoutes(api, authMW)
	bookmark.NewHandler(bookmark.NewService(db, followSvc)).RegisterRoutes(api, authMW)

	// Collaboration grants
	a.collabSvc = collab.NewService(db)
	collab.NewHandler(a.collabSvc).RegisterRoutes(api, authMW)

	// Generated note metadata
	taskSvc := taskqueue.NewService(rc)
	provider := ai.NewProvider(a.cfg.AI)
	ai.NewHandler(ai.NewService(db, taskSvc, provider, a.logger)).RegisterRoutes(api, authMW)
}
