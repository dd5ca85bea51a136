package follow

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/noteflow/core/internal/middleware"
	"github.com/noteflow/core/internal/pkg/pagination"
	"github.com/noteflow/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	users := rg.Group("/users")

	users.GET("/:id/followers", h.followers)
	users.GET("/:id/following", h.following)

	authed := users.Group("", authMW)
	authed.POST("/:id/follow", h.follow)
	authed.DELETE("/:id/follow", h.unfollow)
}

func (h *Handler) follow(c *gin.Context) {
	actor := middleware.CurrentUserID(c)
	if err := h.svc.Follow(actor, c.Param("id")); err != nil {
		if errors.Is(err, ErrSelfFollow) {
			response.UnprocessableEntity(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) unfollow(c *gin.Context) {
	actor := middleware.CurrentUserID(c)
	if err := h.svc.Unfollow(actor, c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) followers(c *gin.Context) {
	q := pagination.FromContext(c)
	profiles, pag, err := h.svc.Followers(c.Param("id"), q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, profiles, pag)
}

func (h *Handler) following(c *gin.Context) {
	q := pagination.FromContext(c)
	profiles, pag, err := h.svc.Following(c.Param("id"), q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, profiles, pag)
}
