package profile

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/noteflow/core/internal/middleware"
	"github.com/noteflow/core/internal/models"
	"github.com/noteflow/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	profiles := rg.Group("/profiles")

	profiles.GET("/:username", h.getByUsername)

	me := rg.Group("/profile", authMW)
	me.GET("", h.getOwn)
	me.PATCH("", h.update)
	me.POST("/recount", h.recount)
}

func (h *Handler) getByUsername(c *gin.Context) {
	p, err := h.svc.GetByUsername(c.Param("username"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if p == nil {
		response.NotFoundMsg(c, "profile not found")
		return
	}
	// Private profiles are only shown to their owner.
	if p.Visibility == models.ProfilePrivate && p.UserID != middleware.CurrentUserID(c) {
		response.Forbidden(c)
		return
	}
	response.OK(c, p)
}

func (h *Handler) getOwn(c *gin.Context) {
	p, err := h.svc.GetByUserID(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if p == nil {
		response.NotFoundMsg(c, "profile not created yet")
		return
	}
	response.OK(c, p)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateProfileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.svc.Upsert(middleware.CurrentUserID(c), &dto)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, p)
}

func (h *Handler) recount(c *gin.Context) {
	p, err := h.svc.RecountFor(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if p == nil {
		response.NotFoundMsg(c, "profile not created yet")
		return
	}
	response.OK(c, p)
}
