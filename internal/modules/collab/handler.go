package collab

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/noteflow/core/internal/middleware"
	"github.com/noteflow/core/internal/models"
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
	collabs := rg.Group("/collaborations", authMW)

	collabs.POST("", h.grant)
	collabs.GET("/mine", h.listMine)
	collabs.GET("/note/:noteId", h.listActive)
	collabs.POST("/:id/heartbeat", h.heartbeat)
	collabs.DELETE("/:id", h.end)
}

func (h *Handler) grant(c *gin.Context) {
	var dto GrantDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.Role == "" {
		dto.Role = models.CollabRoleEditor
	}

	actor := middleware.CurrentUserID(c)
	grant, err := h.svc.Grant(dto.NoteID, actor, dto.CollaboratorID, dto.Role, dto.ExpiresAt)
	if err != nil {
		switch {
		case errors.Is(err, ErrSelfGrant), errors.Is(err, ErrBadRole):
			response.UnprocessableEntity(c, err.Error())
		case errors.Is(err, ErrNotOwner):
			response.Forbidden(c)
		case errors.Is(err, ErrNotFound):
			response.NotFoundMsg(c, "note not found")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, grant)
}

func (h *Handler) heartbeat(c *gin.Context) {
	var dto HeartbeatDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	actor := middleware.CurrentUserID(c)
	if err := h.svc.Heartbeat(c.Param("id"), actor, dto.Page); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFoundMsg(c, "no active collaboration")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) end(c *gin.Context) {
	actor := middleware.CurrentUserID(c)
	if err := h.svc.End(c.Param("id"), actor); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.NotFoundMsg(c, "collaboration not found")
		case errors.Is(err, ErrNotOwner):
			response.Forbidden(c)
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.NoContent(c)
}

func (h *Handler) listActive(c *gin.Context) {
	q := pagination.FromContext(c)
	grants, pag, err := h.svc.ListActive(c.Param("noteId"), q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, grants, pag)
}

func (h *Handler) listMine(c *gin.Context) {
	q := pagination.FromContext(c)
	grants, pag, err := h.svc.ListForUser(middleware.CurrentUserID(c), q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, grants, pag)
}
