package tag

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/noteflow/core/internal/middleware"
	"github.com/noteflow/core/internal/pkg/pagination"
	"github.com/noteflow/core/internal/pkg/response"
	"gorm.io/gorm"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	tags := rg.Group("/tags")

	tags.GET("", h.list)
	tags.GET("/:slug/notes", h.notes)

	tags.POST("", authMW, h.create)
}

type createTagDTO struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) create(c *gin.Context) {
	var dto createTagDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	tag, err := h.svc.GetOrCreate(dto.Name)
	if err != nil {
		if errors.Is(err, ErrEmptyName) {
			response.UnprocessableEntity(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, tag)
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	tags, pag, err := h.svc.List(q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, tags, pag)
}

func (h *Handler) notes(c *gin.Context) {
	q := pagination.FromContext(c)
	notes, pag, err := h.svc.NotesBySlug(c.Param("slug"), middleware.CurrentUserID(c), q)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMsg(c, "tag not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Paged(c, notes, pag)
}
