package note

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/noteflow/core/internal/middleware"
	"github.com/noteflow/core/internal/pkg/markdown"
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
	notes := rg.Group("/notes")

	notes.GET("", h.list)
	notes.GET("/user/:id", h.listByUser)
	notes.GET("/:id", h.getByID)
	notes.GET("/:id/render", h.render)
	notes.POST("/:id/download", h.download)

	authed := notes.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.PATCH("/:id", h.update)
	authed.DELETE("/:id", h.delete)
	authed.POST("/:id/rate", h.rate)
	authed.PUT("/:id/tags/:tagId", h.attachTag)
	authed.DELETE("/:id/tags/:tagId", h.detachTag)
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	notes, pag, err := h.svc.List(middleware.CurrentUserID(c), q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	items := make([]noteResponse, len(notes))
	for i := range notes {
		items[i] = toResponse(&notes[i], "")
	}
	response.Paged(c, items, pag)
}

func (h *Handler) listByUser(c *gin.Context) {
	q := pagination.FromContext(c)
	notes, pag, err := h.svc.ListByUser(c.Param("id"), middleware.CurrentUserID(c), q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	items := make([]noteResponse, len(notes))
	for i := range notes {
		items[i] = toResponse(&notes[i], "")
	}
	response.Paged(c, items, pag)
}

func (h *Handler) getByID(c *gin.Context) {
	n, err := h.svc.GetByID(c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if n == nil {
		response.NotFoundMsg(c, "note not found")
		return
	}
	response.OK(c, toResponse(n, ""))
}

func (h *Handler) render(c *gin.Context) {
	n, err := h.svc.GetByID(c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if n == nil {
		response.NotFoundMsg(c, "note not found")
		return
	}
	html, err := markdown.Render(n.Content)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, toResponse(n, html))
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateNoteDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	n, err := h.svc.Create(middleware.CurrentUserID(c), &dto)
	if err != nil {
		if errors.Is(err, ErrBadVisibility) {
			response.UnprocessableEntity(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, toResponse(n, ""))
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateNoteDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	n, err := h.svc.Update(c.Param("id"), middleware.CurrentUserID(c), &dto)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if n == nil {
		response.NotFoundMsg(c, "note not found")
		return
	}
	response.OK(c, toResponse(n, ""))
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id"), middleware.CurrentUserID(c)); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) rate(c *gin.Context) {
	var dto RateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.Rate(c.Param("id"), middleware.CurrentUserID(c), dto.Rating); err != nil {
		if errors.Is(err, ErrBadRating) {
			response.UnprocessableEntity(c, err.Error())
			return
		}
		h.writeServiceError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) download(c *gin.Context) {
	if err := h.svc.RegisterDownload(c.Param("id"), middleware.CurrentUserID(c)); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) attachTag(c *gin.Context) {
	if err := h.svc.AttachTag(c.Param("id"), middleware.CurrentUserID(c), c.Param("tagId")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) detachTag(c *gin.Context) {
	if err := h.svc.DetachTag(c.Param("id"), middleware.CurrentUserID(c), c.Param("tagId")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotOwner):
		response.Forbidden(c)
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.NotFoundMsg(c, "note not found")
	case errors.Is(err, ErrBadVisibility):
		response.UnprocessableEntity(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
