package bookmark

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
	bookmarks := rg.Group("/bookmarks", authMW)

	bookmarks.GET("", h.list)
	bookmarks.POST("/:noteId", h.toggle)
}

func (h *Handler) toggle(c *gin.Context) {
	bookmarked, err := h.svc.Toggle(middleware.CurrentUserID(c), c.Param("noteId"))
	if err != nil {
		if errors.Is(err, ErrNotVisible) {
			response.NotFoundMsg(c, "note not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"bookmarked": bookmarked})
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	bookmarks, pag, err := h.svc.List(middleware.CurrentUserID(c), q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, bookmarks, pag)
}
