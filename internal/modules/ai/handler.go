package ai

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/noteflow/core/internal/middleware"
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
	aiGroup := rg.Group("/ai", authMW)

	aiGroup.GET("/notes/:noteId", h.get)
	aiGroup.POST("/notes/:noteId/generate", h.generate)
	aiGroup.GET("/tasks/:id", h.task)
}

func (h *Handler) get(c *gin.Context) {
	rec, err := h.svc.Get(c.Param("noteId"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if rec == nil {
		response.NotFoundMsg(c, "no generated metadata for this note")
		return
	}
	response.OK(c, rec)
}

func (h *Handler) generate(c *gin.Context) {
	task, err := h.svc.Generate(c.Request.Context(), c.Param("noteId"), middleware.CurrentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.NotFoundMsg(c, "note not found")
		case errors.Is(err, ErrNotOwner):
			response.Forbidden(c)
		case errors.Is(err, ErrNoContent):
			response.UnprocessableEntity(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, task)
}

func (h *Handler) task(c *gin.Context) {
	task, err := h.svc.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if task == nil {
		response.NotFoundMsg(c, "task not found")
		return
	}
	response.OK(c, task)
}
