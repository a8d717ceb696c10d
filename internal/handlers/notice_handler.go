package handlers

import (
	"net/http"

	"enlistco_backend/internal/middleware"
	"enlistco_backend/internal/models"
	"enlistco_backend/internal/repositories"
	"enlistco_backend/internal/services"
	"enlistco_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NoticeHandler struct {
	*BaseHandler
	noticeService services.NoticeService
	userRepo      repositories.UserRepository
}

func NewNoticeHandler(base *BaseHandler, noticeService services.NoticeService, userRepo repositories.UserRepository) *NoticeHandler {
	return &NoticeHandler{
		BaseHandler:   base,
		noticeService: noticeService,
		userRepo:      userRepo,
	}
}

func (h *NoticeHandler) RegisterRoutes(r *gin.RouterGroup) {
	authed := r.Group("")
	authed.Use(middleware.AuthMiddleware(h.userRepo))
	{
		authed.GET("/posts/:id/notice", h.GetByPost)
		authed.PUT("/notices/:id/seeker-seen", h.MarkSeekerSeen)
	}

	admin := r.Group("")
	admin.Use(middleware.AuthMiddleware(h.userRepo), middleware.AdminMiddleware())
	{
		admin.GET("/notices", h.ListNotices)
		admin.PUT("/notices/:id/admin-seen", h.MarkAdminSeen)
	}
}

// ListNotices returns the moderation feed; ?pending=true restricts it
// to unacknowledged entries.
func (h *NoticeHandler) ListNotices(c *gin.Context) {
	var notices []models.ModerationNotice
	var err error
	if c.Query("pending") == "true" {
		notices, err = h.noticeService.ListPending()
	} else {
		notices, err = h.noticeService.ListNotices()
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notices)
}

func (h *NoticeHandler) GetByPost(c *gin.Context) {
	notice, err := h.noticeService.GetByPost(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notice)
}

func (h *NoticeHandler) MarkAdminSeen(c *gin.Context) {
	var req dto.AdminSeenRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.noticeService.MarkAdminSeen(c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notice updated"})
}

func (h *NoticeHandler) MarkSeekerSeen(c *gin.Context) {
	email, ok := h.RequireUserEmail(c)
	if !ok {
		return
	}

	if err := h.noticeService.MarkSeekerSeen(c.Param("id"), email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Acknowledged"})
}
