package handlers

import (
	"net/http"

	"enlistco_backend/internal/appErrors"
	"enlistco_backend/internal/middleware"
	"enlistco_backend/internal/models"
	"enlistco_backend/internal/repositories"
	"enlistco_backend/internal/services"
	"enlistco_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	*BaseHandler
	postService services.PostService
	userRepo    repositories.UserRepository
}

func NewPostHandler(base *BaseHandler, postService services.PostService, userRepo repositories.UserRepository) *PostHandler {
	return &PostHandler{
		BaseHandler: base,
		postService: postService,
		userRepo:    userRepo,
	}
}

func (h *PostHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public listing is permission-gated by the service.
	r.GET("/posts", h.ListPublicPosts)
	r.GET("/posts/:id", h.GetPost)

	authed := r.Group("")
	authed.Use(middleware.AuthMiddleware(h.userRepo))
	{
		authed.POST("/posts", h.CreatePost)
		authed.PUT("/posts/:id", h.ResubmitEdit)
		authed.PUT("/posts/:id/status", h.SetJobStatus)
		authed.DELETE("/posts/:id", h.DeletePost)
		authed.GET("/employers/:email/posts", h.ListEmployerPosts)
	}

	admin := r.Group("")
	admin.Use(middleware.AuthMiddleware(h.userRepo), middleware.AdminMiddleware())
	{
		admin.PUT("/posts/:id/permission", h.ApprovePost)
		// The moderation queue lives outside /posts so the static
		// segment cannot collide with the :id wildcard.
		admin.GET("/moderation/posts", h.ListPendingPosts)
	}
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	email, ok := h.RequireUserEmail(c)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	req.Email = email
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	// The owner is always the authenticated employer, whatever the
	// body claims.
	req.Email = email

	post, err := h.postService.CreatePost(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postService.GetPost(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) ListPublicPosts(c *gin.Context) {
	posts, err := h.postService.ListPublicPosts()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) ListEmployerPosts(c *gin.Context) {
	if _, ok := h.RequireUserEmail(c); !ok {
		return
	}

	posts, err := h.postService.ListEmployerPosts(c.Param("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) ListPendingPosts(c *gin.Context) {
	posts, err := h.postService.ListPendingPosts()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) ApprovePost(c *gin.Context) {
	adminEmail, ok := h.RequireUserEmail(c)
	if !ok {
		return
	}

	var req dto.ApprovePostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.postService.ApprovePost(adminEmail, c.Param("id"), req.Publish)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response := gin.H{
		"post":        result.Post,
		"alertQueued": result.AlertQueued,
	}
	if result.MirrorErr != nil {
		// The approval committed; only the derived notice mirror
		// failed. Callers can re-issue the mirror via the notices API.
		response["mirrorError"] = result.MirrorErr.Error()
	}

	c.JSON(http.StatusOK, response)
}

func (h *PostHandler) ResubmitEdit(c *gin.Context) {
	if _, ok := h.RequireUserEmail(c); !ok {
		return
	}

	section, ok := sectionFromQuery(c)
	if !ok {
		appErrors.HandleError(c, appErrors.NewBadRequestError("No post section selected"))
		return
	}

	var patch dto.PostPatch
	if !h.BindAndValidateJSON(c, &patch) {
		return
	}

	result, err := h.postService.ResubmitEdit(c.Param("id"), section, &patch)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response := gin.H{"message": "Post updated, pending re-approval"}
	if result.MirrorErr != nil {
		response["mirrorError"] = result.MirrorErr.Error()
	}

	c.JSON(http.StatusOK, response)
}

func (h *PostHandler) SetJobStatus(c *gin.Context) {
	if _, ok := h.RequireUserEmail(c); !ok {
		return
	}

	var req dto.JobStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.postService.SetJobStatus(c.Param("id"), models.JobStatus(req.JobStatus)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job status updated"})
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	if _, ok := h.RequireUserEmail(c); !ok {
		return
	}

	result, err := h.postService.DeletePost(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	response := gin.H{"message": "Post deleted"}
	if !result.Ok() {
		// Best-effort cascade: report what failed so the caller can
		// re-issue the delete.
		response["message"] = "Post deleted, cascade incomplete"
		if result.ApplicationsErr != nil {
			response["applicationsError"] = result.ApplicationsErr.Error()
		}
		if result.NoticeErr != nil {
			response["noticeError"] = result.NoticeErr.Error()
		}
	}

	c.JSON(http.StatusOK, response)
}

// sectionFromQuery resolves the edit section from the legacy query
// flags the client sends.
func sectionFromQuery(c *gin.Context) (models.PostSection, bool) {
	switch {
	case c.Query("postInfo") == "true":
		return models.SectionContactInfo, true
	case c.Query("description") == "true":
		return models.SectionDescription, true
	case c.Query("applicationOpts") == "true":
		return models.SectionApplicationOptions, true
	case c.Query("terms") == "true":
		return models.SectionTerms, true
	case c.Query("addQuestions") == "true":
		return models.SectionScreeningQuestions, true
	}
	return "", false
}
