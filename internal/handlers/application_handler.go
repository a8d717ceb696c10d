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

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
	userRepo           repositories.UserRepository
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService, userRepo repositories.UserRepository) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
		userRepo:           userRepo,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	authed := r.Group("")
	authed.Use(middleware.AuthMiddleware(h.userRepo))
	{
		authed.POST("/applications", h.Apply)
		authed.GET("/applications", h.ListOwn)
		authed.PUT("/applications/:id/offer", h.SendOffer)
		authed.GET("/posts/:id/applications", h.ListByPost)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	seekerEmail, ok := h.RequireUserEmail(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applicationService.Apply(seekerEmail, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) ListByPost(c *gin.Context) {
	if _, ok := h.RequireUserEmail(c); !ok {
		return
	}

	applications, err := h.applicationService.ListByPost(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

// ListOwn returns the caller's applications: the ones they submitted,
// or with ?role=employer the ones against their posts.
func (h *ApplicationHandler) ListOwn(c *gin.Context) {
	email, ok := h.RequireUserEmail(c)
	if !ok {
		return
	}

	var applications []models.Application
	var err error
	if c.Query("role") == "employer" {
		applications, err = h.applicationService.ListByEmployer(email)
	} else {
		applications, err = h.applicationService.ListBySeeker(email)
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

func (h *ApplicationHandler) SendOffer(c *gin.Context) {
	employerEmail, ok := h.RequireUserEmail(c)
	if !ok {
		return
	}

	if err := h.applicationService.SendOffer(employerEmail, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Offer sent"})
}
