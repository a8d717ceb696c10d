package handlers

import (
	"net/http"

	"enlistco_backend/internal/middleware"
	"enlistco_backend/internal/repositories"
	"enlistco_backend/internal/services"
	"enlistco_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
	userRepo    repositories.UserRepository
}

func NewUserHandler(base *BaseHandler, userService services.UserService, userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
		userRepo:    userRepo,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Sign-in is the upsert itself, so it stays outside the auth group.
	r.PUT("/users/:email", h.UpsertUser)
	r.GET("/admin/:email", h.CheckAdmin)
	r.POST("/contact", h.ContactUs)

	authed := r.Group("")
	authed.Use(middleware.AuthMiddleware(h.userRepo))
	{
		authed.GET("/users/:email", h.GetUser)
		authed.PUT("/seekers/:email", h.UpdateSeekerProfile)
	}

	admin := r.Group("")
	admin.Use(middleware.AuthMiddleware(h.userRepo), middleware.AdminMiddleware())
	{
		admin.GET("/users", h.ListUsers)
		admin.DELETE("/users/:email", h.DeleteUser)
	}
}

func (h *UserHandler) UpsertUser(c *gin.Context) {
	var req dto.UpsertUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	token, err := h.userService.UpsertUser(c.Param("email"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UpsertUserResponse{Token: token})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Param("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.GetUsers()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Param("email")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// CheckAdmin lets the client decide whether to render the moderation
// UI. Unknown emails are simply not admins.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	isAdmin, err := h.userService.IsAdmin(c.Param("email"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

func (h *UserHandler) UpdateSeekerProfile(c *gin.Context) {
	email, ok := h.RequireUserEmail(c)
	if !ok {
		return
	}
	if email != c.Param("email") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot edit another user's profile"})
		return
	}

	var req dto.SeekerProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.userService.UpdateSeekerProfile(email, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

func (h *UserHandler) ContactUs(c *gin.Context) {
	var req dto.ContactUsRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.userService.ContactUs(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent"})
}
