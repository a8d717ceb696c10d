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

type PaymentHandler struct {
	*BaseHandler
	subscriptionService services.SubscriptionService
	userRepo            repositories.UserRepository
}

func NewPaymentHandler(base *BaseHandler, subscriptionService services.SubscriptionService, userRepo repositories.UserRepository) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:         base,
		subscriptionService: subscriptionService,
		userRepo:            userRepo,
	}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup) {
	payments := r.Group("/payments")
	payments.Use(middleware.AuthMiddleware(h.userRepo))
	{
		payments.POST("/intent", h.CreateIntent)
		payments.POST("/complete", h.CompletePayment)
		payments.GET("", h.PaymentHistory)
		payments.GET("/ledger", h.GetLedger)
	}
}

func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	if _, ok := h.RequireUserEmail(c); !ok {
		return
	}

	var req dto.CreateIntentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	clientSecret, err := h.subscriptionService.CreatePaymentIntent(req.Amount)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateIntentResponse{ClientSecret: clientSecret})
}

func (h *PaymentHandler) CompletePayment(c *gin.Context) {
	email, ok := h.RequireUserEmail(c)
	if !ok {
		return
	}

	var req dto.PaymentCompleteRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	err := h.subscriptionService.RecordPayment(email, models.PlanKind(req.Plan), req.Amount, req.IntentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment recorded"})
}

func (h *PaymentHandler) GetLedger(c *gin.Context) {
	email, ok := h.RequireUserEmail(c)
	if !ok {
		return
	}

	state, err := h.subscriptionService.GetLedger(email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscription": state})
}

func (h *PaymentHandler) PaymentHistory(c *gin.Context) {
	email, ok := h.RequireUserEmail(c)
	if !ok {
		return
	}

	payments, err := h.subscriptionService.PaymentHistory(email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}
