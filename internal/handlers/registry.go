package handlers

import (
	"enlistco_backend/internal/repositories"
	"enlistco_backend/internal/services"
	"enlistco_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	User        *UserHandler
	Post        *PostHandler
	Application *ApplicationHandler
	Notice      *NoticeHandler
	Payment     *PaymentHandler
}

func NewAppHandlers(sc *services.ServiceContainer, userRepo repositories.UserRepository, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		User:        NewUserHandler(base, sc.UserService, userRepo),
		Post:        NewPostHandler(base, sc.PostService, userRepo),
		Application: NewApplicationHandler(base, sc.ApplicationService, userRepo),
		Notice:      NewNoticeHandler(base, sc.NoticeService, userRepo),
		Payment:     NewPaymentHandler(base, sc.SubscriptionService, userRepo),
	}
}
