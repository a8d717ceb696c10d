package services

// ServiceContainer bundles all services for handler wiring.
type ServiceContainer struct {
	UserService         UserService
	PostService         PostService
	ApplicationService  ApplicationService
	NoticeService       NoticeService
	SubscriptionService SubscriptionService
	AlertService        AlertService
}
