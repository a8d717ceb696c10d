package services

import (
	"enlistco_backend/internal/appErrors"
	"enlistco_backend/internal/billing"
	"enlistco_backend/internal/logger"
	"enlistco_backend/internal/models"
	"enlistco_backend/internal/repositories"
)

// ConsumeOnApproval is the ledger transition applied when an admin
// approves a post. It returns the postType tag for the approved post
// and the employer's next ledger state.
//
//	free     -> tag free, state unchanged
//	paid     -> tag paid, state unchanged
//	per_post -> tag paid, credit consumed, state becomes required
//	required -> approval blocked until a payment clears
func ConsumeOnApproval(state models.SubscriptionState) (models.PostType, models.SubscriptionState, error) {
	switch state {
	case models.SubscriptionPaid:
		return models.PostTypePaid, state, nil
	case models.SubscriptionPerPost:
		return models.PostTypePaid, models.SubscriptionRequired, nil
	case models.SubscriptionRequired:
		return "", state, appErrors.ErrPaymentRequired
	default:
		return models.PostTypeFree, models.SubscriptionFree, nil
	}
}

// NextOnPayment is the ledger transition applied when a payment
// completes. This is the only transition that leaves the required
// state.
func NextOnPayment(plan models.PlanKind) models.SubscriptionState {
	if plan == models.PlanPerPost {
		return models.SubscriptionPerPost
	}
	return models.SubscriptionPaid
}

type SubscriptionService interface {
	CreatePaymentIntent(amount float64) (string, error)

	// RecordPayment stores the receipt and moves the employer's ledger.
	// Replayed callbacks (same intent ID) are no-ops.
	RecordPayment(employerEmail string, plan models.PlanKind, amount float64, intentID string) error

	GetLedger(email string) (models.SubscriptionState, error)
	PaymentHistory(email string) ([]models.Payment, error)
}

type subscriptionService struct {
	paymentRepo repositories.PaymentRepository
	userRepo    repositories.UserRepository
	billing     billing.Client
}

func NewSubscriptionService(
	paymentRepo repositories.PaymentRepository,
	userRepo repositories.UserRepository,
	billingClient billing.Client,
) SubscriptionService {
	return &subscriptionService{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		billing:     billingClient,
	}
}

func (s *subscriptionService) CreatePaymentIntent(amount float64) (string, error) {
	secret, err := s.billing.CreateIntent(amount)
	if err != nil {
		return "", appErrors.ExternalServiceError(err, "billing")
	}
	return secret, nil
}

func (s *subscriptionService) RecordPayment(employerEmail string, plan models.PlanKind, amount float64, intentID string) error {
	if _, err := s.userRepo.FindByEmail(employerEmail); err != nil {
		return err
	}

	payment := &models.Payment{
		EmployerEmail: employerEmail,
		Plan:          plan,
		Amount:        amount,
		IntentID:      intentID,
	}

	created, err := s.paymentRepo.Insert(payment)
	if err != nil {
		return err
	}
	if !created {
		// Replayed callback: the receipt exists and the ledger has
		// already moved.
		logger.Warn("duplicate payment callback ignored", "intent_id", intentID, "employer", employerEmail)
		return nil
	}

	return s.userRepo.UpdateSubscription(employerEmail, NextOnPayment(plan))
}

func (s *subscriptionService) GetLedger(email string) (models.SubscriptionState, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", err
	}
	return user.Subscription, nil
}

func (s *subscriptionService) PaymentHistory(email string) ([]models.Payment, error) {
	return s.paymentRepo.FindByEmployer(email)
}
