package dto

type CreateIntentRequest struct {
	// Amount in major currency units; converted to minor units before
	// the billing call.
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type PaymentCompleteRequest struct {
	Plan     string  `json:"plan" validate:"required,oneof=one_time per_post"`
	IntentID string  `json:"intentId" validate:"required"`
	Amount   float64 `json:"amount"`
}
