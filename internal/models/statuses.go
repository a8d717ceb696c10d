package models

// SubscriptionState is the employer billing ledger value.
//
// Transitions:
//
//	free, paid -> unchanged by post approval
//	per_post   -> (post approval, credit consumed) -> required
//	required   -> blocks approval until a payment completes
//	any        -> (payment, one-time plan) -> paid
//	any        -> (payment, per-post plan) -> per_post
type SubscriptionState string

const (
	SubscriptionFree     SubscriptionState = "free"
	SubscriptionPerPost  SubscriptionState = "per_post"
	SubscriptionRequired SubscriptionState = "required"
	SubscriptionPaid     SubscriptionState = "paid"
)

// PostType tags how a post was paid for at approval time.
type PostType string

const (
	PostTypeFree PostType = "free"
	PostTypePaid PostType = "paid"
)

// JobStatus gates whether a post accepts new applications. It is
// orthogonal to the permission/publish flags.
type JobStatus string

const (
	JobStatusOpen   JobStatus = "Open"
	JobStatusClosed JobStatus = "Closed"
)

// PlanKind selects the ledger transition when a payment completes.
type PlanKind string

const (
	PlanOneTime PlanKind = "one_time"
	PlanPerPost PlanKind = "per_post"
)
