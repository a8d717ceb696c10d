package models

// Payment is an immutable receipt. IntentID is the idempotency key:
// a replayed completion callback inserts nothing and triggers no
// ledger transition.
type Payment struct {
	BaseModel
	EmployerEmail string   `gorm:"not null;index" json:"employerEmail"`
	Plan          PlanKind `gorm:"type:varchar(20);not null" json:"plan"`
	Amount        float64  `json:"amount"`
	IntentID      string   `gorm:"uniqueIndex;not null" json:"intentId"`
}
