package repositories

import (
	"enlistco_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentRepository interface {
	// Insert stores the receipt unless one with the same intent ID
	// already exists. Returns false when the payment was a replay.
	Insert(payment *models.Payment) (created bool, err error)
	FindByEmployer(email string) ([]models.Payment, error)

	WithTx(tx *gorm.DB) PaymentRepository
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) WithTx(tx *gorm.DB) PaymentRepository {
	return &paymentRepository{db: tx}
}

func (r *paymentRepository) Insert(payment *models.Payment) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "intent_id"}},
		DoNothing: true,
	}).Create(payment)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *paymentRepository) FindByEmployer(email string) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.
		Where("employer_email = ?", email).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}
