package repositories

import (
	"errors"

	"enlistco_backend/internal/appErrors"
	"enlistco_backend/internal/models"

	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindByPost(postID string) ([]models.Application, error)
	FindBySeeker(email string) ([]models.Application, error)
	FindByEmployer(email string) ([]models.Application, error)

	SetOfferLetter(id string) error
	DeleteByPostID(postID string) error

	WithTx(tx *gorm.DB) ApplicationRepository
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) WithTx(tx *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: tx}
}

func (r *applicationRepository) Create(application *models.Application) error {
	return r.db.Create(application).Error
}

func (r *applicationRepository) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) FindByPost(postID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *applicationRepository) FindBySeeker(email string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Where("seeker_email = ?", email).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *applicationRepository) FindByEmployer(email string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Where("employer_email = ?", email).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *applicationRepository) SetOfferLetter(id string) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Update("offer_letter", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrApplicationNotFound
	}
	return nil
}

func (r *applicationRepository) DeleteByPostID(postID string) error {
	return r.db.Delete(&models.Application{}, "post_id = ?", postID).Error
}
