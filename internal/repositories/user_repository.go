package repositories

import (
	"errors"

	"enlistco_backend/internal/appErrors"
	"enlistco_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	// Upsert writes the user keyed by email; the write succeeds whether
	// or not a prior record existed.
	Upsert(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindByID(id string) (*models.User, error)
	FindAll() ([]models.User, error)

	// FindSeekersByTitle matches seeker profiles whose stored title
	// equals title case-insensitively.
	FindSeekersByTitle(title string) ([]models.User, error)

	UpdateSubscription(email string, state models.SubscriptionState) error
	UpdateFields(email string, fields map[string]interface{}) error
	Delete(email string) error

	WithTx(tx *gorm.DB) UserRepository
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) WithTx(tx *gorm.DB) UserRepository {
	return &userRepository{db: tx}
}

func (r *userRepository) Upsert(user *models.User) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "seeker", "employer", "updated_at",
		}),
	}).Create(user).Error
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *userRepository) FindSeekersByTitle(title string) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Where("seeker = ?", true).
		Where("LOWER(seeker_title) = LOWER(?)", title).
		Find(&users).Error
	return users, err
}

func (r *userRepository) UpdateSubscription(email string, state models.SubscriptionState) error {
	result := r.db.Model(&models.User{}).
		Where("email = ?", email).
		Update("subscription", state)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) UpdateFields(email string, fields map[string]interface{}) error {
	result := r.db.Model(&models.User{}).
		Where("email = ?", email).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) Delete(email string) error {
	result := r.db.Delete(&models.User{}, "email = ?", email)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}
