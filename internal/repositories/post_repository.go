package repositories

import (
	"errors"

	"enlistco_backend/internal/appErrors"
	"enlistco_backend/internal/models"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *models.JobPost) error
	FindByID(id string) (*models.JobPost, error)

	// FindPublic returns only admin-approved posts; permission == false
	// posts are never exposed to seekers.
	FindPublic() ([]models.JobPost, error)
	FindByEmployer(email string) ([]models.JobPost, error)
	FindPendingApproval() ([]models.JobPost, error)

	UpdateFields(id string, fields map[string]interface{}) error
	Delete(id string) error

	WithTx(tx *gorm.DB) PostRepository
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) WithTx(tx *gorm.DB) PostRepository {
	return &postRepository{db: tx}
}

func (r *postRepository) Create(post *models.JobPost) error {
	return r.db.Create(post).Error
}

func (r *postRepository) FindByID(id string) (*models.JobPost, error) {
	var post models.JobPost
	err := r.db.First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) FindPublic() ([]models.JobPost, error) {
	var posts []models.JobPost
	err := r.db.
		Where("permission = ?", true).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) FindByEmployer(email string) ([]models.JobPost, error) {
	var posts []models.JobPost
	err := r.db.
		Where("employer_email = ?", email).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) FindPendingApproval() ([]models.JobPost, error) {
	var posts []models.JobPost
	err := r.db.
		Where("permission = ? AND publish = ?", false, true).
		Order("created_at ASC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) UpdateFields(id string, fields map[string]interface{}) error {
	result := r.db.Model(&models.JobPost{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrPostNotFound
	}
	return nil
}

func (r *postRepository) Delete(id string) error {
	result := r.db.Delete(&models.JobPost{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrPostNotFound
	}
	return nil
}
