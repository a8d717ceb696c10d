package repositories

import (
	"errors"

	"enlistco_backend/internal/appErrors"
	"enlistco_backend/internal/models"

	"gorm.io/gorm"
)

type NoticeRepository interface {
	Create(notice *models.ModerationNotice) error
	FindByID(id string) (*models.ModerationNotice, error)
	FindByPostID(postID string) (*models.ModerationNotice, error)
	FindAll() ([]models.ModerationNotice, error)
	FindPending() ([]models.ModerationNotice, error)

	UpdateFields(id string, fields map[string]interface{}) error
	UpdateFieldsByPostID(postID string, fields map[string]interface{}) error
	DeleteByPostID(postID string) error

	WithTx(tx *gorm.DB) NoticeRepository
}

type noticeRepository struct {
	db *gorm.DB
}

func NewNoticeRepository(db *gorm.DB) NoticeRepository {
	return &noticeRepository{db: db}
}

func (r *noticeRepository) WithTx(tx *gorm.DB) NoticeRepository {
	return &noticeRepository{db: tx}
}

func (r *noticeRepository) Create(notice *models.ModerationNotice) error {
	return r.db.Create(notice).Error
}

func (r *noticeRepository) FindByID(id string) (*models.ModerationNotice, error) {
	var notice models.ModerationNotice
	err := r.db.First(&notice, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrNoticeNotFound
		}
		return nil, err
	}
	return &notice, nil
}

func (r *noticeRepository) FindByPostID(postID string) (*models.ModerationNotice, error) {
	var notice models.ModerationNotice
	err := r.db.First(&notice, "post_id = ?", postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrNoticeNotFound
		}
		return nil, err
	}
	return &notice, nil
}

func (r *noticeRepository) FindAll() ([]models.ModerationNotice, error) {
	var notices []models.ModerationNotice
	err := r.db.Order("created_at DESC").Find(&notices).Error
	return notices, err
}

func (r *noticeRepository) FindPending() ([]models.ModerationNotice, error) {
	var notices []models.ModerationNotice
	err := r.db.
		Where("notify_admin = ?", true).
		Order("created_at ASC").
		Find(&notices).Error
	return notices, err
}

func (r *noticeRepository) UpdateFields(id string, fields map[string]interface{}) error {
	result := r.db.Model(&models.ModerationNotice{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrNoticeNotFound
	}
	return nil
}

func (r *noticeRepository) UpdateFieldsByPostID(postID string, fields map[string]interface{}) error {
	result := r.db.Model(&models.ModerationNotice{}).
		Where("post_id = ?", postID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrNoticeNotFound
	}
	return nil
}

func (r *noticeRepository) DeleteByPostID(postID string) error {
	return r.db.Delete(&models.ModerationNotice{}, "post_id = ?", postID).Error
}
