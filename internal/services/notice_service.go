package services

import (
	"encoding/json"
	"fmt"

	"enlistco_backend/internal/models"
	"enlistco_backend/internal/repositories"
	"enlistco_backend/internal/services/dto"

	"gorm.io/datatypes"
)

// NoticeService is the moderation feed: it mirrors the lifecycle
// engine's transitions and records actor acknowledgments.
type NoticeService interface {
	ListNotices() ([]models.ModerationNotice, error)
	ListPending() ([]models.ModerationNotice, error)
	GetByPost(postID string) (*models.ModerationNotice, error)

	// MarkAdminSeen overwrites whichever fields the request supplies.
	MarkAdminSeen(noticeID string, req *dto.AdminSeenRequest) error

	// MarkSeekerSeen appends the seeker to notifyUsers. Appends are
	// deduplicated: acknowledging twice is a no-op.
	MarkSeekerSeen(noticeID, seekerEmail string) error
}

type noticeService struct {
	noticeRepo repositories.NoticeRepository
}

func NewNoticeService(noticeRepo repositories.NoticeRepository) NoticeService {
	return &noticeService{noticeRepo: noticeRepo}
}

func (s *noticeService) ListNotices() ([]models.ModerationNotice, error) {
	return s.noticeRepo.FindAll()
}

func (s *noticeService) ListPending() ([]models.ModerationNotice, error) {
	return s.noticeRepo.FindPending()
}

func (s *noticeService) GetByPost(postID string) (*models.ModerationNotice, error) {
	return s.noticeRepo.FindByPostID(postID)
}

func (s *noticeService) MarkAdminSeen(noticeID string, req *dto.AdminSeenRequest) error {
	fields := make(map[string]interface{})
	if req.NotifyAdmin != nil {
		fields["notify_admin"] = *req.NotifyAdmin
	}
	if req.Permission != nil {
		fields["permission"] = *req.Permission
	}
	if req.PostEdited != nil {
		fields["post_edited"] = *req.PostEdited
	}

	if len(fields) == 0 {
		return nil
	}

	return s.noticeRepo.UpdateFields(noticeID, fields)
}

func (s *noticeService) MarkSeekerSeen(noticeID, seekerEmail string) error {
	notice, err := s.noticeRepo.FindByID(noticeID)
	if err != nil {
		return err
	}

	var seen []string
	if len(notice.NotifyUsers) > 0 {
		if err := json.Unmarshal(notice.NotifyUsers, &seen); err != nil {
			return fmt.Errorf("corrupt notifyUsers list on notice %s: %w", noticeID, err)
		}
	}

	for _, existing := range seen {
		if existing == seekerEmail {
			return nil
		}
	}

	seen = append(seen, seekerEmail)
	raw, err := json.Marshal(seen)
	if err != nil {
		return err
	}

	return s.noticeRepo.UpdateFields(noticeID, map[string]interface{}{
		"notify_users": datatypes.JSON(raw),
	})
}
