package services

import (
	"encoding/json"

	"enlistco_backend/internal/appErrors"
	"enlistco_backend/internal/logger"
	"enlistco_backend/internal/models"
	"enlistco_backend/internal/repositories"
	"enlistco_backend/internal/services/dto"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TxRunner abstracts the store's transaction primitive so the engine
// can be exercised without a live database.
type TxRunner func(fn func(tx *gorm.DB) error) error

// GormTx adapts *gorm.DB to TxRunner.
func GormTx(db *gorm.DB) TxRunner {
	return func(fn func(tx *gorm.DB) error) error {
		return db.Transaction(fn)
	}
}

// AlertQueue accepts approved posts for asynchronous seeker alert
// fan-out. Submission must never block the request path.
type AlertQueue interface {
	Enqueue(post models.JobPost)
}

// ApproveResult distinguishes "the permission flip committed" from
// "a derived write failed afterwards".
type ApproveResult struct {
	Post *models.JobPost

	// MirrorErr is set when the moderation notice mirror failed after
	// the post and ledger writes committed.
	MirrorErr error

	AlertQueued bool
}

func (r *ApproveResult) Ok() bool { return r.MirrorErr == nil }

// EditResult reports a section edit whose notice mirror can fail
// independently of the post update.
type EditResult struct {
	MirrorErr error
}

func (r *EditResult) Ok() bool { return r.MirrorErr == nil }

// DeleteResult reports the best-effort cascade. A failed later step
// does not roll back earlier ones; callers re-issue on partial failure.
type DeleteResult struct {
	PostDeleted     bool
	ApplicationsErr error
	NoticeErr       error
}

func (r *DeleteResult) Ok() bool {
	return r.PostDeleted && r.ApplicationsErr == nil && r.NoticeErr == nil
}

type PostService interface {
	CreatePost(req *dto.CreatePostRequest) (*models.JobPost, error)
	GetPost(id string) (*models.JobPost, error)
	ListPublicPosts() ([]models.JobPost, error)
	ListEmployerPosts(email string) ([]models.JobPost, error)
	ListPendingPosts() ([]models.JobPost, error)

	ApprovePost(adminEmail, postID string, publish bool) (*ApproveResult, error)
	ResubmitEdit(postID string, section models.PostSection, patch *dto.PostPatch) (*EditResult, error)
	SetJobStatus(postID string, status models.JobStatus) error
	DeletePost(postID string) (*DeleteResult, error)
}

type postService struct {
	runTx           TxRunner
	postRepo        repositories.PostRepository
	noticeRepo      repositories.NoticeRepository
	applicationRepo repositories.ApplicationRepository
	userRepo        repositories.UserRepository
	alerts          AlertQueue
}

func NewPostService(
	runTx TxRunner,
	postRepo repositories.PostRepository,
	noticeRepo repositories.NoticeRepository,
	applicationRepo repositories.ApplicationRepository,
	userRepo repositories.UserRepository,
	alerts AlertQueue,
) PostService {
	return &postService{
		runTx:           runTx,
		postRepo:        postRepo,
		noticeRepo:      noticeRepo,
		applicationRepo: applicationRepo,
		userRepo:        userRepo,
		alerts:          alerts,
	}
}

// CreatePost inserts the post and its paired moderation notice in one
// transaction: no orphan notice without a post and vice versa.
func (s *postService) CreatePost(req *dto.CreatePostRequest) (*models.JobPost, error) {
	skillTags, err := marshalList(req.PostOptions.SkillTags)
	if err != nil {
		return nil, err
	}
	questions, err := marshalList(req.ScreeningQuestions)
	if err != nil {
		return nil, err
	}

	post := &models.JobPost{
		JobTitle:           req.EmployerContact.JobTitle,
		Company:            req.EmployerContact.Company,
		Workplace:          req.EmployerContact.Workplace,
		JobLocation:        req.EmployerContact.JobLocation,
		JobDescription:     req.JobDescription,
		Salary:             req.PostOptions.Salary,
		EmpQuantity:        req.PostOptions.EmpQuantity,
		EmpType:            req.PostOptions.EmpType,
		SkillTags:          skillTags,
		ReceiveEmail:       req.PostOptions.ReceiveEmail,
		ApplyType:          req.PostOptions.ApplyType,
		ScreeningQuestions: questions,
		EmployerEmail:      req.Email,
		Permission:         false,
		Publish:            req.Publish,
		PostType:           models.PostTypeFree,
		JobStatus:          models.JobStatusOpen,
	}

	err = s.runTx(func(tx *gorm.DB) error {
		if err := s.postRepo.WithTx(tx).Create(post); err != nil {
			return err
		}

		notice := &models.ModerationNotice{
			PostID:      post.ID,
			NotifyAdmin: true,
			Permission:  false,
			NotifyUsers: datatypes.JSON([]byte("[]")),
		}
		return s.noticeRepo.WithTx(tx).Create(notice)
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) GetPost(id string) (*models.JobPost, error) {
	return s.postRepo.FindByID(id)
}

func (s *postService) ListPublicPosts() ([]models.JobPost, error) {
	return s.postRepo.FindPublic()
}

func (s *postService) ListEmployerPosts(email string) ([]models.JobPost, error) {
	return s.postRepo.FindByEmployer(email)
}

func (s *postService) ListPendingPosts() ([]models.JobPost, error) {
	return s.postRepo.FindPendingApproval()
}

// ApprovePost flips the permission gate. The post update and the
// ledger consumption commit together; the notice mirror and the alert
// fan-out are derived effects that never fail the approval.
func (s *postService) ApprovePost(adminEmail, postID string, publish bool) (*ApproveResult, error) {
	admin, err := s.userRepo.FindByEmail(adminEmail)
	if err != nil {
		return nil, err
	}
	if !admin.Admin {
		return nil, appErrors.ErrAdminOnly
	}

	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}

	owner, err := s.userRepo.FindByEmail(post.EmployerEmail)
	if err != nil {
		return nil, err
	}

	postType, nextState, err := ConsumeOnApproval(owner.Subscription)
	if err != nil {
		return nil, err
	}

	// Re-approval of an edited post must not re-alert seekers.
	firstApproval := !post.PostEdited

	err = s.runTx(func(tx *gorm.DB) error {
		fields := map[string]interface{}{
			"permission": true,
			"publish":    publish,
			"post_type":  postType,
		}
		if err := s.postRepo.WithTx(tx).UpdateFields(postID, fields); err != nil {
			return err
		}

		if nextState != owner.Subscription {
			return s.userRepo.WithTx(tx).UpdateSubscription(owner.Email, nextState)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	post.Permission = true
	post.Publish = publish
	post.PostType = postType

	result := &ApproveResult{Post: post}

	mirror := map[string]interface{}{
		"permission":   true,
		"notify_admin": false,
	}
	if err := s.noticeRepo.UpdateFieldsByPostID(postID, mirror); err != nil {
		logger.Error("approval committed but notice mirror failed", "post_id", postID, "error", err)
		result.MirrorErr = err
	}

	if firstApproval {
		s.alerts.Enqueue(*post)
		result.AlertQueued = true
	}

	return result, nil
}

// ResubmitEdit applies one section's fields, reverts the permission
// gate, and puts the post back in the approval queue. No second notice
// record is created.
func (s *postService) ResubmitEdit(postID string, section models.PostSection, patch *dto.PostPatch) (*EditResult, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		return nil, err
	}

	fields, err := sectionFields(section, patch)
	if err != nil {
		return nil, err
	}

	fields["permission"] = false
	fields["post_edited"] = true

	if err := s.postRepo.UpdateFields(postID, fields); err != nil {
		return nil, err
	}

	result := &EditResult{}

	mirror := map[string]interface{}{
		"notify_admin": true,
		"post_edited":  true,
		"permission":   false,
	}
	if err := s.noticeRepo.UpdateFieldsByPostID(postID, mirror); err != nil {
		logger.Error("edit committed but notice mirror failed", "post_id", postID, "error", err)
		result.MirrorErr = err
	}

	return result, nil
}

// SetJobStatus opens or closes a post. Orthogonal to the permission
// gate: it only stops new applications.
func (s *postService) SetJobStatus(postID string, status models.JobStatus) error {
	return s.postRepo.UpdateFields(postID, map[string]interface{}{
		"job_status": status,
	})
}

// DeletePost cascades post -> applications -> notice. The cascade is
// best-effort: the source-of-truth delete happens first and a failure
// of a later step does not roll it back.
func (s *postService) DeletePost(postID string) (*DeleteResult, error) {
	if err := s.postRepo.Delete(postID); err != nil {
		return nil, err
	}

	result := &DeleteResult{PostDeleted: true}

	if err := s.applicationRepo.DeleteByPostID(postID); err != nil {
		logger.Error("post deleted but application cascade failed", "post_id", postID, "error", err)
		result.ApplicationsErr = err
	}

	if err := s.noticeRepo.DeleteByPostID(postID); err != nil {
		logger.Error("post deleted but notice cascade failed", "post_id", postID, "error", err)
		result.NoticeErr = err
	}

	return result, nil
}

// sectionFields maps one section of the patch onto column updates.
// Fields belonging to other sections are never touched.
func sectionFields(section models.PostSection, patch *dto.PostPatch) (map[string]interface{}, error) {
	fields := make(map[string]interface{})

	switch section {
	case models.SectionContactInfo:
		setIfPresent(fields, "job_title", patch.JobTitle)
		setIfPresent(fields, "company", patch.Company)
		setIfPresent(fields, "workplace", patch.Workplace)
		setIfPresent(fields, "job_location", patch.JobLocation)

	case models.SectionDescription:
		setIfPresent(fields, "job_description", patch.JobDescription)

	case models.SectionApplicationOptions:
		setIfPresent(fields, "receive_email", patch.ReceiveEmail)
		setIfPresent(fields, "apply_type", patch.ApplyType)

	case models.SectionTerms:
		setIfPresent(fields, "salary", patch.Salary)
		setIfPresent(fields, "emp_quantity", patch.EmpQuantity)
		setIfPresent(fields, "emp_type", patch.EmpType)
		if patch.SkillTags != nil {
			tags, err := marshalList(patch.SkillTags)
			if err != nil {
				return nil, err
			}
			fields["skill_tags"] = tags
		}

	case models.SectionScreeningQuestions:
		if patch.ScreeningQuestions != nil {
			questions, err := marshalList(patch.ScreeningQuestions)
			if err != nil {
				return nil, err
			}
			fields["screening_questions"] = questions
		}

	default:
		return nil, appErrors.NewBadRequestError("Unknown post section: " + string(section))
	}

	return fields, nil
}

func setIfPresent(fields map[string]interface{}, column string, value *string) {
	if value != nil {
		fields[column] = *value
	}
}

// marshalList stores nil slices as empty JSON arrays so the stored
// document never has an absent field.
func marshalList(items []string) (datatypes.JSON, error) {
	if items == nil {
		items = []string{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
