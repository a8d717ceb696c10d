package services

import (
	"enlistco_backend/internal/appErrors"
	"enlistco_backend/internal/email"
	"enlistco_backend/internal/logger"
	"enlistco_backend/internal/models"
	"enlistco_backend/internal/repositories"
	"enlistco_backend/internal/services/dto"
)

type ApplicationService interface {
	// Apply creates an application against a published, open post.
	Apply(seekerEmail string, req *dto.ApplyRequest) (*models.Application, error)

	// SendOffer sets the offer flag exactly once and emails the seeker.
	// A second call is a conflict; the flag never transitions back.
	SendOffer(employerEmail, applicationID string) error

	ListByPost(postID string) ([]models.Application, error)
	ListBySeeker(email string) ([]models.Application, error)
	ListByEmployer(email string) ([]models.Application, error)
}

type applicationService struct {
	applicationRepo repositories.ApplicationRepository
	postRepo        repositories.PostRepository
	userRepo        repositories.UserRepository
	notifier        email.Provider
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	notifier email.Provider,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		postRepo:        postRepo,
		userRepo:        userRepo,
		notifier:        notifier,
	}
}

func (s *applicationService) Apply(seekerEmail string, req *dto.ApplyRequest) (*models.Application, error) {
	post, err := s.postRepo.FindByID(req.PostID)
	if err != nil {
		return nil, err
	}

	// Unapproved posts are invisible to seekers.
	if !post.Permission {
		return nil, appErrors.ErrPostNotFound
	}
	if post.JobStatus == models.JobStatusClosed {
		return nil, appErrors.NewConflictError("Job post is closed")
	}

	application := &models.Application{
		PostID:        post.ID,
		SeekerEmail:   seekerEmail,
		EmployerEmail: post.EmployerEmail,
		CoverLetter:   req.CoverLetter,
	}

	if err := s.applicationRepo.Create(application); err != nil {
		return nil, err
	}

	// Derived effect: forward the cover letter if the employer opted
	// into receiving applications by email. Delivery failure never
	// fails the application.
	if post.ReceiveEmail != "" && req.CoverLetter != "" {
		go func() {
			err := s.notifier.SendCoverLetter(post.ReceiveEmail, email.CoverLetterData{
				SeekerEmail: seekerEmail,
				JobTitle:    post.JobTitle,
				CoverLetter: req.CoverLetter,
			})
			if err != nil {
				logger.Error("cover letter email failed", "post_id", post.ID, "error", err)
			}
		}()
	}

	return application, nil
}

func (s *applicationService) SendOffer(employerEmail, applicationID string) error {
	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		return err
	}

	if application.EmployerEmail != employerEmail {
		return appErrors.NewForbiddenError("Application belongs to another employer")
	}
	if application.OfferLetter {
		return appErrors.ErrOfferAlreadySent
	}

	if err := s.applicationRepo.SetOfferLetter(applicationID); err != nil {
		return err
	}

	data := email.OfferLetterData{}
	if seeker, err := s.userRepo.FindByEmail(application.SeekerEmail); err == nil {
		data.SeekerName = seeker.FirstName
	}
	if post, err := s.postRepo.FindByID(application.PostID); err == nil {
		data.JobTitle = post.JobTitle
		data.Company = post.Company
	}

	go func() {
		if err := s.notifier.SendOfferLetter(application.SeekerEmail, data); err != nil {
			logger.Error("offer letter email failed", "application_id", applicationID, "error", err)
		}
	}()

	return nil
}

func (s *applicationService) ListByPost(postID string) ([]models.Application, error) {
	return s.applicationRepo.FindByPost(postID)
}

func (s *applicationService) ListBySeeker(email string) ([]models.Application, error) {
	return s.applicationRepo.FindBySeeker(email)
}

func (s *applicationService) ListByEmployer(email string) ([]models.Application, error) {
	return s.applicationRepo.FindByEmployer(email)
}
