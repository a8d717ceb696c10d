package services

import (
	"enlistco_backend/internal/email"
	"enlistco_backend/internal/logger"
	"enlistco_backend/internal/models"
	"enlistco_backend/internal/repositories"
)

// AlertService fans a jobAlert email out to every seeker whose stored
// title matches the approved post's title.
type AlertService interface {
	DispatchJobAlert(post models.JobPost) error
}

type alertService struct {
	userRepo repositories.UserRepository
	notifier email.Provider
}

func NewAlertService(userRepo repositories.UserRepository, notifier email.Provider) AlertService {
	return &alertService{
		userRepo: userRepo,
		notifier: notifier,
	}
}

func (s *alertService) DispatchJobAlert(post models.JobPost) error {
	matches, err := s.userRepo.FindSeekersByTitle(post.JobTitle)
	if err != nil {
		return err
	}

	// Invariant: an empty match set short-circuits here. Nothing below
	// may touch the match results until the guard has passed.
	if len(matches) == 0 {
		logger.Debug("job alert: no matching seekers", "post_id", post.ID, "title", post.JobTitle)
		return nil
	}

	addresses := make([]string, 0, len(matches))
	for _, seeker := range matches {
		addresses = append(addresses, seeker.Email)
	}

	data := email.JobAlertData{
		PostID:      post.ID,
		JobTitle:    post.JobTitle,
		Company:     post.Company,
		JobLocation: post.JobLocation,
		Workplace:   post.Workplace,
		Salary:      post.Salary,
		SeekerTitle: matches[0].SeekerTitle,
	}

	if err := s.notifier.SendJobAlert(addresses, data); err != nil {
		return err
	}

	logger.Info("job alert dispatched", "post_id", post.ID, "recipients", len(addresses))
	return nil
}
