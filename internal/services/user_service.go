package services

import (
	"encoding/json"

	"enlistco_backend/internal/appErrors"
	"enlistco_backend/internal/auth"
	"enlistco_backend/internal/email"
	"enlistco_backend/internal/models"
	"enlistco_backend/internal/repositories"
	"enlistco_backend/internal/services/dto"

	"gorm.io/datatypes"
)

type UserService interface {
	// UpsertUser writes the user keyed by email and issues an access
	// token. Retries are safe: the write succeeds whether or not a
	// prior record existed.
	UpsertUser(emailAddr string, req *dto.UpsertUserRequest) (string, error)

	GetUsers() ([]models.User, error)
	GetUser(emailAddr string) (*models.User, error)
	DeleteUser(emailAddr string) error
	IsAdmin(emailAddr string) (bool, error)

	UpdateSeekerProfile(emailAddr string, req *dto.SeekerProfileRequest) error

	ContactUs(req *dto.ContactUsRequest) error
}

type userService struct {
	userRepo repositories.UserRepository
	notifier email.Provider
}

func NewUserService(userRepo repositories.UserRepository, notifier email.Provider) UserService {
	return &userService{
		userRepo: userRepo,
		notifier: notifier,
	}
}

func (s *userService) UpsertUser(emailAddr string, req *dto.UpsertUserRequest) (string, error) {
	user := &models.User{
		Email:    emailAddr,
		Name:     req.Name,
		Seeker:   req.Seeker,
		Employer: req.Employer,
	}

	if err := s.userRepo.Upsert(user); err != nil {
		return "", err
	}

	return auth.GenerateToken(emailAddr)
}

func (s *userService) GetUsers() ([]models.User, error) {
	return s.userRepo.FindAll()
}

func (s *userService) GetUser(emailAddr string) (*models.User, error) {
	return s.userRepo.FindByEmail(emailAddr)
}

func (s *userService) DeleteUser(emailAddr string) error {
	return s.userRepo.Delete(emailAddr)
}

func (s *userService) IsAdmin(emailAddr string) (bool, error) {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if appErrors.Is(err, appErrors.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.Admin, nil
}

// UpdateSeekerProfile applies the supplied sections. Contact fields
// overwrite; experience and education entries append to their lists.
func (s *userService) UpdateSeekerProfile(emailAddr string, req *dto.SeekerProfileRequest) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		return err
	}

	fields := make(map[string]interface{})

	if uc := req.UserContact; uc != nil {
		fields["first_name"] = uc.FirstName
		fields["last_name"] = uc.LastName
		fields["phone"] = uc.Phone
		fields["resume"] = uc.Resume
		fields["country"] = uc.Country
		fields["address"] = uc.Address
		fields["state"] = uc.State
		fields["zip"] = uc.Zip
		fields["seeker_title"] = uc.SeekerTitle
	}

	if req.JobExp != nil {
		appended, err := appendEntry(user.Experience, req.JobExp)
		if err != nil {
			return err
		}
		fields["experience"] = appended
	}

	if req.Education != nil {
		appended, err := appendEntry(user.Education, req.Education)
		if err != nil {
			return err
		}
		fields["education"] = appended
	}

	if len(fields) == 0 {
		return nil
	}

	return s.userRepo.UpdateFields(emailAddr, fields)
}

func (s *userService) ContactUs(req *dto.ContactUsRequest) error {
	err := s.notifier.SendContactUs(email.ContactUsData{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return appErrors.ExternalServiceError(err, "notifier")
	}
	return nil
}

// appendEntry appends one object to a jsonb list, creating the list
// when absent.
func appendEntry(list datatypes.JSON, entry interface{}) (datatypes.JSON, error) {
	var entries []json.RawMessage
	if len(list) > 0 {
		if err := json.Unmarshal(list, &entries); err != nil {
			return nil, err
		}
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return nil, err
	}

	entries = append(entries, raw)
	out, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(out), nil
}
