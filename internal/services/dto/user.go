package dto

// UpsertUserRequest mirrors the client's sign-in payload. Role flags
// are additive and non-exclusive.
type UpsertUserRequest struct {
	Name     string `json:"name"`
	Seeker   bool   `json:"seeker"`
	Employer bool   `json:"employer"`
}

type UpsertUserResponse struct {
	Token string `json:"token"`
}

// UserContact is the seeker contact section.
type UserContact struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	Resume      string `json:"resume"`
	Country     string `json:"country"`
	Address     string `json:"address"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	SeekerTitle string `json:"seekerTitle"`
}

// JobExperience is one entry of the seeker's append-only history.
type JobExperience struct {
	ExJobTitle         string `json:"exJobTitle"`
	ExCompany          string `json:"exCompany"`
	ExStartDate        string `json:"exStartDate"`
	ExEndDate          string `json:"exEndDate"`
	ExWorking          bool   `json:"exWorking"`
	ExResponsibilities string `json:"exResponsibilities"`
}

// Education is one entry of the seeker's append-only history.
type Education struct {
	Degree       string `json:"degree"`
	Institution  string `json:"institution"`
	EduGroup     string `json:"edugroup"`
	EduStartDate string `json:"eduStartDate"`
	EduEndDate   string `json:"eduEndDate"`
	EduStudying  bool   `json:"eduStudying"`
}

type SeekerProfileRequest struct {
	UserContact *UserContact   `json:"userContact"`
	JobExp      *JobExperience `json:"jobExp"`
	Education   *Education     `json:"education"`
}

type ContactUsRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}
