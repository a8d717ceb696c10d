package dto

// EmployerContact is the required contact section of a new post.
type EmployerContact struct {
	JobTitle    string `json:"jobTitle" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Workplace   string `json:"workplace"`
	JobLocation string `json:"jobLocation"`
}

// PostOptions is the required terms/options section of a new post.
// Optional fields default to the zero value; the stored row always has
// every column present.
type PostOptions struct {
	ReceiveEmail string   `json:"receiveEmail" validate:"omitempty,email"`
	Salary       string   `json:"salary"`
	SkillTags    []string `json:"skillTags"`
	EmpQuantity  string   `json:"empQuantity"`
	EmpType      string   `json:"empType"`
	ApplyType    string   `json:"applyType"`
}

type CreatePostRequest struct {
	Email              string          `json:"email" validate:"required,email"`
	EmployerContact    EmployerContact `json:"employerContact" validate:"required"`
	JobDescription     string          `json:"jobDescription"`
	PostOptions        PostOptions     `json:"postOptions" validate:"required"`
	ScreeningQuestions []string        `json:"screeningQuestions"`
	Publish            bool            `json:"publish"`
}

type ApprovePostRequest struct {
	Publish bool `json:"publish"`
}

// PostPatch carries one section's worth of changes for an edited post.
// Only the fields of the selected section are ever applied.
type PostPatch struct {
	// contactInfo
	JobTitle    *string `json:"jobTitle"`
	Company     *string `json:"company"`
	Workplace   *string `json:"workplace"`
	JobLocation *string `json:"jobLocation"`

	// description
	JobDescription *string `json:"jobDescription"`

	// applicationOptions
	ReceiveEmail *string `json:"receiveEmail" validate:"omitempty,email"`
	ApplyType    *string `json:"applyType"`

	// terms
	Salary      *string  `json:"salary"`
	EmpQuantity *string  `json:"empQuantity"`
	EmpType     *string  `json:"empType"`
	SkillTags   []string `json:"skillTags"`

	// screeningQuestions
	ScreeningQuestions []string `json:"screeningQuestions"`
}

type JobStatusRequest struct {
	JobStatus string `json:"jobStatus" validate:"required,oneof=Open Closed"`
}
