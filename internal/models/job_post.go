package models

import (
	"gorm.io/datatypes"
)

// JobPost lifecycle flags:
//
//	Draft           Permission=false Publish=false
//	PendingApproval Permission=false Publish requested
//	Published       Permission=true  Publish=true
//
// Edits revert Permission to false and set PostEdited without clearing
// Publish, re-entering the approval queue. A post is visible to seekers
// only when Permission is true.
type JobPost struct {
	BaseModel

	// Contact info section
	JobTitle    string `gorm:"not null;index" json:"jobTitle"`
	Company     string `json:"company"`
	Workplace   string `json:"workplace"`
	JobLocation string `json:"jobLocation"`

	JobDescription string `json:"jobDescription"`

	// Terms section
	Salary      string         `json:"salary"`
	EmpQuantity string         `json:"empQuantity"`
	EmpType     string         `json:"empType"`
	SkillTags   datatypes.JSON `gorm:"type:jsonb" json:"skillTags"`

	// Application options section
	ReceiveEmail string `json:"receiveEmail"`
	ApplyType    string `json:"applyType"`

	ScreeningQuestions datatypes.JSON `gorm:"type:jsonb" json:"screeningQuestions"`

	EmployerEmail string `gorm:"not null;index" json:"employerEmail"`

	Permission bool      `gorm:"default:false" json:"permission"`
	Publish    bool      `gorm:"default:false" json:"publish"`
	PostEdited bool      `gorm:"default:false" json:"postEdited"`
	PostType   PostType  `gorm:"type:varchar(10);default:'free'" json:"postType"`
	JobStatus  JobStatus `gorm:"type:varchar(10);default:'Open'" json:"jobStatus"`
}

// PostSection names an editable group of JobPost columns. Edits apply
// only the fields belonging to their section.
type PostSection string

const (
	SectionContactInfo        PostSection = "contactInfo"
	SectionDescription        PostSection = "description"
	SectionApplicationOptions PostSection = "applicationOptions"
	SectionTerms              PostSection = "terms"
	SectionScreeningQuestions PostSection = "screeningQuestions"
)
