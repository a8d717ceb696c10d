package models

// Application links a seeker to a post. OfferLetter is set exactly once
// by the employer; the flag never transitions back.
type Application struct {
	BaseModel
	PostID        string `gorm:"type:uuid;not null;index" json:"postId"`
	SeekerEmail   string `gorm:"not null;index" json:"seekerEmail"`
	EmployerEmail string `gorm:"not null;index" json:"employerEmail"`
	CoverLetter   string `json:"coverLetter"`
	OfferLetter   bool   `gorm:"default:false" json:"offerLetter"`
}
