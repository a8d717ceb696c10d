package email

// Kind names an outbound email category. Each kind has a fixed payload
// shape and template.
type Kind string

const (
	KindVerify      Kind = "verify"
	KindReset       Kind = "reset"
	KindCoverLetter Kind = "coverLetter"
	KindOfferLetter Kind = "offerLetter"
	KindJobAlert    Kind = "jobAlert"
	KindContactUs   Kind = "contact_us"
)

// JobAlertData is the payload for seeker job alerts. Recipients receive
// a single message addressed to all matched seekers.
type JobAlertData struct {
	PostID      string
	JobTitle    string
	Company     string
	JobLocation string
	Workplace   string
	Salary      string
	SeekerTitle string
}

// OfferLetterData is the payload for an employer offer email.
type OfferLetterData struct {
	SeekerName string
	JobTitle   string
	Company    string
}

// CoverLetterData is the payload forwarded to an employer when a seeker
// applies with a cover letter.
type CoverLetterData struct {
	SeekerEmail string
	JobTitle    string
	CoverLetter string
}

// ContactUsData is the payload of the public contact form.
type ContactUsData struct {
	Name    string
	Email   string
	Message string
}

// Provider sends categorized emails. Delivery is fire-and-forget: the
// caller never observes delivery status, only submission errors.
type Provider interface {
	SendVerification(to, url string) error
	SendPasswordReset(to, url string) error
	SendJobAlert(to []string, data JobAlertData) error
	SendOfferLetter(to string, data OfferLetterData) error
	SendCoverLetter(to string, data CoverLetterData) error
	SendContactUs(data ContactUsData) error
	Close() error
}
