package dto

type ApplyRequest struct {
	PostID      string `json:"postId" validate:"required"`
	CoverLetter string `json:"coverLetter"`
}
