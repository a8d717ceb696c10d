package dto

// AdminSeenRequest overwrites whichever notice fields are supplied;
// nil fields are left untouched.
type AdminSeenRequest struct {
	NotifyAdmin *bool `json:"notifyAdmin"`
	Permission  *bool `json:"permission"`
	PostEdited  *bool `json:"postEdited"`
}
