package models

import (
	"gorm.io/datatypes"
)

// ModerationNotice is the per-post moderation audit record, created
// atomically with its JobPost and deleted with it. Distinct from the
// outbound email notifier.
type ModerationNotice struct {
	BaseModel
	PostID      string `gorm:"type:uuid;uniqueIndex;not null" json:"postId"`
	NotifyAdmin bool   `gorm:"default:false" json:"notifyAdmin"`
	Permission  bool   `gorm:"default:false" json:"permission"`
	PostEdited  bool   `gorm:"default:false" json:"postEdited"`

	// Ordered list of seeker emails that acknowledged the notice.
	// Appends are deduplicated.
	NotifyUsers datatypes.JSON `gorm:"type:jsonb" json:"notifyUsers"`
}
