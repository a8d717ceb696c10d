package models

import (
	"gorm.io/datatypes"
)

// User is keyed by email for all cross-references; the uuid PK exists
// only for the admin delete endpoint. Role flags are non-exclusive: a
// user may be seeker and employer at once, admin is additive.
type User struct {
	BaseModel
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Name     string `json:"name"`
	Seeker   bool   `gorm:"default:false" json:"seeker"`
	Employer bool   `gorm:"default:false" json:"employer"`
	Admin    bool   `gorm:"default:false" json:"admin"`

	Subscription SubscriptionState `gorm:"type:varchar(20);default:'free'" json:"subscription"`

	// Seeker profile
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	Resume      string `json:"resume"`
	Country     string `json:"country"`
	Address     string `json:"address"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	SeekerTitle string `gorm:"index" json:"seekerTitle"`

	// Append-only history lists, one object per entry.
	Experience datatypes.JSON `gorm:"type:jsonb" json:"experience"`
	Education  datatypes.JSON `gorm:"type:jsonb" json:"education"`

	// Employer profile
	Company string `json:"company"`
	About   string `json:"about"`
}
