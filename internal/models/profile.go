package models

import "gorm.io/gorm"

// Profile holds the optional academic metadata attached to a user. At most
// one profile exists per user; a user without one is valid and all fields
// read as empty.
type Profile struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID      string `json:"user_id" gorm:"uniqueIndex;type:varchar(36)"`
	Affiliation string `json:"affiliation" gorm:"type:varchar(255)" validate:"omitempty,max=255"`
	Homepage    string `json:"homepage" validate:"omitempty,url"`
	Scholar     string `json:"scholar" validate:"omitempty,url"`
	Github      string `json:"github" validate:"omitempty,url"`
	gorm.Model
}
