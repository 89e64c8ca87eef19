package models

import "gorm.io/gorm"

// APIToken stores the long-lived token minted for a user on first login.
// The unique index on UserID is what makes token issuance idempotent:
// repeated logins find and return the existing row.
type APIToken struct {
	ID     string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID string `json:"user_id" gorm:"uniqueIndex;type:varchar(36)"`
	Token  string `json:"token" gorm:"type:text"`
	gorm.Model
}
