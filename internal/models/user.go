package models

import "gorm.io/gorm"

// User represents a registered account. Username is the account's handle,
// derived from the email's local part at signup and never recomputed.
type User struct {
	ID         string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string   `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	Email      string   `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string   `gorm:"type:varchar(255)" validate:"required"` // No json tag for security
	FirstName  string   `json:"first_name" gorm:"type:varchar(150)"`
	LastName   string   `json:"last_name" gorm:"type:varchar(150)"`
	Profile    *Profile `json:"profile,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// FullName joins first and last name with a single space. A missing last
// name must not leave a trailing space.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
