// internal/model/user.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleStudent      Role = "student"
	RoleOrganizer    Role = "organizer"
	RoleAdmin        Role = "admin"
	RoleCollegeAdmin Role = "college_admin"
)

// IsAdmin reports whether the role carries administrative privileges.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleCollegeAdmin
}

// User is owned by the identity collaborator; this service only reads it.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email       string    `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FirstName   string    `gorm:"type:text" json:"first_name"`
	LastName    string    `gorm:"type:text" json:"last_name"`
	FullName    string    `gorm:"type:text" json:"full_name"`
	DisplayName string    `gorm:"type:text" json:"display_name"`
	Role        Role      `gorm:"type:text;not null;default:'student'" json:"role"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RecipientNamePlaceholder is printed on a certificate when no name field is set.
const RecipientNamePlaceholder = "Participant"

// RecipientName resolves the name printed on certificates: display name, then
// full name, then first+last, then a fixed placeholder.
func (u *User) RecipientName() string {
	if name := strings.TrimSpace(u.DisplayName); name != "" {
		return name
	}
	if name := strings.TrimSpace(u.FullName); name != "" {
		return name
	}
	if name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName)); name != "" {
		return name
	}
	return RecipientNamePlaceholder
}
