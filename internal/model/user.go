package model

import "time"

// Role values recognized by the visibility evaluator. An empty Role means the
// user has no role assigned.
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleMember    = "member"
)

// User represents an authenticated user in the system.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string    `json:"role,omitempty" gorm:"size:50"`
	Department   string    `json:"department,omitempty" gorm:"size:100;index"`
	Reputation   int64     `json:"reputation" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Viewer is the identity resolved for the current request. A nil *Viewer
// means the request is anonymous.
type Viewer struct {
	ID         uint   `json:"id"`
	Role       string `json:"role,omitempty"`
	Department string `json:"department,omitempty"`
}

// ViewerFor builds a Viewer from a stored user.
func ViewerFor(u *User) *Viewer {
	if u == nil {
		return nil
	}
	return &Viewer{ID: u.ID, Role: u.Role, Department: u.Department}
}
