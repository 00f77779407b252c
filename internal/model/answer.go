package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VisibilityType is the access-control mode attached to an answer. The set is
// closed; anything outside it is treated as not visible.
type VisibilityType string

const (
	VisibilityPublic        VisibilityType = "public"
	VisibilityRoles         VisibilityType = "roles"
	VisibilityDepartments   VisibilityType = "departments"
	VisibilitySpecificUsers VisibilityType = "specific_users"
	VisibilityTeam          VisibilityType = "team"
)

// Valid reports whether v is one of the recognized visibility modes.
func (v VisibilityType) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityRoles, VisibilityDepartments,
		VisibilitySpecificUsers, VisibilityTeam:
		return true
	}
	return false
}

// Answer represents an answer to a question, carrying its own visibility
// settings and accepted state.
type Answer struct {
	ID                   uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	QuestionID           uuid.UUID      `json:"question_id" gorm:"type:char(36);not null;index"`
	AuthorID             uint           `json:"author_id" gorm:"not null;index"`
	Body                 string         `json:"body" gorm:"type:text;not null"`
	Score                int64          `json:"score" gorm:"not null;default:0"`
	IsAccepted           bool           `json:"is_accepted" gorm:"not null;default:false;index"`
	VisibilityType       VisibilityType `json:"visibility_type" gorm:"type:varchar(20);not null;default:'public'"`
	VisibleToRoles       StringList     `json:"visible_to_roles,omitempty" gorm:"type:json"`
	VisibleToDepartments StringList     `json:"visible_to_departments,omitempty" gorm:"type:json"`
	VisibleToUsers       UintList       `json:"visible_to_users,omitempty" gorm:"type:json"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Question Question `json:"-" gorm:"foreignKey:QuestionID"`
	Author   User     `json:"-" gorm:"foreignKey:AuthorID"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Answer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
