package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Question represents a question posted by a user.
type Question struct {
	ID        uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	AuthorID  uint           `json:"author_id" gorm:"not null;index"`
	Title     string         `json:"title" gorm:"size:255;not null"`
	Body      string         `json:"body" gorm:"type:text;not null"`
	Score     int64          `json:"score" gorm:"not null;default:0"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Author  User     `json:"-" gorm:"foreignKey:AuthorID"`
	Answers []Answer `json:"answers,omitempty" gorm:"foreignKey:QuestionID"`
}

// BeforeCreate sets UUID before creating the record.
func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
