package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TargetType distinguishes what kind of content a vote lands on. The point
// table awards different amounts per target type.
type TargetType string

const (
	TargetQuestion TargetType = "question"
	TargetAnswer   TargetType = "answer"
)

// Vote value bounds. A stored vote is always +1 or -1; a requested value of 0
// removes the stored vote.
const (
	VoteUp   = 1
	VoteDown = -1
)

// Vote records a single user's vote on a single content item. Exactly one of
// QuestionID/AnswerID is set. The composite unique indexes enforce at most
// one row per (user, target); concurrent first-votes surface as duplicate-key
// errors and are retried by the ledger.
type Vote struct {
	ID         uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	UserID     uint       `json:"user_id" gorm:"not null;uniqueIndex:uniq_voter_question;uniqueIndex:uniq_voter_answer"`
	QuestionID *uuid.UUID `json:"question_id,omitempty" gorm:"type:char(36);uniqueIndex:uniq_voter_question"`
	AnswerID   *uuid.UUID `json:"answer_id,omitempty" gorm:"type:char(36);uniqueIndex:uniq_voter_answer"`
	Value      int        `json:"value" gorm:"not null"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (v *Vote) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TargetType returns the kind of content this vote is attached to.
func (v *Vote) TargetType() TargetType {
	if v.AnswerID != nil {
		return TargetAnswer
	}
	return TargetQuestion
}
