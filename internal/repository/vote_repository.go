package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"askhub/internal/model"
)

// VoteRepository defines vote persistence operations. All mutations run inside
// a caller-owned transaction so the vote row, the author's reputation and the
// content score commit together.
type VoteRepository interface {
	FindByVoter(ctx context.Context, userID uint, questionID, answerID *uuid.UUID) (*model.Vote, error)
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, tx interface{}) error) error
	FindByVoterForUpdateTx(ctx context.Context, tx interface{}, userID uint, questionID, answerID *uuid.UUID) (*model.Vote, error)
	CreateTx(ctx context.Context, tx interface{}, vote *model.Vote) error
	UpdateValueTx(ctx context.Context, tx interface{}, id uuid.UUID, value int) error
	DeleteTx(ctx context.Context, tx interface{}, id uuid.UUID) error
}

type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new vote repository.
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// FindByVoter finds the voter's vote on the given target, if any.
func (r *voteRepository) FindByVoter(ctx context.Context, userID uint, questionID, answerID *uuid.UUID) (*model.Vote, error) {
	return findVote(r.db.WithContext(ctx), userID, questionID, answerID)
}

// WithTransaction executes a function within a database transaction.
func (r *voteRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx interface{}) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, tx)
	})
}

// FindByVoterForUpdateTx finds the voter's vote with a row-level lock so two
// concurrent casts from the same voter serialize on the existing row.
func (r *voteRepository) FindByVoterForUpdateTx(ctx context.Context, tx interface{}, userID uint, questionID, answerID *uuid.UUID) (*model.Vote, error) {
	txDB := tx.(*gorm.DB)
	return findVote(txDB.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), userID, questionID, answerID)
}

// CreateTx inserts a vote row within a transaction. A duplicate-key error
// here means a concurrent cast won the insert race.
func (r *voteRepository) CreateTx(ctx context.Context, tx interface{}, vote *model.Vote) error {
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).Create(vote).Error
}

// UpdateValueTx flips the stored value of an existing vote within a
// transaction. Zero rows affected means the row vanished mid-flight; the
// transition must abort rather than book a delta against a vote that is gone.
func (r *voteRepository) UpdateValueTx(ctx context.Context, tx interface{}, id uuid.UUID, value int) error {
	txDB := tx.(*gorm.DB)
	res := txDB.WithContext(ctx).Model(&model.Vote{}).
		Where("id = ?", id).
		UpdateColumn("value", value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteTx removes a vote row within a transaction. A removed row is the only
// representation of "not voted"; zero is never stored. Zero rows affected
// aborts the transition, same as UpdateValueTx.
func (r *voteRepository) DeleteTx(ctx context.Context, tx interface{}, id uuid.UUID) error {
	txDB := tx.(*gorm.DB)
	res := txDB.WithContext(ctx).Delete(&model.Vote{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func findVote(db *gorm.DB, userID uint, questionID, answerID *uuid.UUID) (*model.Vote, error) {
	var vote model.Vote
	query := db.Where("user_id = ?", userID)
	if questionID != nil {
		query = query.Where("question_id = ?", *questionID)
	} else {
		query = query.Where("answer_id = ?", *answerID)
	}
	if err := query.First(&vote).Error; err != nil {
		return nil, err
	}
	return &vote, nil
}
