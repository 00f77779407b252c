package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"askhub/internal/model"
)

// AnswerRepository defines answer persistence operations.
type AnswerRepository interface {
	Create(ctx context.Context, answer *model.Answer) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Answer, error)
	FindByQuestionID(ctx context.Context, questionID uuid.UUID) ([]model.Answer, error)
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, tx interface{}) error) error
	FindByIDForUpdateTx(ctx context.Context, tx interface{}, id uuid.UUID) (*model.Answer, error)
	SetAcceptedTx(ctx context.Context, tx interface{}, id uuid.UUID, accepted bool) error
	ClearAcceptedExceptTx(ctx context.Context, tx interface{}, questionID, exceptID uuid.UUID) error
	IncrementScoreTx(ctx context.Context, tx interface{}, id uuid.UUID, delta int64) error
}

type answerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository creates a new answer repository.
func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

// Create creates a new answer.
func (r *answerRepository) Create(ctx context.Context, answer *model.Answer) error {
	return r.db.WithContext(ctx).Create(answer).Error
}

// FindByID finds an answer by ID.
func (r *answerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Answer, error) {
	var answer model.Answer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&answer).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

// FindByQuestionID finds all answers for a question, accepted answer first.
func (r *answerRepository) FindByQuestionID(ctx context.Context, questionID uuid.UUID) ([]model.Answer, error) {
	var answers []model.Answer
	if err := r.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("is_accepted DESC, created_at ASC").
		Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

// WithTransaction executes a function within a database transaction.
func (r *answerRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx interface{}) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, tx)
	})
}

// FindByIDForUpdateTx finds an answer by ID with row-level lock within a transaction.
func (r *answerRepository) FindByIDForUpdateTx(ctx context.Context, tx interface{}, id uuid.UUID) (*model.Answer, error) {
	txDB := tx.(*gorm.DB)
	var answer model.Answer
	if err := txDB.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&answer).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

// SetAcceptedTx sets the accepted flag on a single answer within a transaction.
func (r *answerRepository) SetAcceptedTx(ctx context.Context, tx interface{}, id uuid.UUID, accepted bool) error {
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).Model(&model.Answer{}).
		Where("id = ?", id).
		UpdateColumn("is_accepted", accepted).Error
}

// ClearAcceptedExceptTx resets the accepted flag on every other answer of the
// question. Keeps the single-accepted-answer invariant when acceptance moves.
func (r *answerRepository) ClearAcceptedExceptTx(ctx context.Context, tx interface{}, questionID, exceptID uuid.UUID) error {
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).Model(&model.Answer{}).
		Where("question_id = ? AND id <> ? AND is_accepted = ?", questionID, exceptID, true).
		UpdateColumn("is_accepted", false).Error
}

// IncrementScoreTx applies a signed score delta within a transaction.
func (r *answerRepository) IncrementScoreTx(ctx context.Context, tx interface{}, id uuid.UUID, delta int64) error {
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).Model(&model.Answer{}).
		Where("id = ?", id).
		UpdateColumn("score", gorm.Expr("score + ?", delta)).Error
}
