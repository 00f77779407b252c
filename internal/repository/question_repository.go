package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"askhub/internal/model"
)

// QuestionRepository defines question persistence operations.
type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Question, error)
	List(ctx context.Context) ([]model.Question, error)
	// Transaction methods
	IncrementScoreTx(ctx context.Context, tx interface{}, id uuid.UUID, delta int64) error
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new question repository.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// Create creates a new question.
func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

// FindByID finds a question by ID.
func (r *questionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// List lists all questions, newest first.
func (r *questionRepository) List(ctx context.Context) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// IncrementScoreTx applies a signed score delta within a transaction.
func (r *questionRepository) IncrementScoreTx(ctx context.Context, tx interface{}, id uuid.UUID, delta int64) error {
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).Model(&model.Question{}).
		Where("id = ?", id).
		UpdateColumn("score", gorm.Expr("score + ?", delta)).Error
}
