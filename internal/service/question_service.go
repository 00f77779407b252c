package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"askhub/internal/cache"
	apperrors "askhub/internal/errors"
	"askhub/internal/model"
	"askhub/internal/repository"
)

const questionCacheTTL = 5 * time.Minute

// QuestionService handles question operations.
type QuestionService interface {
	CreateQuestion(ctx context.Context, authorID uint, title, body string) (*model.Question, error)
	GetQuestion(ctx context.Context, id uuid.UUID) (*model.Question, error)
	ListQuestions(ctx context.Context) ([]model.Question, error)
}

type questionService struct {
	repo  repository.QuestionRepository
	cache *cache.Client
}

// NewQuestionService creates a new question service.
func NewQuestionService(repo repository.QuestionRepository, cache *cache.Client) QuestionService {
	return &questionService{
		repo:  repo,
		cache: cache,
	}
}

func (s *questionService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("question:%s", id)
}

// CreateQuestion creates a question authored by authorID.
func (s *questionService) CreateQuestion(ctx context.Context, authorID uint, title, body string) (*model.Question, error) {
	question := &model.Question{
		AuthorID: authorID,
		Title:    title,
		Body:     body,
	}
	if err := s.repo.Create(ctx, question); err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return question, nil
}

// GetQuestion retrieves a question by ID with caching.
func (s *questionService) GetQuestion(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	// Try cache first
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Question
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(question); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, questionCacheTTL)
	}

	return question, nil
}

// ListQuestions lists all questions, newest first.
func (s *questionService) ListQuestions(ctx context.Context) ([]model.Question, error) {
	return s.repo.List(ctx)
}
