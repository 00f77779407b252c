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

const answersCacheTTL = 2 * time.Minute

// NewAnswerInput carries the fields for creating an answer, including its
// visibility mode and audience sets.
type NewAnswerInput struct {
	Body                 string
	VisibilityType       model.VisibilityType
	VisibleToRoles       []string
	VisibleToDepartments []string
	VisibleToUsers       []uint
}

// AnswerService handles answer operations. Every read path runs each answer
// through the visibility evaluator against the requesting viewer.
type AnswerService interface {
	CreateAnswer(ctx context.Context, authorID uint, questionID uuid.UUID, input NewAnswerInput) (*model.Answer, error)
	GetAnswer(ctx context.Context, id uuid.UUID, viewer *model.Viewer) (*model.Answer, error)
	ListAnswers(ctx context.Context, questionID uuid.UUID, viewer *model.Viewer) ([]model.Answer, error)
}

type answerService struct {
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	evaluator    *VisibilityEvaluator
	cache        *cache.Client
}

// NewAnswerService creates a new answer service.
func NewAnswerService(
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	evaluator *VisibilityEvaluator,
	cache *cache.Client,
) AnswerService {
	return &answerService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		evaluator:    evaluator,
		cache:        cache,
	}
}

func (s *answerService) listCacheKey(questionID uuid.UUID) string {
	return fmt.Sprintf("answers:%s", questionID)
}

// CreateAnswer creates an answer under questionID authored by authorID.
func (s *answerService) CreateAnswer(ctx context.Context, authorID uint, questionID uuid.UUID, input NewAnswerInput) (*model.Answer, error) {
	visibility := input.VisibilityType
	if visibility == "" {
		visibility = model.VisibilityPublic
	}
	if !visibility.Valid() {
		return nil, apperrors.ErrInvalidVisibility
	}

	if _, err := s.questionRepo.FindByID(ctx, questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("find question: %w", err)
	}

	answer := &model.Answer{
		QuestionID:           questionID,
		AuthorID:             authorID,
		Body:                 input.Body,
		VisibilityType:       visibility,
		VisibleToRoles:       input.VisibleToRoles,
		VisibleToDepartments: input.VisibleToDepartments,
		VisibleToUsers:       input.VisibleToUsers,
	}
	if err := s.answerRepo.Create(ctx, answer); err != nil {
		return nil, fmt.Errorf("create answer: %w", err)
	}

	_ = s.cache.Delete(ctx, s.listCacheKey(questionID))
	return answer, nil
}

// GetAnswer retrieves an answer by ID. Answers the viewer may not see are
// reported as not found rather than redacted.
func (s *answerService) GetAnswer(ctx context.Context, id uuid.UUID, viewer *model.Viewer) (*model.Answer, error) {
	answer, err := s.answerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAnswerNotFound
		}
		return nil, err
	}
	if !s.evaluator.CanView(answer, viewer) {
		return nil, apperrors.ErrAnswerNotFound
	}
	return answer, nil
}

// ListAnswers lists a question's answers filtered for the viewer. The
// unfiltered list is cached; filtering always runs per request since it
// depends on the viewer.
func (s *answerService) ListAnswers(ctx context.Context, questionID uuid.UUID, viewer *model.Viewer) ([]model.Answer, error) {
	if _, err := s.questionRepo.FindByID(ctx, questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("find question: %w", err)
	}

	var answers []model.Answer
	if data, _ := s.cache.Get(ctx, s.listCacheKey(questionID)); data != nil {
		if err := json.Unmarshal(data, &answers); err != nil {
			answers = nil
		}
	}

	if answers == nil {
		var err error
		answers, err = s.answerRepo.FindByQuestionID(ctx, questionID)
		if err != nil {
			return nil, fmt.Errorf("list answers: %w", err)
		}
		if payload, err := json.Marshal(answers); err == nil {
			_ = s.cache.Set(ctx, s.listCacheKey(questionID), payload, answersCacheTTL)
		}
	}

	return s.evaluator.FilterAnswers(answers, viewer), nil
}
