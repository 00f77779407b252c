package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"askhub/internal/cache"
	apperrors "askhub/internal/errors"
	"askhub/internal/model"
	"askhub/internal/repository"
)

// AcceptService marks an answer as the accepted one for its question. It
// enforces "at most one accepted answer per question" and awards the one-time
// acceptance bonus to the answer's author.
type AcceptService interface {
	AcceptAnswer(ctx context.Context, requesterID uint, questionID, answerID uuid.UUID) (*model.Answer, error)
}

type acceptService struct {
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	reputation   ReputationService
	cache        *cache.Client
}

// NewAcceptService creates a new accept service.
func NewAcceptService(
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	reputation ReputationService,
	cache *cache.Client,
) AcceptService {
	return &acceptService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		reputation:   reputation,
		cache:        cache,
	}
}

// AcceptAnswer accepts answerID for questionID on behalf of requesterID.
// Only the question author may accept. Re-accepting an already accepted
// answer is a no-op; the +15 bonus is awarded exactly once, on the
// false-to-true transition, and is never retracted when acceptance moves to
// another answer.
func (s *acceptService) AcceptAnswer(ctx context.Context, requesterID uint, questionID, answerID uuid.UUID) (*model.Answer, error) {
	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("find question: %w", err)
	}
	if question.AuthorID != requesterID {
		return nil, apperrors.ErrNotQuestionAuthor
	}

	var accepted *model.Answer
	err = s.answerRepo.WithTransaction(ctx, func(ctx context.Context, tx interface{}) error {
		answer, err := s.answerRepo.FindByIDForUpdateTx(ctx, tx, answerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAnswerNotFound
			}
			return fmt.Errorf("find answer: %w", err)
		}
		if answer.QuestionID != questionID {
			return apperrors.ErrAnswerNotFound
		}

		wasAccepted := answer.IsAccepted

		// Reset any previously accepted answer first; its author keeps the
		// bonus already awarded.
		if err := s.answerRepo.ClearAcceptedExceptTx(ctx, tx, questionID, answerID); err != nil {
			return fmt.Errorf("clear accepted answers: %w", err)
		}
		if err := s.answerRepo.SetAcceptedTx(ctx, tx, answerID, true); err != nil {
			return fmt.Errorf("set accepted: %w", err)
		}
		answer.IsAccepted = true

		if !wasAccepted {
			if err := s.reputation.ApplyDeltaTx(ctx, tx, answer.AuthorID, AcceptedAnswerPoints); err != nil {
				return err
			}
		}

		accepted = answer
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx,
		fmt.Sprintf("answers:%s", questionID),
		fmt.Sprintf("answer:%s", answerID),
		fmt.Sprintf("user:%d", accepted.AuthorID),
	)

	return accepted, nil
}
