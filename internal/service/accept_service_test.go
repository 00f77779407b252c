package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "askhub/internal/errors"
	"askhub/internal/model"
)

func newAcceptServiceForTest() (AcceptService, *MockQuestionRepository, *MockAnswerRepository, *MockUserRepository) {
	questionRepo := new(MockQuestionRepository)
	answerRepo := new(MockAnswerRepository)
	userRepo := new(MockUserRepository)
	reputation := NewReputationService(userRepo, nil)
	svc := NewAcceptService(questionRepo, answerRepo, reputation, nil)
	return svc, questionRepo, answerRepo, userRepo
}

func TestAcceptAnswer_AwardsBonusOnFirstAccept(t *testing.T) {
	questionID := uuid.New()
	answerID := uuid.New()
	question := &model.Question{ID: questionID, AuthorID: 1}
	answer := &model.Answer{ID: answerID, QuestionID: questionID, AuthorID: 2, IsAccepted: false}

	svc, questionRepo, answerRepo, userRepo := newAcceptServiceForTest()
	questionRepo.On("FindByID", mock.Anything, questionID).Return(question, nil)
	answerRepo.On("FindByIDForUpdateTx", mock.Anything, mock.Anything, answerID).Return(answer, nil)
	answerRepo.On("ClearAcceptedExceptTx", mock.Anything, mock.Anything, questionID, answerID).Return(nil)
	answerRepo.On("SetAcceptedTx", mock.Anything, mock.Anything, answerID, true).Return(nil)
	userRepo.On("IncrementReputationTx", mock.Anything, mock.Anything, uint(2), int64(15)).Return(nil)

	accepted, err := svc.AcceptAnswer(context.Background(), 1, questionID, answerID)
	assert.NoError(t, err)
	assert.True(t, accepted.IsAccepted)
	userRepo.AssertCalled(t, "IncrementReputationTx", mock.Anything, mock.Anything, uint(2), int64(15))
	answerRepo.AssertExpectations(t)
}

// Accepting an already accepted answer must not award the bonus again.
func TestAcceptAnswer_RepeatAcceptIsIdempotent(t *testing.T) {
	questionID := uuid.New()
	answerID := uuid.New()
	question := &model.Question{ID: questionID, AuthorID: 1}
	answer := &model.Answer{ID: answerID, QuestionID: questionID, AuthorID: 2, IsAccepted: true}

	svc, questionRepo, answerRepo, userRepo := newAcceptServiceForTest()
	questionRepo.On("FindByID", mock.Anything, questionID).Return(question, nil)
	answerRepo.On("FindByIDForUpdateTx", mock.Anything, mock.Anything, answerID).Return(answer, nil)
	answerRepo.On("ClearAcceptedExceptTx", mock.Anything, mock.Anything, questionID, answerID).Return(nil)
	answerRepo.On("SetAcceptedTx", mock.Anything, mock.Anything, answerID, true).Return(nil)

	accepted, err := svc.AcceptAnswer(context.Background(), 1, questionID, answerID)
	assert.NoError(t, err)
	assert.True(t, accepted.IsAccepted)
	userRepo.AssertNotCalled(t, "IncrementReputationTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAcceptAnswer_OnlyQuestionAuthorMayAccept(t *testing.T) {
	questionID := uuid.New()
	answerID := uuid.New()
	question := &model.Question{ID: questionID, AuthorID: 1}

	svc, questionRepo, _, _ := newAcceptServiceForTest()
	questionRepo.On("FindByID", mock.Anything, questionID).Return(question, nil)

	_, err := svc.AcceptAnswer(context.Background(), 99, questionID, answerID)
	assert.ErrorIs(t, err, apperrors.ErrNotQuestionAuthor)
}

func TestAcceptAnswer_NotFound(t *testing.T) {
	questionID := uuid.New()
	answerID := uuid.New()

	t.Run("question missing", func(t *testing.T) {
		svc, questionRepo, _, _ := newAcceptServiceForTest()
		questionRepo.On("FindByID", mock.Anything, questionID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.AcceptAnswer(context.Background(), 1, questionID, answerID)
		assert.ErrorIs(t, err, apperrors.ErrQuestionNotFound)
	})

	t.Run("answer missing", func(t *testing.T) {
		svc, questionRepo, answerRepo, _ := newAcceptServiceForTest()
		questionRepo.On("FindByID", mock.Anything, questionID).Return(&model.Question{ID: questionID, AuthorID: 1}, nil)
		answerRepo.On("FindByIDForUpdateTx", mock.Anything, mock.Anything, answerID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.AcceptAnswer(context.Background(), 1, questionID, answerID)
		assert.ErrorIs(t, err, apperrors.ErrAnswerNotFound)
	})

	t.Run("answer belongs to another question", func(t *testing.T) {
		svc, questionRepo, answerRepo, _ := newAcceptServiceForTest()
		questionRepo.On("FindByID", mock.Anything, questionID).Return(&model.Question{ID: questionID, AuthorID: 1}, nil)
		stray := &model.Answer{ID: answerID, QuestionID: uuid.New(), AuthorID: 2}
		answerRepo.On("FindByIDForUpdateTx", mock.Anything, mock.Anything, answerID).Return(stray, nil)

		_, err := svc.AcceptAnswer(context.Background(), 1, questionID, answerID)
		assert.ErrorIs(t, err, apperrors.ErrAnswerNotFound)
	})
}
