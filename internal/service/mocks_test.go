package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"askhub/internal/auth"
	"askhub/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) IncrementReputation(ctx context.Context, id uint, delta int64) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *MockUserRepository) IncrementReputationTx(ctx context.Context, tx interface{}, id uint, delta int64) error {
	args := m.Called(ctx, tx, id, delta)
	return args.Error(0)
}

// MockQuestionRepository is a mock implementation of QuestionRepository.
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(ctx context.Context, question *model.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *MockQuestionRepository) List(ctx context.Context) ([]model.Question, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Question), args.Error(1)
}

func (m *MockQuestionRepository) IncrementScoreTx(ctx context.Context, tx interface{}, id uuid.UUID, delta int64) error {
	args := m.Called(ctx, tx, id, delta)
	return args.Error(0)
}

// MockAnswerRepository is a mock implementation of AnswerRepository. Its
// WithTransaction runs the closure directly so transitions are observable.
type MockAnswerRepository struct {
	mock.Mock
}

func (m *MockAnswerRepository) Create(ctx context.Context, answer *model.Answer) error {
	args := m.Called(ctx, answer)
	return args.Error(0)
}

func (m *MockAnswerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Answer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Answer), args.Error(1)
}

func (m *MockAnswerRepository) FindByQuestionID(ctx context.Context, questionID uuid.UUID) ([]model.Answer, error) {
	args := m.Called(ctx, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Answer), args.Error(1)
}

func (m *MockAnswerRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx interface{}) error) error {
	return fn(ctx, nil)
}

func (m *MockAnswerRepository) FindByIDForUpdateTx(ctx context.Context, tx interface{}, id uuid.UUID) (*model.Answer, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Answer), args.Error(1)
}

func (m *MockAnswerRepository) SetAcceptedTx(ctx context.Context, tx interface{}, id uuid.UUID, accepted bool) error {
	args := m.Called(ctx, tx, id, accepted)
	return args.Error(0)
}

func (m *MockAnswerRepository) ClearAcceptedExceptTx(ctx context.Context, tx interface{}, questionID, exceptID uuid.UUID) error {
	args := m.Called(ctx, tx, questionID, exceptID)
	return args.Error(0)
}

func (m *MockAnswerRepository) IncrementScoreTx(ctx context.Context, tx interface{}, id uuid.UUID, delta int64) error {
	args := m.Called(ctx, tx, id, delta)
	return args.Error(0)
}

// MockVoteRepository is a mock implementation of VoteRepository. Its
// WithTransaction runs the closure directly so transitions are observable.
type MockVoteRepository struct {
	mock.Mock
}

func (m *MockVoteRepository) FindByVoter(ctx context.Context, userID uint, questionID, answerID *uuid.UUID) (*model.Vote, error) {
	args := m.Called(ctx, userID, questionID, answerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vote), args.Error(1)
}

func (m *MockVoteRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx interface{}) error) error {
	return fn(ctx, nil)
}

func (m *MockVoteRepository) FindByVoterForUpdateTx(ctx context.Context, tx interface{}, userID uint, questionID, answerID *uuid.UUID) (*model.Vote, error) {
	args := m.Called(ctx, tx, userID, questionID, answerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vote), args.Error(1)
}

func (m *MockVoteRepository) CreateTx(ctx context.Context, tx interface{}, vote *model.Vote) error {
	args := m.Called(ctx, tx, vote)
	return args.Error(0)
}

func (m *MockVoteRepository) UpdateValueTx(ctx context.Context, tx interface{}, id uuid.UUID, value int) error {
	args := m.Called(ctx, tx, id, value)
	return args.Error(0)
}

func (m *MockVoteRepository) DeleteTx(ctx context.Context, tx interface{}, id uuid.UUID) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, data auth.RefreshTokenData, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, data, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (*auth.RefreshTokenData, error) {
	args := m.Called(ctx, tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.RefreshTokenData), args.Error(1)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}
