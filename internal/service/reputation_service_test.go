package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"askhub/internal/model"
)

func TestPointsFor(t *testing.T) {
	svc := NewReputationService(new(MockUserRepository), nil)

	tests := []struct {
		name     string
		value    int
		target   model.TargetType
		expected int64
	}{
		{"question upvote", 1, model.TargetQuestion, 5},
		{"question downvote", -1, model.TargetQuestion, -2},
		{"answer upvote", 1, model.TargetAnswer, 10},
		{"answer downvote", -1, model.TargetAnswer, -2},
		{"no vote on question", 0, model.TargetQuestion, 0},
		{"no vote on answer", 0, model.TargetAnswer, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.PointsFor(tt.value, tt.target))
		})
	}
}

func TestApplyDelta_SkipsZero(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewReputationService(userRepo, nil)

	assert.NoError(t, svc.ApplyDelta(context.Background(), 1, 0))
	assert.NoError(t, svc.ApplyDeltaTx(context.Background(), nil, 1, 0))
	userRepo.AssertNotCalled(t, "IncrementReputation", mock.Anything, mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "IncrementReputationTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApplyDelta_UsesAtomicIncrement(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewReputationService(userRepo, nil)

	userRepo.On("IncrementReputation", mock.Anything, uint(5), int64(-12)).Return(nil)
	assert.NoError(t, svc.ApplyDelta(context.Background(), 5, -12))
	userRepo.AssertExpectations(t)
}
