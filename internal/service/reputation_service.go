package service

import (
	"context"
	"fmt"

	"askhub/internal/cache"
	"askhub/internal/model"
	"askhub/internal/repository"
)

// Point values awarded to a content author per vote or acceptance event.
const (
	QuestionUpvotePoints   int64 = 5
	QuestionDownvotePoints int64 = -2
	AnswerUpvotePoints     int64 = 10
	AnswerDownvotePoints   int64 = -2
	AcceptedAnswerPoints   int64 = 15
)

// ReputationService applies signed point deltas to a user's reputation
// counter. Deltas hit the database as atomic increments; a zero delta is
// skipped entirely.
type ReputationService interface {
	PointsFor(value int, target model.TargetType) int64
	ApplyDelta(ctx context.Context, userID uint, delta int64) error
	ApplyDeltaTx(ctx context.Context, tx interface{}, userID uint, delta int64) error
}

type reputationService struct {
	userRepo repository.UserRepository
	cache    *cache.Client
}

// NewReputationService creates a new reputation service.
func NewReputationService(userRepo repository.UserRepository, cache *cache.Client) ReputationService {
	return &reputationService{
		userRepo: userRepo,
		cache:    cache,
	}
}

// PointsFor returns the points the content author holds for a stored vote
// value on the given target type. A value of 0 (no stored vote) is worth 0.
func (s *reputationService) PointsFor(value int, target model.TargetType) int64 {
	if value == 0 {
		return 0
	}
	switch target {
	case model.TargetQuestion:
		if value > 0 {
			return QuestionUpvotePoints
		}
		return QuestionDownvotePoints
	case model.TargetAnswer:
		if value > 0 {
			return AnswerUpvotePoints
		}
		return AnswerDownvotePoints
	}
	return 0
}

// ApplyDelta adds delta to the user's reputation.
func (s *reputationService) ApplyDelta(ctx context.Context, userID uint, delta int64) error {
	if delta == 0 {
		return nil
	}
	if err := s.userRepo.IncrementReputation(ctx, userID, delta); err != nil {
		return fmt.Errorf("increment reputation: %w", err)
	}
	_ = s.cache.Delete(ctx, fmt.Sprintf("user:%d", userID))
	return nil
}

// ApplyDeltaTx adds delta to the user's reputation within a caller-owned
// transaction, so the increment commits together with the vote or accept
// mutation that produced it.
func (s *reputationService) ApplyDeltaTx(ctx context.Context, tx interface{}, userID uint, delta int64) error {
	if delta == 0 {
		return nil
	}
	if err := s.userRepo.IncrementReputationTx(ctx, tx, userID, delta); err != nil {
		return fmt.Errorf("increment reputation: %w", err)
	}
	return nil
}
