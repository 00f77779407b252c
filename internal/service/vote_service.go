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

// VoteTarget identifies the content item a vote lands on. Exactly one field
// must be set.
type VoteTarget struct {
	QuestionID *uuid.UUID
	AnswerID   *uuid.UUID
}

// Valid reports whether exactly one target is set.
func (t VoteTarget) Valid() bool {
	return (t.QuestionID != nil) != (t.AnswerID != nil)
}

// VoteResult describes the outcome of a cast: the surviving vote row (nil
// when the cast removed it) and the old/new value pair the reputation delta
// was computed from. A cast that found nothing to clear reports neither a
// vote nor a removal.
type VoteResult struct {
	Vote     *model.Vote `json:"vote,omitempty"`
	Removed  bool        `json:"removed,omitempty"`
	OldValue int         `json:"old_value"`
	NewValue int         `json:"new_value"`
}

// VoteService is the vote ledger. It owns the one-vote-per-(user,target)
// invariant and drives reputation and score updates from vote transitions.
type VoteService interface {
	CastVote(ctx context.Context, voterID uint, target VoteTarget, value int) (*VoteResult, error)
}

type voteService struct {
	voteRepo     repository.VoteRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	reputation   ReputationService
	cache        *cache.Client
}

// NewVoteService creates a new vote service.
func NewVoteService(
	voteRepo repository.VoteRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	reputation ReputationService,
	cache *cache.Client,
) VoteService {
	return &voteService{
		voteRepo:     voteRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		reputation:   reputation,
		cache:        cache,
	}
}

// CastVote applies a single vote transition:
//
//	absent  + ±1     create the vote
//	present + same   remove the vote (toggle off)
//	present + 0      remove the vote
//	present + other  flip the vote
//	absent  + 0      nothing to do
//
// The vote row change, the author's reputation delta and the content score
// delta commit in one transaction. A duplicate-key race on first vote is
// re-read and retried once.
func (s *voteService) CastVote(ctx context.Context, voterID uint, target VoteTarget, value int) (*VoteResult, error) {
	if !target.Valid() {
		return nil, apperrors.ErrInvalidTarget
	}
	if value < model.VoteDown || value > model.VoteUp {
		return nil, apperrors.ErrInvalidValue
	}

	authorID, targetType, questionID, err := s.resolveTarget(ctx, target)
	if err != nil {
		return nil, err
	}

	result, err := s.applyTransition(ctx, voterID, target, value, authorID, targetType)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost the insert race to a concurrent cast from the same voter;
		// the row exists now, so the transition re-reads cleanly.
		result, err = s.applyTransition(ctx, voterID, target, value, authorID, targetType)
	}
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, target, questionID, authorID)
	return result, nil
}

// resolveTarget loads the target content item and returns its author, target
// type and owning question (the question itself for question votes).
func (s *voteService) resolveTarget(ctx context.Context, target VoteTarget) (uint, model.TargetType, uuid.UUID, error) {
	if target.QuestionID != nil {
		question, err := s.questionRepo.FindByID(ctx, *target.QuestionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, "", uuid.Nil, apperrors.ErrQuestionNotFound
			}
			return 0, "", uuid.Nil, fmt.Errorf("find question: %w", err)
		}
		return question.AuthorID, model.TargetQuestion, question.ID, nil
	}

	answer, err := s.answerRepo.FindByID(ctx, *target.AnswerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, "", uuid.Nil, apperrors.ErrAnswerNotFound
		}
		return 0, "", uuid.Nil, fmt.Errorf("find answer: %w", err)
	}
	return answer.AuthorID, model.TargetAnswer, answer.QuestionID, nil
}

// applyTransition runs the transition table inside one transaction.
func (s *voteService) applyTransition(ctx context.Context, voterID uint, target VoteTarget, value int, authorID uint, targetType model.TargetType) (*VoteResult, error) {
	var result VoteResult

	err := s.voteRepo.WithTransaction(ctx, func(ctx context.Context, tx interface{}) error {
		existing, err := s.voteRepo.FindByVoterForUpdateTx(ctx, tx, voterID, target.QuestionID, target.AnswerID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("find vote: %w", err)
		}

		switch {
		case existing == nil && value == 0:
			// Never voted and asked to clear: nothing happened, so neither
			// a vote nor a removal is reported.
			result = VoteResult{}
			return nil

		case existing == nil:
			vote := &model.Vote{
				UserID:     voterID,
				QuestionID: target.QuestionID,
				AnswerID:   target.AnswerID,
				Value:      value,
			}
			if err := s.voteRepo.CreateTx(ctx, tx, vote); err != nil {
				return err
			}
			result = VoteResult{Vote: vote, OldValue: 0, NewValue: value}

		case value == existing.Value || value == 0:
			if err := s.voteRepo.DeleteTx(ctx, tx, existing.ID); err != nil {
				return fmt.Errorf("delete vote: %w", err)
			}
			result = VoteResult{Removed: true, OldValue: existing.Value, NewValue: 0}

		default:
			old := existing.Value
			if err := s.voteRepo.UpdateValueTx(ctx, tx, existing.ID, value); err != nil {
				return fmt.Errorf("update vote: %w", err)
			}
			existing.Value = value
			result = VoteResult{Vote: existing, OldValue: old, NewValue: value}
		}

		delta := s.reputation.PointsFor(result.NewValue, targetType) - s.reputation.PointsFor(result.OldValue, targetType)
		if err := s.reputation.ApplyDeltaTx(ctx, tx, authorID, delta); err != nil {
			return err
		}

		if scoreDelta := int64(result.NewValue - result.OldValue); scoreDelta != 0 {
			if target.QuestionID != nil {
				if err := s.questionRepo.IncrementScoreTx(ctx, tx, *target.QuestionID, scoreDelta); err != nil {
					return fmt.Errorf("increment question score: %w", err)
				}
			} else {
				if err := s.answerRepo.IncrementScoreTx(ctx, tx, *target.AnswerID, scoreDelta); err != nil {
					return fmt.Errorf("increment answer score: %w", err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *voteService) invalidate(ctx context.Context, target VoteTarget, questionID uuid.UUID, authorID uint) {
	keys := []string{
		fmt.Sprintf("question:%s", questionID),
		fmt.Sprintf("answers:%s", questionID),
		fmt.Sprintf("user:%d", authorID),
	}
	if target.AnswerID != nil {
		keys = append(keys, fmt.Sprintf("answer:%s", *target.AnswerID))
	}
	_ = s.cache.Delete(ctx, keys...)
}
