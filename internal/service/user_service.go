package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"askhub/internal/cache"
	apperrors "askhub/internal/errors"
	"askhub/internal/model"
	"askhub/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserSeed is one user in a seed payload.
type UserSeed struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role,omitempty"`
	Department string `json:"department,omitempty"`
}

// UserService exposes user lookups and demo-data seeding.
type UserService interface {
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	SeedUsers(ctx context.Context, seeds []UserSeed) (int, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// GetUser retrieves a user by ID with caching. Reputation is read through
// here, so vote mutations invalidate this key.
func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

// ListUsers lists all users.
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// SeedUsers creates or updates users from seed data, keyed by email.
func (s *userService) SeedUsers(ctx context.Context, seeds []UserSeed) (int, error) {
	count := 0
	for _, seed := range seeds {
		hashed, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcryptCost)
		if err != nil {
			return count, fmt.Errorf("hash password for %s: %w", seed.Email, err)
		}

		existing, err := s.repo.FindByEmail(ctx, seed.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return count, fmt.Errorf("seed user %s: %w", seed.Email, err)
		}

		if existing != nil {
			existing.Name = seed.Name
			existing.PasswordHash = string(hashed)
			existing.Role = seed.Role
			existing.Department = seed.Department
			if err := s.repo.Update(ctx, existing); err != nil {
				return count, fmt.Errorf("update user %s: %w", seed.Email, err)
			}
			_ = s.cache.Delete(ctx, s.cacheKey(existing.ID))
		} else {
			user := &model.User{
				Name:         seed.Name,
				Email:        seed.Email,
				PasswordHash: string(hashed),
				Role:         seed.Role,
				Department:   seed.Department,
			}
			if err := s.repo.Create(ctx, user); err != nil {
				return count, fmt.Errorf("create user %s: %w", seed.Email, err)
			}
		}
		count++
	}
	return count, nil
}
