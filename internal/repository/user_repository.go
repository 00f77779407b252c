package repository

import (
	"context"

	"gorm.io/gorm"

	"askhub/internal/model"
)

// UserRepository defines user persistence operations. Reputation changes go
// through the increment methods only; the column is never written with a
// value computed in application code.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	IncrementReputation(ctx context.Context, id uint, delta int64) error
	// Transaction methods
	IncrementReputationTx(ctx context.Context, tx interface{}, id uint, delta int64) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// IncrementReputation applies a signed delta as an atomic in-database
// increment so concurrent voters never lose updates.
func (r *userRepository) IncrementReputation(ctx context.Context, id uint, delta int64) error {
	return incrementReputation(r.db.WithContext(ctx), id, delta)
}

// IncrementReputationTx applies the delta within a caller-owned transaction.
func (r *userRepository) IncrementReputationTx(ctx context.Context, tx interface{}, id uint, delta int64) error {
	txDB := tx.(*gorm.DB)
	return incrementReputation(txDB.WithContext(ctx), id, delta)
}

func incrementReputation(db *gorm.DB, id uint, delta int64) error {
	return db.Model(&model.User{}).
		Where("id = ?", id).
		UpdateColumn("reputation", gorm.Expr("reputation + ?", delta)).Error
}
