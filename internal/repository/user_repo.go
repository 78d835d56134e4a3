package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/yrwanda/practicelog/internal/model"
	"github.com/yrwanda/practicelog/pkg/apperror"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if user.CreateTime.IsZero() {
		user.CreateTime = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return apperror.Translate(err)
	}

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, apperror.Translate(err)
	}

	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error; err != nil {
		return nil, apperror.Translate(err)
	}

	return &user, nil
}
