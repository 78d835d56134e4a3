package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/yrwanda/practicelog/internal/dto"
	"github.com/yrwanda/practicelog/internal/model"
	"github.com/yrwanda/practicelog/internal/repository"
	"github.com/yrwanda/practicelog/internal/token"
	"github.com/yrwanda/practicelog/pkg/apperror"
)

type AuthService interface {
	Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error)
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error)
}

type authService struct {
	repo   repository.UserRepository
	tokens *token.Service
	log    *zap.SugaredLogger
}

func NewAuthService(repo repository.UserRepository, tokens *token.Service, log *zap.SugaredLogger) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		log:    log.With("service", "AuthService"),
	}
}

func (s *authService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error) {
	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return nil, apperror.ErrConflict
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     input.Username,
		PasswordHash: string(hashed),
	}
	// The unique index is the backstop for a concurrent registration of
	// the same username; Create surfaces it as ErrConflict.
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Infow("user registered", "user_id", user.ID, "username", user.Username)

	return s.buildAuthResponse(user)
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperror.ErrUnauthorized
	}

	return s.buildAuthResponse(user)
}

func (s *authService) buildAuthResponse(user *model.User) (*dto.AuthResponse, error) {
	signed, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	return &dto.AuthResponse{
		Token: signed,
		User:  dto.NewUserResponse(user),
	}, nil
}
