package service

import (
	"context"
	"errors"
	"testing"

	"github.com/yrwanda/practicelog/internal/dto"
	"github.com/yrwanda/practicelog/internal/repository"
	"github.com/yrwanda/practicelog/internal/token"
	"github.com/yrwanda/practicelog/pkg/apperror"
)

func newAuthService(t *testing.T) (AuthService, *token.Service) {
	t.Helper()

	db := newTestDB(t)
	tokens := token.NewService("test-secret")
	return NewAuthService(repository.NewUserRepository(db), tokens, testLogger()), tokens
}

func TestRegister_IssuesUsableToken(t *testing.T) {
	svc, tokens := newAuthService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, dto.RegisterInput{Username: "alice", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if resp.User.Username != "alice" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
	if resp.User.CreateTime == 0 {
		t.Fatalf("expected epoch create_time")
	}

	userID, err := tokens.Validate(resp.Token)
	if err != nil {
		t.Fatalf("token did not validate: %v", err)
	}
	if userID != resp.User.ID {
		t.Fatalf("token subject %d, want %d", userID, resp.User.ID)
	}
}

func TestRegister_DuplicateUsernameConflicts(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, dto.RegisterInput{Username: "alice", Password: "hunter2hunter2"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := svc.Register(ctx, dto.RegisterInput{Username: "alice", Password: "differentpass"})
	if !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// First registration still works.
	if _, err := svc.Login(ctx, dto.LoginInput{Username: "alice", Password: "hunter2hunter2"}); err != nil {
		t.Fatalf("login after duplicate attempt failed: %v", err)
	}
}

func TestLogin_WrongCredentialsUnauthorized(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, dto.RegisterInput{Username: "alice", Password: "hunter2hunter2"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Wrong password and unknown user collapse into the same failure.
	if _, err := svc.Login(ctx, dto.LoginInput{Username: "alice", Password: "wrong"}); !errors.Is(err, apperror.ErrUnauthorized) {
		t.Fatalf("wrong password: expected ErrUnauthorized, got %v", err)
	}
	if _, err := svc.Login(ctx, dto.LoginInput{Username: "nobody", Password: "hunter2hunter2"}); !errors.Is(err, apperror.ErrUnauthorized) {
		t.Fatalf("unknown user: expected ErrUnauthorized, got %v", err)
	}
}

func TestLogin_ReturnsFreshToken(t *testing.T) {
	svc, tokens := newAuthService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, dto.RegisterInput{Username: "alice", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	login, err := svc.Login(ctx, dto.LoginInput{Username: "alice", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	userID, err := tokens.Validate(login.Token)
	if err != nil {
		t.Fatalf("login token invalid: %v", err)
	}
	if userID != reg.User.ID {
		t.Fatalf("login token subject %d, want %d", userID, reg.User.ID)
	}
}
