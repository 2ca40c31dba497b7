package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/learnhub/internal/app/models/dto"
	"github.com/yigit/learnhub/internal/pkg/apperrors"
	"github.com/yigit/learnhub/internal/pkg/auth"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeTokenStore) {
	t.Helper()
	auth.BcryptCost = 4 // keep hashing fast in tests

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "learnhub-test",
	})
	tokens := newFakeTokenStore()
	return NewAuthService(newFakeUserStore(), tokens, jwtService, zerolog.Nop()), tokens
}

func register(t *testing.T, svc *AuthService) {
	t.Helper()
	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "Ada@Example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
}

func TestRegisterCreatesStudent(t *testing.T) {
	svc, _ := newAuthFixture(t)

	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: " Ada@Example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.RoleType != "student" {
		t.Errorf("role = %q, want student", user.RoleType)
	}
	if user.Email != "ada@example.com" {
		t.Errorf("email should be normalized, got %q", user.Email)
	}
	if user.Password == "secret123" || !auth.CheckPassword(user.Password, "secret123") {
		t.Errorf("password should be stored as a bcrypt hash")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)
	register(t, svc)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FirstName: "Other", LastName: "Person", Email: "ada@example.com", Password: "secret123",
	})
	if !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
		t.Errorf("expected already exists, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, tokens := newAuthFixture(t)
	register(t, svc)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ada@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" || resp.TokenType != "Bearer" {
		t.Errorf("incomplete token response %+v", resp)
	}
	if resp.User == nil || resp.User.Email != "ada@example.com" {
		t.Errorf("response should carry the user, got %+v", resp.User)
	}
	if _, ok := tokens.tokens[resp.RefreshToken]; !ok {
		t.Errorf("refresh token should be stored")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := newAuthFixture(t)
	register(t, svc)

	for _, req := range []dto.LoginRequest{
		{Email: "ada@example.com", Password: "wrong-password"},
		{Email: "nobody@example.com", Password: "secret123"},
	} {
		req := req
		if _, err := svc.Login(context.Background(), &req); !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("Login(%s) error = %v, want invalid credentials", req.Email, err)
		}
	}
}

func TestRefreshTokenRotates(t *testing.T) {
	svc, tokens := newAuthFixture(t)
	register(t, svc)
	ctx := context.Background()

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "ada@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	refreshed, err := svc.RefreshToken(ctx, login.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}
	if refreshed.RefreshToken == login.RefreshToken {
		t.Errorf("refresh should issue a new token")
	}
	if !tokens.tokens[login.RefreshToken].IsRevoked {
		t.Errorf("old refresh token should be revoked")
	}

	if _, err := svc.RefreshToken(ctx, login.RefreshToken); !errors.Is(err, apperrors.ErrTokenRevoked) {
		t.Errorf("reusing a revoked token: got %v", err)
	}
}

func TestRefreshTokenExpired(t *testing.T) {
	svc, tokens := newAuthFixture(t)
	register(t, svc)
	ctx := context.Background()
	if err := tokens.Create(ctx, "stale", 1, time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.RefreshToken(ctx, "stale"); !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("expected expired, got %v", err)
	}
	if _, err := svc.RefreshToken(ctx, "unknown"); !errors.Is(err, apperrors.ErrTokenNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestMe(t *testing.T) {
	svc, _ := newAuthFixture(t)
	register(t, svc)

	user, err := svc.Me(context.Background(), 1)
	if err != nil || user.Email != "ada@example.com" {
		t.Fatalf("Me: %v %+v", err, user)
	}
	if _, err := svc.Me(context.Background(), 42); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
