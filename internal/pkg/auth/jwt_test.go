package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/yigit/learnhub/internal/app/models"
	"github.com/yigit/learnhub/internal/pkg/apperrors"
)

func newTestService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newTestService()
	user := &models.User{ID: 7, Email: "t@example.com", RoleType: models.RoleTeacher}

	pair, err := svc.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	if pair.RefreshToken == "" || pair.ExpiresIn != 3600 {
		t.Fatalf("unexpected pair: %+v", pair)
	}

	claims, err := svc.ValidateToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 7 || claims.RoleType != "teacher" || claims.Email != "t@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestService()
	past := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return past }

	pair, err := svc.GenerateTokenPair(&models.User{ID: 1, Email: "a@b.c", RoleType: models.RoleStudent})
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateToken(pair.AccessToken); !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	pair, err := newTestService().GenerateTokenPair(&models.User{ID: 1, Email: "a@b.c"})
	if err != nil {
		t.Fatal(err)
	}
	other := NewJWTService(JWTConfig{SecretKey: "other", AccessTokenExp: time.Hour})
	if _, err := other.ValidateToken(pair.AccessToken); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	if _, err := ExtractBearerToken(""); err == nil {
		t.Error("empty header should fail")
	}
	if _, err := ExtractBearerToken("Bearer nodots"); err == nil {
		t.Error("non-JWT value should fail")
	}
	got, err := ExtractBearerToken(`"Bearer a.b.c"`)
	if err != nil || got != "a.b.c" {
		t.Errorf("quoted bearer: got %q, %v", got, err)
	}
	got, err = ExtractBearerToken("a.b.c")
	if err != nil || got != "a.b.c" {
		t.Errorf("raw token: got %q, %v", got, err)
	}
}

func TestPasswordHashing(t *testing.T) {
	BcryptCost = 4
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatal(err)
	}
	if !CheckPassword(hash, "secret123") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}
