package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/learnhub/internal/app/models"
	"github.com/yigit/learnhub/internal/app/models/dto"
	"github.com/yigit/learnhub/internal/app/repositories"
	"github.com/yigit/learnhub/internal/pkg/apperrors"
	"github.com/yigit/learnhub/internal/pkg/auth"
)

// UserStore creates and loads users.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// RefreshTokenStore persists refresh tokens.
type RefreshTokenStore interface {
	Create(ctx context.Context, token string, userID int64, expiry time.Time) error
	Get(ctx context.Context, token string) (*repositories.RefreshToken, error)
	Revoke(ctx context.Context, token string) error
}

// TokenIssuer signs token pairs.
type TokenIssuer interface {
	GenerateTokenPair(user *models.User) (*auth.TokenPair, error)
}

// AuthService handles authentication operations
type AuthService struct {
	userRepo   UserStore
	tokenRepo  RefreshTokenStore
	jwtService TokenIssuer
	now        func() time.Time
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo UserStore, tokenRepo RefreshTokenStore, jwtService TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		now:        time.Now,
		logger:     logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a student account.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	email := normalizeEmail(req.Email)

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     email,
		Password:  hashed,
		RoleType:  models.RoleStudent,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("email", user.Email).Msg("User registered")
	return user, nil
}

// Login authenticates a user
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.generateTokenResponse(ctx, user)
}

// RefreshToken exchanges a refresh token for a new pair. The old token is
// revoked so it cannot be replayed.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	stored, err := s.tokenRepo.Get(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if stored.IsRevoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if stored.ExpiryDate.Before(s.now()) {
		_ = s.tokenRepo.Revoke(ctx, refreshToken)
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.Revoke(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}

	return s.generateTokenResponse(ctx, user)
}

// Me returns the profile of the authenticated user
func (s *AuthService) Me(ctx context.Context, userID int64) (*models.User, error) {
	if userID <= 0 {
		return nil, apperrors.ErrTokenInvalid
	}
	return s.userRepo.GetByID(ctx, userID)
}

func (s *AuthService) generateTokenResponse(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	pair, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	if err := s.tokenRepo.Create(ctx, pair.RefreshToken, user.ID, pair.RefreshExpiry); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      pair.AccessToken,
		RefreshToken:     pair.RefreshToken,
		ExpiresIn:        pair.ExpiresIn,
		RefreshExpiresIn: pair.RefreshExpiresIn,
		TokenType:        "Bearer",
		User:             dto.NewUserResponse(user),
	}, nil
}
